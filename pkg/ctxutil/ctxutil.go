package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey ctxKey = "run_id"
	songKey  ctxKey = "song"
)

// WithRunID stores the pipeline run ID in the context.
func WithRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RunIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(runIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithSong stores the label of the song being processed.
func WithSong(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, songKey, label)
}

// SongFromCtx extracts the song label from the context.
// Returns an empty string if absent.
func SongFromCtx(ctx context.Context) string {
	label, _ := ctx.Value(songKey).(string)
	return label
}

// Logger returns log enriched with the run ID and song label found in ctx.
func Logger(ctx context.Context, log *slog.Logger) *slog.Logger {
	if id, ok := RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", id.String()))
	}
	if song := SongFromCtx(ctx); song != "" {
		log = log.With(slog.String("song", song))
	}
	return log
}
