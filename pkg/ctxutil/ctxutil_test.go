package ctxutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

func TestWithRunID_And_RunIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithRunID(context.Background(), id)

	got, ok := RunIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestRunIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := RunIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestRunIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithRunID(context.Background(), uuid.Nil)

	if _, ok := RunIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for uuid.Nil")
	}
}

func TestRunIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("run_id"), "not-a-uuid")

	if _, ok := RunIDFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestWithSong_And_SongFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithSong(context.Background(), "Adele - Hello")

	if got := SongFromCtx(ctx); got != "Adele - Hello" {
		t.Fatalf("expected Adele - Hello, got %s", got)
	}
	if got := SongFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestLogger_AddsContextAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	id := uuid.New()
	ctx := WithSong(WithRunID(context.Background(), id), "Adele - Hello")
	Logger(ctx, base).Info("parsed")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["run_id"] != id.String() {
		t.Errorf("run_id = %v, want %s", m["run_id"], id)
	}
	if m["song"] != "Adele - Hello" {
		t.Errorf("song = %v, want Adele - Hello", m["song"])
	}
}

func TestLogger_EmptyContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	Logger(context.Background(), base).Info("plain")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := m["run_id"]; ok {
		t.Error("run_id should be absent")
	}
	if _, ok := m["song"]; ok {
		t.Error("song should be absent")
	}
}
