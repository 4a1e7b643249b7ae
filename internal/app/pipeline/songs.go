package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/lyricflow/internal/domain"
	"github.com/heartmarshall/lyricflow/internal/lrc"
)

// listSongs returns the files in dir whose extension matches ext
// (case-insensitive), sorted by name.
func listSongs(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", domain.NewSourceError(dir, err))
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// assignSongIDs derives a SongID per path. Labels that collide
// case-insensitively with an earlier one get " (2)", " (3)" ... appended, and
// each rename is reported as a warning wrapping domain.ErrDuplicateSong.
func assignSongIDs(paths []string) ([]domain.SongID, []Warning) {
	ids := make([]domain.SongID, len(paths))
	taken := make(map[string]bool, len(paths))
	var warnings []Warning

	for i, path := range paths {
		id := lrc.SongIDFromPath(path)
		key := strings.ToLower(id.Label)
		if !taken[key] {
			taken[key] = true
			ids[i] = id
			continue
		}

		label := id.Label
		for n := 2; ; n++ {
			label = fmt.Sprintf("%s (%d)", id.Label, n)
			if !taken[strings.ToLower(label)] {
				break
			}
		}
		taken[strings.ToLower(label)] = true

		renamed := id
		renamed.Label = label
		ids[i] = renamed
		warnings = append(warnings, Warning{
			Source: path,
			Err:    fmt.Errorf("%w: %q renamed to %q", domain.ErrDuplicateSong, id.Label, label),
		})
	}
	return ids, warnings
}
