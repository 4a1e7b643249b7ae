// Package stopwords loads and merges stopword lists into a single normalized set.
// A source that cannot be read contributes nothing and is reported back to the
// caller; loading never aborts.
package stopwords

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/heartmarshall/lyricflow/internal/domain"
)

// commentPrefix marks a comment line in a stopword file.
const commentPrefix = "#"

// Source is one named stopword list.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource reads stopwords from the file at path.
func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// TextSource reads stopwords from an in-memory blob.
func TextSource(name, text string) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(text)), nil },
	}
}

// SourceFailure records a source that could not be read.
type SourceFailure struct {
	Source string
	Err    error
}

// Set is an immutable set of normalized stopwords.
type Set struct {
	words mapset.Set[string]
}

// Load reads every source in order and returns the union of their words,
// together with the sources that failed. Each line is normalized with
// domain.NormalizeWord; blank lines and "#" comments are skipped.
func Load(sources ...Source) (*Set, []SourceFailure) {
	words := mapset.NewThreadUnsafeSet[string]()
	var failures []SourceFailure

	for _, src := range sources {
		got, err := readSource(src)
		if err != nil {
			failures = append(failures, SourceFailure{
				Source: src.Name,
				Err:    domain.NewSourceError(src.Name, err),
			})
			continue
		}
		for _, w := range got {
			words.Add(w)
		}
	}

	return &Set{words: words}, failures
}

// LoadDir loads every file with the given extension in dir, in lexical order,
// plus any extra sources. An unreadable dir is reported as a failure.
func LoadDir(dir, ext string, extra ...Source) (*Set, []SourceFailure) {
	sources, err := DirSources(dir, ext)
	var failures []SourceFailure
	if err != nil {
		failures = append(failures, SourceFailure{Source: dir, Err: domain.NewSourceError(dir, err)})
	}

	set, loadFailures := Load(append(sources, extra...)...)
	return set, append(failures, loadFailures...)
}

// DirSources lists the files with extension ext in dir as sources, sorted by name.
func DirSources(dir, ext string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sources []Source
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		sources = append(sources, FileSource(filepath.Join(dir, e.Name())))
	}
	return sources, nil
}

// FromWords builds a set directly from words, normalizing each one.
func FromWords(words ...string) *Set {
	s := mapset.NewThreadUnsafeSet[string]()
	for _, w := range words {
		if w = domain.NormalizeWord(w); w != "" {
			s.Add(w)
		}
	}
	return &Set{words: s}
}

// Contains reports whether word is a stopword. The query is normalized the same
// way the set was, so the check is case-insensitive.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	return s.words.Contains(domain.NormalizeWord(word))
}

// Len returns the number of distinct stopwords.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.words.Cardinality()
}

// Words returns the stopwords sorted ascending.
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}
	out := s.words.ToSlice()
	slices.Sort(out)
	return out
}

// readSource returns the normalized words of one source. Nothing is returned
// on error so a half-read source does not leak into the set.
func readSource(src Source) ([]string, error) {
	if src.Open == nil {
		return nil, fmt.Errorf("no opener")
	}
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var words []string
	for _, line := range domain.SplitLines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if w := domain.NormalizeWord(line); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}
