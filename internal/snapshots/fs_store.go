// Package snapshots persists the most recently fetched league document.
//
// The cache is a single slot at a fixed path: every successful fetch replaces the whole
// file, whichever league it came from, and there is no per-league namespacing. Readers
// always go back to disk so they observe the latest persisted state.
package snapshots

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/preston-bernstein/football-leagues/internal/domain/league"
)

// ErrNotFound is returned when no league has been cached yet.
var ErrNotFound = errors.New("snapshot not found")

// Store defines how the cached league is loaded and replaced.
type Store interface {
	Load() (league.Document, error)
	Save(doc league.Document) error
	Path() string
}

// FSStore keeps the cached league in one JSON file.
type FSStore struct {
	path   string
	writer *Writer
}

// NewFSStore constructs an FS-backed store for the file at path.
func NewFSStore(path string) *FSStore {
	return &FSStore{path: path, writer: NewWriter()}
}

// Path returns the cache file location.
func (s *FSStore) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Load reads and parses the cached league. A file that is not JSON or lacks the league
// shape yields an error matching league.ErrInvalidJSON or league.ErrMalformedDocument.
func (s *FSStore) Load() (league.Document, error) {
	if s == nil || s.path == "" {
		return league.Document{}, errors.New("snapshot store not configured")
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return league.Document{}, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return league.Document{}, err
	}
	defer f.Close()

	return league.Decode(f)
}

// Save overwrites the cache with doc, pretty-printed with two-space indentation.
func (s *FSStore) Save(doc league.Document) error {
	if s == nil || s.path == "" {
		return errors.New("snapshot store not configured")
	}
	data, err := league.Marshal(doc)
	if err != nil {
		return err
	}
	return s.writer.WriteFile(s.path, data)
}
