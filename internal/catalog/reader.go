// Package catalog reads the list of selectable leagues.
//
// The catalog is a UTF-8 text file with one "<League Name>: <url>" entry per line. Blank
// lines are skipped and file order is the display order.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/preston-bernstein/football-leagues/internal/domain/league"
)

// Separator splits a catalog line into name and URL on its first occurrence.
const Separator = ": "

var (
	// ErrNotFound is returned when the catalog file does not exist.
	ErrNotFound = errors.New("catalog not found")
	// ErrMalformedLine is returned for a non-blank line without Separator.
	ErrMalformedLine = errors.New("catalog line malformed")
)

// Load reads the catalog at path.
func Load(path string) ([]league.CatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads catalog entries from r.
func Parse(r io.Reader) ([]league.CatalogEntry, error) {
	var entries []league.CatalogEntry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, url, ok := strings.Cut(line, Separator)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		entries = append(entries, league.CatalogEntry{
			Name: strings.TrimSpace(name),
			URL:  strings.TrimSpace(url),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Select resolves a 1-based selection against entries.
func Select(entries []league.CatalogEntry, selection int) (league.CatalogEntry, bool) {
	if selection < 1 || selection > len(entries) {
		return league.CatalogEntry{}, false
	}
	return entries[selection-1], true
}
