package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/football-leagues/internal/domain/league"
)

const (
	defaultFileStem = "informacion"
	missingValue    = "N/A"
	fileExt         = ".txt"
)

// Labels are the captions used in the exported report.
type Labels struct {
	League  string
	Team    string
	Code    string
	Country string
}

// DefaultLabels are the Spanish captions.
var DefaultLabels = Labels{
	League:  "Nombre de la Liga",
	Team:    "Equipo",
	Code:    "Código",
	Country: "Ciudad",
}

var fileNameCleaner = strings.NewReplacer("/", "", "\\", "", " ", "")

// FileName derives the report file name from the league name, dropping path separators and spaces.
func FileName(doc league.Document) string {
	stem := fileNameCleaner.Replace(doc.Name.Or(defaultFileStem))
	if stem == "" || stem == "." || stem == ".." {
		stem = defaultFileStem
	}
	return stem + fileExt
}

// Write renders the league header and one block per club.
func Write(w io.Writer, doc league.Document, labels Labels) error {
	if _, err := fmt.Fprintf(w, "%s: %s\n\n", labels.League, doc.Name.Or(missingValue)); err != nil {
		return err
	}
	for _, club := range doc.Clubs {
		_, err := fmt.Fprintf(w, "%s: %s\n%s: %s\n%s: %s\n\n",
			labels.Team, club.Name.Or(missingValue),
			labels.Code, club.Code.Or(missingValue),
			labels.Country, club.Country.Or(missingValue),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// FileWriter replaces a file's content.
type FileWriter interface {
	WriteFile(target string, data []byte) error
}

// Exporter writes reports into a directory.
type Exporter struct {
	dir    string
	files  FileWriter
	labels Labels
}

// NewExporter constructs an exporter writing into dir through files.
func NewExporter(dir string, files FileWriter, labels Labels) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{dir: dir, files: files, labels: labels}
}

// Export writes the report for doc, replacing any previous file of the same name, and returns its path.
func (e *Exporter) Export(doc league.Document) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, e.labels); err != nil {
		return "", err
	}
	path := filepath.Join(e.dir, FileName(doc))
	if err := e.files.WriteFile(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}
