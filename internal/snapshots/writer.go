package snapshots

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
)

// Writer replaces files atomically through a temp file and rename.
type Writer struct {
	perm os.FileMode
}

// NewWriter constructs a writer producing world-readable files.
func NewWriter() *Writer {
	return &Writer{perm: 0o644}
}

// WriteFile fully replaces the file at target with data. Identical content is left untouched.
func (w *Writer) WriteFile(target string, data []byte) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if target == "" {
		return errors.New("target path required")
	}
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, w.perm); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
