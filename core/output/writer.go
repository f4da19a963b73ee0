package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tristendillon/depwalk/core/models"
)

// Stdout as a target path writes to standard output.
const Stdout = "-"

type Writer struct {
	Path   string
	Format Format

	// Append keeps the records already present in Path and adds the new ones
	// after them. Only JSON and YAML can be appended to.
	Append bool
	Stdout io.Writer
}

func NewWriter(path string, format Format, appendMode bool) *Writer {
	return &Writer{Path: path, Format: format, Append: appendMode, Stdout: os.Stdout}
}

// Render produces the bytes Write would store, including any records merged
// in append mode.
func (w *Writer) Render(relationships []models.Relationship) ([]byte, error) {
	if w.Append && w.Path != Stdout {
		if w.Format == DOT {
			return nil, fmt.Errorf("append is not supported for %s output", w.Format)
		}
		existing, err := w.readExisting()
		if err != nil {
			return nil, err
		}
		relationships = append(existing, relationships...)
	}
	return Encode(w.Format, relationships)
}

func (w *Writer) Write(data []byte) error {
	if w.Path == Stdout {
		if _, err := w.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", w.Path, err)
	}
	return nil
}

func (w *Writer) readExisting() ([]models.Relationship, error) {
	data, err := os.ReadFile(w.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read existing output %s: %w", w.Path, err)
	}
	existing, err := Decode(w.Format, data)
	if err != nil {
		return nil, fmt.Errorf("existing output %s: %w", w.Path, err)
	}
	return existing, nil
}
