package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/planscrape"
)

// Ensure Writer implements planscrape.ExtractionWriter at compile time.
var _ planscrape.ExtractionWriter = (*Writer)(nil)

// Writer writes a single extraction to a file, verbatim.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteExtraction writes the extraction content to disk. Parent
// directories are created as needed. The content bytes are written
// exactly as extracted, with no further transformation.
func (w *Writer) WriteExtraction(ctx context.Context, extraction *planscrape.Extraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(w.path, []byte(extraction.Content), 0644)
}
