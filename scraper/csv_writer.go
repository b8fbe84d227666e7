package scraper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
)

// writeCSV marshals rows with their csv struct tags and writes the file,
// creating the directory when needed.
func writeCSV(path string, rows interface{}) error {
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal CSV rows: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
