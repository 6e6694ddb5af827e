package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// ExportCSV writes runs as CSV with a header row.
func ExportCSV(w io.Writer, runs []RunEntry) error {
	if runs == nil {
		runs = []RunEntry{}
	}
	if err := gocsv.Marshal(runs, w); err != nil {
		return fmt.Errorf("storage: cannot export runs: %w", err)
	}
	return nil
}

// ExportCSVFile writes runs to path, creating parent directories.
func ExportCSVFile(path string, runs []RunEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: cannot create %s: %w", path, err)
	}
	defer f.Close()

	return ExportCSV(f, runs)
}
