package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kvantaro/aoc2025/input"
)

// ErrNoEntries indicates an attempt to serialize an empty result set:
// the column schema comes from the first entry, so there must be one.
var ErrNoEntries = errors.New("report: no entries to serialize")

// Entry is anything serializable as one CSV row under a fixed schema.
// bench.Result satisfies it.
type Entry interface {
	Columns() []string
	Values() []string
}

// WriteCSV creates (or truncates) the benchmark output file for the given
// day under root, writes one header line taken from the first entry, then
// one row per entry. The missing parent directory is created. Any open or
// write failure is returned wrapped; nothing is partially recovered.
func WriteCSV[E Entry](root input.Root, day int, entries []E) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}
	path := root.OutputPath(day)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("report: create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(entries[0].Columns()); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for _, e := range entries {
		if err = w.Write(e.Values()); err != nil {
			return fmt.Errorf("report: write row: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("report: flush %s: %w", path, err)
	}
	return f.Close()
}
