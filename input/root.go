package input

import (
	"fmt"
	"os"
	"path/filepath"
)

// rootMarker is the file whose presence identifies the project root.
const rootMarker = "go.mod"

// Root is a resolved project base directory. All file addressing in the
// repository goes through a Root so that path resolution happens exactly
// once, at process start.
type Root string

// FindRoot resolves the project root by walking up from the current
// working directory until a directory containing go.mod is found.
// Returns ErrRootNotFound if the walk reaches the filesystem root first.
// Complexity: O(depth) stat calls.
func FindRoot() (Root, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("input: determine working directory: %w", err)
	}
	return FindRootFrom(dir)
}

// FindRootFrom is FindRoot starting from an explicit directory.
func FindRootFrom(dir string) (Root, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, rootMarker)); err == nil {
			return Root(dir), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root without seeing the marker.
			return "", ErrRootNotFound
		}
		dir = parent
	}
}

// Join resolves a path relative to the root.
func (r Root) Join(elem ...string) string {
	return filepath.Join(append([]string{string(r)}, elem...)...)
}

// InputPath returns the input file path for a day: inputs/dayNN.txt,
// or inputs/dayNN-example.txt when example is true.
func (r Root) InputPath(day int, example bool) string {
	suffix := ""
	if example {
		suffix = "-example"
	}
	return r.Join("inputs", fmt.Sprintf("day%02d%s.txt", day, suffix))
}

// OutputPath returns the benchmark output file path for a day:
// outputs/benchmark-dayNN.csv.
func (r Root) OutputPath(day int) string {
	return r.Join("outputs", fmt.Sprintf("benchmark-day%02d.csv", day))
}

// ReadDay reads the whole input file for the given day and example flag.
// Returns ErrDayOutOfRange for days outside 1..25, or a wrapped I/O error
// if the file cannot be read.
func (r Root) ReadDay(day int, example bool) (string, error) {
	if day < 1 || day > 25 {
		return "", ErrDayOutOfRange
	}
	path := r.InputPath(day, example)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("input: read %s: %w", path, err)
	}
	return string(data), nil
}
