package grid

import (
	"fmt"
	"strings"
)

// splitLines splits input on newlines, dropping a single trailing newline.
func splitLines(input string) []string {
	return strings.Split(strings.TrimRight(input, "\n"), "\n")
}

// ParseChars parses a grid with one cell per character, applying parse to
// each rune. Returns ErrRagged if line lengths differ, or the first parse
// error. Complexity: O(rows×cols).
func ParseChars[T any](input string, parse func(rune) (T, error)) (*Grid[T], error) {
	lines := splitLines(input)
	rows := make([][]T, 0, len(lines))
	for _, line := range lines {
		row := make([]T, 0, len(line))
		for _, ch := range line {
			v, err := parse(ch)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// ParseFields parses a grid with one cell per whitespace-separated field.
// Returns ErrRagged if field counts differ, or the first parse error.
func ParseFields[T any](input string, parse func(string) (T, error)) (*Grid[T], error) {
	lines := splitLines(input)
	rows := make([][]T, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		row := make([]T, 0, len(fields))
		for _, f := range fields {
			v, err := parse(f)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// ParseFixedWidth parses a grid whose columns have fixed character widths.
// Each line is cut into len(widths) slices of the declared widths; any
// characters remaining after the last declared width become exactly one
// final column. A line shorter than the declared widths is ErrShortLine;
// the resulting rows must still be rectangular (ErrRagged otherwise).
func ParseFixedWidth[T any](input string, widths []int, parse func(string) (T, error)) (*Grid[T], error) {
	lines := splitLines(input)
	rows := make([][]T, 0, len(lines))
	for _, line := range lines {
		row := make([]T, 0, len(widths)+1)
		start := 0
		for _, w := range widths {
			if start >= len(line) || start+w > len(line) {
				return nil, fmt.Errorf("%w: %q with widths %v", ErrShortLine, line, widths)
			}
			v, err := parse(line[start : start+w])
			if err != nil {
				return nil, err
			}
			row = append(row, v)
			start += w
		}
		// Leftover characters form the implicit last column.
		if start < len(line) {
			v, err := parse(line[start:])
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}
