package input

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseLines splits input into lines and applies parse to each.
// The first parse failure aborts the whole operation.
func ParseLines[T any](input string, parse func(string) (T, error)) ([]T, error) {
	return parseSplit(strings.Split(strings.TrimRight(input, "\n"), "\n"), parse)
}

// ParseCommaSeparated splits input on commas, trims each field, and
// applies parse to each. The first failure aborts the whole operation.
func ParseCommaSeparated[T any](input string, parse func(string) (T, error)) ([]T, error) {
	fields := strings.Split(strings.TrimSpace(input), ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return parseSplit(fields, parse)
}

// ParseFields splits input on any run of whitespace and applies parse to
// each field. The first failure aborts the whole operation.
func ParseFields[T any](input string, parse func(string) (T, error)) ([]T, error) {
	return parseSplit(strings.Fields(input), parse)
}

// parseSplit applies parse to every token, collecting results.
func parseSplit[T any](tokens []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Atoi parses a decimal integer into any integer type.
// Handy as the per-element parser for the helpers above.
func Atoi[T constraints.Integer](s string) (T, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return T(n), err
}

// Uatoi is Atoi for unsigned targets, rejecting negative input.
func Uatoi[T constraints.Unsigned](s string) (T, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	return T(n), err
}
