package grid_test

import (
	"strings"
	"testing"

	"github.com/kvantaro/aoc2025/grid"
)

// BenchmarkParseChars_200x200 measures parsing a 200×200 digit grid,
// the shape of a typical puzzle input.
func BenchmarkParseChars_200x200(b *testing.B) {
	line := strings.Repeat("7", 200) + "\n"
	input := strings.Repeat(line, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = grid.ParseChars(input, func(c rune) (uint8, error) {
			return uint8(c - '0'), nil
		})
	}
}

// BenchmarkAt measures the bounds-checked accessor on a warm grid.
func BenchmarkAt(b *testing.B) {
	g, err := grid.New[int](100, 100)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.At(i%100, (i*7)%100)
	}
}
