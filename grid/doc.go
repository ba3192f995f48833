// Package grid provides a generic rectangular, row-major 2D grid and
// parsers that build one from puzzle input text:
//
//   - ParseChars: one cell per character
//   - ParseFields: one cell per whitespace-separated field
//   - ParseFixedWidth: fixed column widths, with any characters after the
//     last declared width becoming exactly one final column
//
// All parsers apply a per-cell fallible parser and fail on the first bad
// cell; all reject ragged rows, so a Grid is rectangular by construction.
package grid
