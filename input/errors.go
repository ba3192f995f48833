package input

import "errors"

var (
	// ErrRootNotFound indicates no ancestor directory contains go.mod.
	ErrRootNotFound = errors.New("input: project root not found in any parent directory")
	// ErrDayOutOfRange indicates a day number outside 1..25.
	ErrDayOutOfRange = errors.New("input: day must be between 1 and 25")
)
