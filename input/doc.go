// Package input locates the project root, reads per-day puzzle inputs,
// and parses them with small generic helpers.
//
// The root is resolved exactly once (FindRoot walks parent directories
// until it sees go.mod) and then threaded as an explicit Root value into
// every I/O call, so no helper performs hidden filesystem traversal.
//
// Parsing helpers apply a per-element fallible parser and fail the whole
// operation on the first element that fails: a puzzle answer is
// meaningless on partial input, so nothing is ever half-parsed.
package input
