// Package report serializes benchmark results to per-day CSV files under
// the project's outputs/ directory. One writer owns one output file for
// its entire lifetime; write failures propagate to the caller instead of
// being swallowed.
package report
