// Package xwerrors defines the sentinel error kinds shared across the
// solver engine, following the same errors.New + fmt.Errorf("...: %w", ...)
// style used throughout the rest of the module rather than a custom
// exception hierarchy.
package xwerrors

import "errors"

var (
	// ErrInvalidPuzzle indicates the puzzle geometry or clue indices are
	// malformed: indices outside the grid, a clue referencing a black cell,
	// or non-rectangular geometry.
	ErrInvalidPuzzle = errors.New("invalid puzzle")

	// ErrLengthMismatch indicates a proposed answer's length does not match
	// the slot it would be played in.
	ErrLengthMismatch = errors.New("answer length does not match slot length")

	// ErrConflict indicates a proposed fill contradicts a letter already set
	// in the puzzle.
	ErrConflict = errors.New("fill conflicts with existing letters")

	// ErrNotFound indicates a direct lookup (e.g. HistoricalIndex.Answers)
	// found no record for the given key.
	ErrNotFound = errors.New("not found")

	// ErrParse indicates a malformed line in a bulk-loaded text format
	// (dictionary file or historical clue record).
	ErrParse = errors.New("parse error")

	// ErrConfiguration indicates a solver or pipeline was misconfigured,
	// e.g. an empty MultiStageSolver solver list.
	ErrConfiguration = errors.New("configuration error")

	// ErrCapacityExceeded indicates a CompatibilityGraph's node count
	// exceeded its configured cap.
	ErrCapacityExceeded = errors.New("graph capacity exceeded")
)
