package psp

import (
	"errors"
)

// The sentinel errors below classify every way reading a PSP file can fail.
// Errors returned by this package wrap one of these, so callers can sort
// failures with errors.Is() while the message itself carries the offsets and
// component names needed to diagnose a broken file.
var (
	// ErrNotPSP wraps any failure during the header stage: a caller that
	// only wants a yes/no "is this a PSP file" can test against this alone.
	ErrNotPSP = errors.New("not a PSP file")
	// ErrTruncated means the file ended before a read completed.
	ErrTruncated = errors.New("truncated PSP stream")
	// ErrMissingField means a component's info string decoded cleanly but
	// lacks a key the format requires (name, parameters.indexing).
	ErrMissingField = errors.New("missing metadata field")
	// ErrOutOfRange means a component's computed data extent runs past the
	// end of the file.
	ErrOutOfRange = errors.New("data block out of range")
	// ErrBodyCountMismatch means the per-component body counts don't sum to
	// the master header's total.
	ErrBodyCountMismatch = errors.New("body count mismatch")
	// ErrDuplicateComponent is returned under the Reject duplicate policy
	// when two components share a name.
	ErrDuplicateComponent = errors.New("duplicate component name")
	// ErrComponentNotFound is returned when a component name isn't in the
	// file.
	ErrComponentNotFound = errors.New("component not found")
	// ErrIncompleteUnitSpec is returned when only one of the position/
	// velocity unit pair is given.
	ErrIncompleteUnitSpec = errors.New("incomplete unit specification")
)
