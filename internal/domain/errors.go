package domain

import "errors"

// Error kinds shared by every service and use case. Package-level sentinels
// wrap one of these kinds, so the API layer can translate any error with
// errors.Is regardless of which package produced it.
var (
	// ErrNotFound identity or natural key does not resolve to a live record
	ErrNotFound = errors.New("not found")

	// ErrBadArgument missing required field, invalid time ordering or an
	// unresolvable natural-key reference supplied for linking
	ErrBadArgument = errors.New("bad argument")

	// ErrConflict duplicate unique natural key, scheduling overlap or a
	// delete blocked by referencing records
	ErrConflict = errors.New("conflict")

	// ErrInvariantViolation a priced computation received corrupted or
	// non-positive inputs; indicates a data-integrity bug, not a caller error
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInternal unclassified internal failure
	ErrInternal = errors.New("internal error")
)
