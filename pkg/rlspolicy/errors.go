package rlspolicy

import "errors"

var (
	// ErrDuplicateTable is returned when a table is registered twice,
	// directly or via Merge. Registry misconfiguration; fails fast at
	// startup or deploy time, never at request time.
	ErrDuplicateTable = errors.New("rlspolicy: table already registered")

	// ErrInvalidEntry is returned when an entry carries an unusable table
	// name or isolation kind.
	ErrInvalidEntry = errors.New("rlspolicy: invalid registry entry")

	// ErrUnknownTable is returned when a deploy filter names a table the
	// registry does not contain.
	ErrUnknownTable = errors.New("rlspolicy: table not registered")

	// ErrMissingColumn is reported per table when the live schema lacks a
	// column the isolation kind requires.
	ErrMissingColumn = errors.New("rlspolicy: required tenant column missing")
)
