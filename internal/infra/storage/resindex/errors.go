package resindex

import "errors"

var (
	// ErrNotFound is returned when the index has no entry for a
	// reservation id
	ErrNotFound = errors.New("resindex.repository: reservation not found")

	// ErrBuildQuery is returned when an SQL statement cannot be built
	ErrBuildQuery = errors.New("resindex.repository: failed to build query")

	// ErrExecQuery is returned when an SQL statement fails to execute
	ErrExecQuery = errors.New("resindex.repository: failed to execute query")
)
