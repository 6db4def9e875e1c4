// Package perr defines the sentinel error kinds shared by the path
// resolver, policy cache, and decision engine, per the error taxonomy
// the decision pipeline promises its callers.
package perr

import "errors"

var (
	// ErrInvalidArgument covers malformed mode flags and negative file
	// descriptors.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound covers empty names, exhausted search-path lookups, and
	// missing components under EXISTING mode.
	ErrNotFound = errors.New("not found")

	// ErrNotADirectory is returned when a non-final path component exists
	// but is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrLoop is returned when a symlink cycle is detected.
	ErrLoop = errors.New("symlink loop")

	// ErrNoMemory is returned when a symlink target exceeds the per-call
	// read-link buffer ceiling.
	ErrNoMemory = errors.New("no memory")

	// ErrPermissionDenied covers policy refusals and path-walk EACCES.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDispatch wraps an errno returned by the underlying
	// image-replacement call.
	ErrDispatch = errors.New("dispatch failed")
)
