// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// service and handlers to distinguish between different failure scenarios.
package repository

import (
	"errors"
	"fmt"
)

// ErrVenueNotFound is returned when a venue id does not resolve to a row.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist id does not resolve to a row.
var ErrArtistNotFound = errors.New("artist not found")

// ErrCommitFailed marks a unit of work that was rolled back.  Every
// *CommitError matches it with errors.Is, whatever the underlying cause
// (constraint violation, missing row, lost connection).
var ErrCommitFailed = errors.New("commit failed")

// CommitError reports a unit of work that could not be committed and was
// rolled back.  Op names the attempted mutation (e.g. "create venue").
type CommitError struct {
	Op  string
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrCommitFailed, e.Err)
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As.
func (e *CommitError) Unwrap() []error {
	return []error{ErrCommitFailed, e.Err}
}
