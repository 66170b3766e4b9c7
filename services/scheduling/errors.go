package scheduling

import (
	"errors"
	"fmt"
)

// The scheduling core reports failures through a closed taxonomy. Callers
// classify with errors.Is; the concrete message carries the detail.
var (
	// ErrInvalidRequest marks malformed or semantically invalid input.
	// Never retried; surfaced to the caller verbatim.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound marks a reference to an unknown person or booking id.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a booking commit that lost the race to an
	// overlapping booking. A normal outcome of concurrent use.
	ErrConflict = errors.New("booking conflict")
	// ErrStoreUnavailable marks a failed collaborator dependency. The core
	// propagates it unchanged and never retries.
	ErrStoreUnavailable = errors.New("store unavailable")
)

func invalidRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
