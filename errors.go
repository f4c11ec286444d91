package logscan

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrSourceUnavailable is the error kind for a log source that could not be
// opened or read to the end. Use errors.Is to test for it; the concrete error
// is a *SourceError.
var ErrSourceUnavailable = errors.New("log source unavailable")

// SourceError records a failure to open or read a log source.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%v: %v", ErrSourceUnavailable, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrSourceUnavailable, e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSourceUnavailable, so that any
// *SourceError matches it regardless of the underlying cause.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NotFound reports whether the source simply does not exist, as opposed to
// existing but being unreadable.
func (e *SourceError) NotFound() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}
