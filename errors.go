package rawtext

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rawtext/source"
)

var (
	// ErrNotFound is returned when the named content does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoSource is returned when no source is configured and the platform has no default.
	ErrNoSource = errors.New("no source configured")
)

// OpenError indicates that a document could not be loaded.
//
// The underlying error can be accessed via errors.Unwrap.
type OpenError struct {
	Name  string
	cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Name, e.cause)
}

func (e *OpenError) Unwrap() error { return e.cause }

func translateError(name string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, source.ErrNotFound) {
		return &OpenError{Name: name, cause: fmt.Errorf("%w: %w", ErrNotFound, err)}
	}

	return &OpenError{Name: name, cause: err}
}
