package style

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColor is wrapped by every *ParseError.
	ErrInvalidColor = errors.New("style: invalid color")

	// ErrSourceUnavailable reports that the watcher could not enumerate or
	// observe its external source.
	ErrSourceUnavailable = errors.New("style: external source unavailable")

	// ErrNilSource is returned by NewWatcher when no source is supplied.
	ErrNilSource = errors.New("style: nil source")

	// ErrNilRegistry is returned by NewWatcher when no registry is supplied.
	ErrNilRegistry = errors.New("style: nil registry")
)

// ParseError describes a raw style value that is not a supported color.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("style: invalid color %q: %s", e.Input, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidColor) match.
func (e *ParseError) Unwrap() error { return ErrInvalidColor }
