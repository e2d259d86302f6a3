package oerror

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBody      = errors.New("physics body is required")
	ErrNoModules        = errors.New("at least one movement module is required")
	ErrMissingDefault   = errors.New("default movement module is not registered")
	ErrDuplicateTag     = errors.New("movement module tag registered twice")
	ErrDuplicateOverlay = errors.New("overlay id registered twice")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

type OomphError struct {
	Err  string
	kind error
}

// New returns an error formatted with the given arguments.
func New(format string, args ...any) *OomphError {
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of the given kind, formatted with the given arguments. The result
// matches kind with errors.Is.
func Wrap(kind error, format string, args ...any) *OomphError {
	return &OomphError{Err: fmt.Sprintf(format, args...), kind: kind}
}

func (e *OomphError) Error() string {
	if e.kind != nil {
		return e.kind.Error() + ": " + e.Err
	}
	return e.Err
}

func (e *OomphError) Unwrap() error {
	return e.kind
}
