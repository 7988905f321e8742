package irrecoverable

import (
	"errors"
	"fmt"
)

// exception represents an unexpected error. An unexpected error is any error
// returned by a function, other than the error specifically documented as
// expected in that function's interface.
//
// It wraps an error, which could be a sentinel error. It does not unwrap to
// the inner error, so that an exception is never mistaken for the sentinel
// it wraps (for example storage.ErrNotFound).
type exception struct {
	err error
}

func (e exception) Error() string {
	return e.err.Error()
}

// NewException wraps the input error as an exception, stripping any sentinel
// error information from the error chain.
func NewException(err error) error {
	return exception{err: err}
}

// NewExceptionf is the formatted variant of NewException.
func NewExceptionf(msg string, args ...interface{}) error {
	return exception{err: fmt.Errorf(msg, args...)}
}

// IsException reports whether err is or wraps an exception.
func IsException(err error) bool {
	var e exception
	return errors.As(err, &e)
}
