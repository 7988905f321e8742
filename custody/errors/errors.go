package errors

import (
	stdErrors "errors"
	"fmt"
)

// CodedError is a terminal rejection of a custody operation. Nothing the
// rejected operation did is persisted.
type CodedError struct {
	code ErrorCode
	err  error
}

func NewCodedError(code ErrorCode, format string, formatArguments ...interface{}) CodedError {
	return CodedError{
		code: code,
		err:  fmt.Errorf(format, formatArguments...),
	}
}

func WrapCodedError(code ErrorCode, err error, prefixMsgFormat string, formatArguments ...interface{}) CodedError {
	if prefixMsgFormat != "" {
		msg := fmt.Sprintf(prefixMsgFormat, formatArguments...)
		err = fmt.Errorf("%s: %w", msg, err)
	}
	return CodedError{
		code: code,
		err:  err,
	}
}

func (err CodedError) Unwrap() error {
	return err.err
}

func (err CodedError) Error() string {
	return fmt.Sprintf("%v %v", err.code, err.err)
}

func (err CodedError) Code() ErrorCode {
	return err.code
}

// Find returns the shallowest CodedError in the error chain.
func Find(originalErr error) (CodedError, bool) {
	if originalErr == nil {
		return CodedError{}, false
	}
	var coded CodedError
	if !stdErrors.As(originalErr, &coded) {
		return CodedError{}, false
	}
	return coded, true
}

// HasErrorCode returns true if the error chain contains a CodedError with the
// given code.
func HasErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var coded CodedError
		if !stdErrors.As(err, &coded) {
			return false
		}
		if coded.code == code {
			return true
		}
		err = coded.err
	}
	return false
}

// IsCodedError returns true if the error chain contains any CodedError.
func IsCodedError(err error) bool {
	_, ok := Find(err)
	return ok
}
