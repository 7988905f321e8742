package errors

func NewConfigNotInitializedError() CodedError {
	return NewCodedError(
		ErrCodeConfigNotInitialized,
		"system configuration is not initialized")
}

func IsConfigNotInitializedError(err error) bool {
	return HasErrorCode(err, ErrCodeConfigNotInitialized)
}

func NewConfigInitializedError() CodedError {
	return NewCodedError(
		ErrCodeConfigInitialized,
		"system configuration is already initialized")
}

func IsConfigInitializedError(err error) bool {
	return HasErrorCode(err, ErrCodeConfigInitialized)
}

// NewConfigLockedErrorf is returned when a configuration change would revert
// the authority to the uninitialized state.
func NewConfigLockedErrorf(msg string, args ...interface{}) CodedError {
	return NewCodedError(
		ErrCodeConfigLocked,
		"configuration change rejected: "+msg,
		args...)
}

func IsConfigLockedError(err error) bool {
	return HasErrorCode(err, ErrCodeConfigLocked)
}
