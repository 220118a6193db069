package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Invocation errors
	ErrUsage ErrorCode = "USAGE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Execution errors. ErrIO covers files that cannot be read and programs
	// that cannot be launched; ErrRunFailure is a program that ran and exited
	// non-zero.
	ErrIO         ErrorCode = "IO"
	ErrRunFailure ErrorCode = "RUN_FAILURE"

	// ErrFatalSwitch wraps the IO or run failure of the branch-switch step.
	ErrFatalSwitch ErrorCode = "FATAL_SWITCH"

	// ErrManifestFailures is raised after a complete run in strict mode when
	// at least one manifest failed.
	ErrManifestFailures ErrorCode = "MANIFEST_FAILURES"
)

// BranchSwitchError represents a structured error with code and details
type BranchSwitchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BranchSwitchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BranchSwitchError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BranchSwitchError) Is(target error) bool {
	var targetErr *BranchSwitchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BranchSwitchError with the given code and message
func New(code ErrorCode, message string) *BranchSwitchError {
	return &BranchSwitchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BranchSwitchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BranchSwitchError {
	return &BranchSwitchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BranchSwitchError
func Wrap(err error, code ErrorCode, message string) *BranchSwitchError {
	if err == nil {
		return nil
	}
	return &BranchSwitchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BranchSwitchError {
	if err == nil {
		return nil
	}
	return &BranchSwitchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BranchSwitchError) WithDetail(key string, value interface{}) *BranchSwitchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code.
// Only the outermost BranchSwitchError in the chain is consulted.
func IsErrorCode(err error, code ErrorCode) bool {
	var bsErr *BranchSwitchError
	if errors.As(err, &bsErr) {
		return bsErr.Code == code
	}
	return false
}

// HasErrorCode reports whether any BranchSwitchError in the chain carries code.
func HasErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var bsErr *BranchSwitchError
		if !errors.As(err, &bsErr) {
			return false
		}
		if bsErr.Code == code {
			return true
		}
		err = bsErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BranchSwitchError
func GetErrorCode(err error) ErrorCode {
	var bsErr *BranchSwitchError
	if errors.As(err, &bsErr) {
		return bsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BranchSwitchError
func GetErrorDetails(err error) map[string]interface{} {
	var bsErr *BranchSwitchError
	if errors.As(err, &bsErr) {
		return bsErr.Details
	}
	return nil
}

// Cause returns the innermost non-BranchSwitchError wrapped in err, or err
// itself when nothing is wrapped. It is the OS-level detail shown to users.
func Cause(err error) error {
	for {
		var bsErr *BranchSwitchError
		if !errors.As(err, &bsErr) || bsErr.Wrapped == nil {
			return err
		}
		err = bsErr.Wrapped
	}
}
