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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Platform errors
	ErrUnsupportedPlatform ErrorCode = "UNSUPPORTED_PLATFORM"

	// Filesystem errors
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrBackupFailed  ErrorCode = "BACKUP_FAILED"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrProfileAppend ErrorCode = "PROFILE_APPEND"

	// Installer errors
	ErrDownloadFailed  ErrorCode = "DOWNLOAD_FAILED"
	ErrExtractFailed   ErrorCode = "EXTRACT_FAILED"
	ErrPlacementFailed ErrorCode = "PLACEMENT_FAILED"
	ErrInstallFailed   ErrorCode = "INSTALL_FAILED"

	// External command errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrToolMissing   ErrorCode = "TOOL_MISSING"

	// Composite task errors
	ErrTaskFailed ErrorCode = "TASK_FAILED"
)

// DotfilesError represents a structured error with code and details
type DotfilesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotfilesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotfilesError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotfilesError) Is(target error) bool {
	var targetErr *DotfilesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotfilesError with the given code and message
func New(code ErrorCode, message string) *DotfilesError {
	return &DotfilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotfilesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotfilesError {
	return &DotfilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotfilesError
func Wrap(err error, code ErrorCode, message string) *DotfilesError {
	if err == nil {
		return nil
	}
	return &DotfilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotfilesError {
	if err == nil {
		return nil
	}
	return &DotfilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotfilesError) WithDetail(key string, value interface{}) *DotfilesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dfErr *DotfilesError
	if errors.As(err, &dfErr) {
		return dfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotfilesError
func GetErrorCode(err error) ErrorCode {
	var dfErr *DotfilesError
	if errors.As(err, &dfErr) {
		return dfErr.Code
	}
	return ErrUnknown
}
