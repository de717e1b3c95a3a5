package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies an error.
type ErrorCode string

const (
	// CodeUnknown marks errors of unknown origin
	CodeUnknown ErrorCode = "UNKNOWN"
	// CodeValidation marks invalid input or configuration
	CodeValidation ErrorCode = "VALIDATION"
	// CodeInternal marks failures inside this program
	CodeInternal ErrorCode = "INTERNAL"
	// CodeConflict marks operations refused because of existing state
	CodeConflict ErrorCode = "CONFLICT"
	// CodeExternal marks failures of external resources (streams, files)
	CodeExternal ErrorCode = "EXTERNAL"
)

// BaseError is the common error structure.
type BaseError struct {
	Code    ErrorCode              // error classification
	Message string                 // human-readable message
	Cause   error                  // underlying error, if any
	Context map[string]interface{} // additional context values
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	prefix := ""
	switch e.Code {
	case CodeValidation:
		prefix = "validation error"
	case CodeInternal:
		prefix = "internal error"
	case CodeConflict:
		prefix = "conflict"
	case CodeExternal:
		prefix = "external error"
	default:
		prefix = "error"
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying cause.
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// NewBaseError creates an error with an explicit code.
func NewBaseError(code ErrorCode, message string) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string) *BaseError {
	return NewBaseError(CodeValidation, message)
}

// NewInternalError creates an internal error.
func NewInternalError(message string) *BaseError {
	return NewBaseError(CodeInternal, message)
}

// NewConflictError creates a conflict error.
func NewConflictError(message string) *BaseError {
	return NewBaseError(CodeConflict, message)
}

// NewExternalError creates an external resource error.
func NewExternalError(message string) *BaseError {
	return NewBaseError(CodeExternal, message)
}

// Wrap wraps an error with an additional message, preserving the code
// when the wrapped error is a BaseError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var baseErr *BaseError
	if errors.As(err, &baseErr) {
		newErr := &BaseError{
			Code:    baseErr.Code,
			Message: message,
			Cause:   err,
			Context: baseErr.Context,
		}
		return newErr
	}

	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapValidation wraps an error as a validation error.
func WrapValidation(err error, message string) error {
	if err == nil {
		return nil
	}

	return &BaseError{
		Code:    CodeValidation,
		Message: message,
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// WrapInternal wraps an error as an internal error.
func WrapInternal(err error, message string) error {
	if err == nil {
		return nil
	}

	return &BaseError{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// WrapExternal wraps an error as an external resource error.
func WrapExternal(err error, message string) error {
	if err == nil {
		return nil
	}

	return &BaseError{
		Code:    CodeExternal,
		Message: message,
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// WithContext attaches a context value to the error.
func WithContext(err error, key string, value interface{}) error {
	if err == nil {
		return nil
	}

	var baseErr *BaseError
	if errors.As(err, &baseErr) {
		if baseErr.Context == nil {
			baseErr.Context = make(map[string]interface{})
		}
		baseErr.Context[key] = value
		return baseErr
	}

	newErr := &BaseError{
		Code:    CodeUnknown,
		Message: err.Error(),
		Cause:   err,
		Context: map[string]interface{}{
			key: value,
		},
	}
	return newErr
}

// GetCode returns the error's code, or CodeUnknown for foreign errors.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var baseErr *BaseError
	if errors.As(err, &baseErr) {
		return baseErr.Code
	}

	return CodeUnknown
}

// IsCode reports whether the error carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// IsValidationError reports whether the error is a validation error.
func IsValidationError(err error) bool {
	return IsCode(err, CodeValidation)
}

// IsInternalError reports whether the error is an internal error.
func IsInternalError(err error) bool {
	return IsCode(err, CodeInternal)
}

// IsConflictError reports whether the error is a conflict error.
func IsConflictError(err error) bool {
	return IsCode(err, CodeConflict)
}

// IsExternalError reports whether the error is an external resource error.
func IsExternalError(err error) bool {
	return IsCode(err, CodeExternal)
}
