package loosejson

import (
	"errors"
	"fmt"
)

// Standard library errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrMultipleJSON    = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeIndex   ErrorType = "index"
	ErrorTypeDecode  ErrorType = "decode"
	ErrorTypeConvert ErrorType = "convert"
)

// Error is a library-specific error with context
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewIndexError creates a new error for an out-of-bounds index
func NewIndexError(index, size int) *Error {
	return &Error{
		Type:    ErrorTypeIndex,
		Message: fmt.Sprintf("index %d out of range for length %d", index, size),
		Err:     ErrIndexOutOfRange,
	}
}

// NewDecodeError creates a new error related to JSON decoding
func NewDecodeError(message string, err error) *Error {
	return &Error{
		Type:    ErrorTypeDecode,
		Message: message,
		Err:     err,
	}
}

// NewConvertError creates a new error related to host value conversion
func NewConvertError(message string, err error) *Error {
	return &Error{
		Type:    ErrorTypeConvert,
		Message: message,
		Err:     err,
	}
}
