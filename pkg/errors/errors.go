package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error code onto an HTTP status.
func (e *AppError) StatusCode() int {
	if e.Code.IsClientFault() {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// PublicMessage is the text that may be shown to a caller. Internal
// faults never expose their detail.
func (e *AppError) PublicMessage() string {
	if e.Code.IsClientFault() {
		return e.Message
	}
	return "internal server error"
}

// Common error codes
const (
	ErrMissingField ErrorCode = iota + 1000
	ErrInvalidFormat
	ErrOutOfRange
	ErrUnsupportedType
	ErrStorage
	ErrInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrMissingField:
		return "MissingFieldError"
	case ErrInvalidFormat:
		return "InvalidFormatError"
	case ErrOutOfRange:
		return "OutOfRangeError"
	case ErrUnsupportedType:
		return "UnsupportedTypeError"
	case ErrStorage:
		return "StorageError"
	default:
		return "InternalError"
	}
}

// IsClientFault reports whether the code describes bad caller input.
func (c ErrorCode) IsClientFault() bool {
	switch c {
	case ErrMissingField, ErrInvalidFormat, ErrOutOfRange, ErrUnsupportedType:
		return true
	}
	return false
}

// Error constructors
func NewMissingField(field string) *AppError {
	return &AppError{
		Code:    ErrMissingField,
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormat(field, message string, err error) *AppError {
	return &AppError{
		Code:    ErrInvalidFormat,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

func NewOutOfRange(field, message string) *AppError {
	return &AppError{
		Code:    ErrOutOfRange,
		Field:   field,
		Message: message,
	}
}

func NewUnsupportedType(field, message string) *AppError {
	return &AppError{
		Code:    ErrUnsupportedType,
		Field:   field,
		Message: message,
	}
}

func NewStorage(err error) *AppError {
	return &AppError{
		Code:    ErrStorage,
		Message: "storage failure",
		Err:     err,
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// Classify returns err as an *AppError, wrapping anything unrecognised
// as an internal fault.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}

// HasCode reports whether err classifies to the given code.
func HasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
