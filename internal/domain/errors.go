package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error surfaced by the API
type ErrorCode string

const (
	CodeValidation       ErrorCode = "VALIDATION_ERROR"
	CodeDatabase         ErrorCode = "DATABASE_ERROR"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents an error that is rendered into the response envelope
type DomainError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithDetail attaches a key to the error details.
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewValidationError reports a list of human readable validation failures.
func NewValidationError(messages ...string) *DomainError {
	err := NewError(CodeValidation, "数据验证失败", nil)
	if len(messages) > 0 {
		err.WithDetail("errors", messages)
	}
	return err
}

// NewInvalidRequestError is a validation error with its own top level message.
func NewInvalidRequestError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewConflictError(message string) *DomainError {
	return NewError(CodeConflict, message, nil)
}

// NewDatabaseError wraps a storage failure. The driver message is kept verbatim in details.
func NewDatabaseError(message string, cause error) *DomainError {
	err := NewError(CodeDatabase, message, cause)
	if cause != nil {
		err.WithDetail("error", cause.Error())
	}
	return err
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// ValidationMessages returns the collected messages of a validation error, if any.
func ValidationMessages(err error) []string {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != CodeValidation {
		return nil
	}
	messages, _ := domainErr.Details["errors"].([]string)
	return messages
}
