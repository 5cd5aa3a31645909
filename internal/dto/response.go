package dto

import (
	"time"

	"exam-admin/internal/domain"
)

// NewTimestamp returns the current time as ISO-8601 UTC with milliseconds.
func NewTimestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// SuccessResponse is the envelope of every successful call.
// @Description Success envelope
type SuccessResponse struct {
	Success   bool        `json:"success"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message,omitempty"`
}

func NewSuccessResponse(data interface{}, message string) SuccessResponse {
	return SuccessResponse{
		Success:   true,
		Timestamp: NewTimestamp(),
		Data:      data,
		Message:   message,
	}
}

// ErrorBody carries the machine readable error code.
type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details"`
}

// ErrorResponse is the envelope of every failed call.
// @Description Error envelope
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Timestamp string    `json:"timestamp"`
	Message   string    `json:"message"`
	Error     ErrorBody `json:"error"`
}

// NewErrorResponse builds the error envelope. details defaults to an empty object.
func NewErrorResponse(code domain.ErrorCode, message string, details map[string]interface{}) ErrorResponse {
	if details == nil {
		details = map[string]interface{}{}
	}
	return ErrorResponse{
		Success:   false,
		Timestamp: NewTimestamp(),
		Message:   message,
		Error: ErrorBody{
			Code:    string(code),
			Message: message,
			Details: details,
		},
	}
}

// FormatTime renders stored timestamps as RFC 3339 UTC keeping sub-second precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime is the inverse of FormatTime.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
