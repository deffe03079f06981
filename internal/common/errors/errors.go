// Package errors provides standardized error handling for the slot-alert run.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Every code is terminal: the run aborts on the first error and nothing
// is retried.
const (
	ErrCodeFetchFailed   ErrorCode = "FETCH_FAILED"
	ErrCodeRequestFailed ErrorCode = "REQUEST_FAILED"
	ErrCodeDecodeFailed  ErrorCode = "DECODE_FAILED"
	ErrCodeNotifyFailed  ErrorCode = "NOTIFY_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	StatusCode int                    `json:"statusCode,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewFetchError creates a transport-level CoWIN API error.
func NewFetchError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFetchFailed,
		Message:   "CoWIN API request could not be completed",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestFailedError creates an error for a non-200 CoWIN API status.
func NewRequestFailedError(status int) *StandardError {
	return &StandardError{
		Code:       ErrCodeRequestFailed,
		Message:    "CoWIN API rejected the request",
		Details:    fmt.Sprintf("status: %d", status),
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
	}
}

// NewDecodeError creates an error for an undecodable CoWIN API body.
func NewDecodeError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDecodeFailed,
		Message:   "CoWIN API response could not be decoded",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewResponseShapeError creates an error for a CoWIN body that decoded but
// failed schema validation.
func NewResponseShapeError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDecodeFailed,
		Message:   "CoWIN API response has an unexpected shape",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotifyError creates a transport-level webhook delivery error.
func NewNotifyError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotifyFailed,
		Message:   "Slack webhook delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Metadata:  map[string]interface{}{"channel": channel},
		Timestamp: time.Now().UTC(),
	}
}

// NewNotifyRejectedError creates an error for a non-2xx webhook response.
func NewNotifyRejectedError(channel string, status int) *StandardError {
	return &StandardError{
		Code:       ErrCodeNotifyFailed,
		Message:    "Slack webhook rejected the message",
		Details:    fmt.Sprintf("channel: %s, status: %d", channel, status),
		StatusCode: status,
		Metadata:   map[string]interface{}{"channel": channel},
		Timestamp:  time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandardError returns err as a *StandardError when it is one.
func AsStandardError(err error) (*StandardError, bool) {
	stdErr, ok := err.(*StandardError)
	return stdErr, ok
}

// CodeOf returns the code carried by err, or empty when err carries none.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Code
	}
	return ""
}

// IsCode checks whether err is a StandardError with the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}
