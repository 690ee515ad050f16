package rest

import (
	"errors"
	"fmt"
)

// ErrorCode classifies connector errors. Transport-level failures
// (timeout, DNS, connection refused) are not classified here; they
// propagate from the HTTP layer unwrapped.
type ErrorCode int

const (
	// ErrCodeConfiguration indicates invalid or incomplete connection
	// configuration (missing host/ip, structured payload without a
	// content type).
	ErrCodeConfiguration ErrorCode = iota
	// ErrCodeNotConnected indicates an operation was attempted while
	// the client is disconnected.
	ErrCodeNotConnected
	// ErrCodeUnexpectedStatus indicates a response status code outside
	// the expected set.
	ErrCodeUnexpectedStatus
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConfiguration:
		return "configuration"
	case ErrCodeNotConnected:
		return "not_connected"
	case ErrCodeUnexpectedStatus:
		return "unexpected_status"
	default:
		return "unknown"
	}
}

// Error is a structured connector error.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Device identifies the device the error relates to.
	Device string
	// Alias is the connection alias, when one is set.
	Alias string
	// StatusCode is the HTTP status code received (unexpected-status
	// errors only).
	StatusCode int
	// Expected is the status-code set the caller accepted
	// (unexpected-status errors only).
	Expected []int
	// Body is the raw response body (unexpected-status errors only).
	Body []byte
	// Message describes the error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Device != "" {
		return fmt.Sprintf("rest: %s: '%s': %s", e.Code, e.Device, e.Message)
	}
	return fmt.Sprintf("rest: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(device, message string) *Error {
	return &Error{
		Code:    ErrCodeConfiguration,
		Device:  device,
		Message: message,
	}
}

// NewNotConnectedError creates an error for an operation attempted on
// a disconnected client.
func NewNotConnectedError(device, alias string) *Error {
	msg := "not connected"
	if alias != "" {
		msg = fmt.Sprintf("not connected for alias '%s'", alias)
	}
	return &Error{
		Code:    ErrCodeNotConnected,
		Device:  device,
		Alias:   alias,
		Message: msg,
	}
}

// NewStatusError creates an error for a response status code outside
// the expected set.
func NewStatusError(device string, statusCode int, expected []int, body []byte) *Error {
	return &Error{
		Code:       ErrCodeUnexpectedStatus,
		Device:     device,
		StatusCode: statusCode,
		Expected:   expected,
		Body:       body,
		Message: fmt.Sprintf("'%d' result code has been returned instead of the expected status code(s) '%v'",
			statusCode, expected),
	}
}

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConfiguration
}

// IsNotConnected checks if an error is a not-connected error.
func IsNotConnected(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNotConnected
}

// IsUnexpectedStatus checks if an error is an unexpected-status error.
func IsUnexpectedStatus(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeUnexpectedStatus
}
