package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork         ErrorType = "network"
	ErrorTypeRateLimit       ErrorType = "rate_limit"
	ErrorTypeAuth            ErrorType = "auth"
	ErrorTypeParsing         ErrorType = "parsing"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeServerError     ErrorType = "server_error"
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	ErrorTypeUnavailable     ErrorType = "unavailable"
	ErrorTypeConfig          ErrorType = "config"
	ErrorTypeUnknown         ErrorType = "unknown"
)

// Error is a typed error carrying an optional HTTP status code and, for
// invalid arguments, the name of the offending field.
type Error struct {
	Type    ErrorType
	Message string
	Code    int
	Field   string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Code != 0 {
		msg = fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, msg)
	} else {
		msg = fmt.Sprintf("%s error: %s", e.Type, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given type.
func New(t ErrorType, message string) *Error {
	return &Error{Type: t, Message: message}
}

// Newf creates an error of the given type with a formatted message.
func Newf(t ErrorType, format string, args ...interface{}) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a type and message to an underlying error.
func Wrap(t ErrorType, err error, message string) *Error {
	return &Error{Type: t, Message: message, Err: err}
}

// InvalidArgument reports a bad caller-supplied value for field.
func InvalidArgument(field, format string, args ...interface{}) *Error {
	return &Error{
		Type:    ErrorTypeInvalidArgument,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
	}
}

// Unavailable reports that an upstream capability cannot serve the request.
func Unavailable(message string, err error) *Error {
	return &Error{Type: ErrorTypeUnavailable, Message: message, Err: err}
}

// FromStatus builds an error for an unexpected HTTP response status.
func FromStatus(statusCode int, message string) *Error {
	t := ErrorTypeUnknown
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		t = ErrorTypeAuth
	case statusCode == http.StatusNotFound:
		t = ErrorTypeNotFound
	case statusCode == http.StatusTooManyRequests:
		t = ErrorTypeRateLimit
	case statusCode >= 500:
		t = ErrorTypeServerError
	}
	return &Error{Type: t, Message: message, Code: statusCode}
}

// TypeOf returns the type of the first *Error in err's chain, or
// ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeUnknown
}

// IsType reports whether err's chain contains an *Error of type t.
func IsType(err error, t ErrorType) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Type == t
}

func IsInvalidArgument(err error) bool { return IsType(err, ErrorTypeInvalidArgument) }

func IsNotFound(err error) bool { return IsType(err, ErrorTypeNotFound) }

func IsUnavailable(err error) bool { return IsType(err, ErrorTypeUnavailable) }

// FieldOf returns the field name attached to an invalid argument error.
func FieldOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Field
	}
	return ""
}

// MessageOf returns the message of the first *Error in err's chain without
// its type prefix, or err.Error() for untyped errors.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status code the API responds with.
func HTTPStatus(err error) int {
	switch TypeOf(err) {
	case ErrorTypeInvalidArgument:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeRateLimit:
		return http.StatusTooManyRequests
	case ErrorTypeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorTypeAuth, ErrorTypeNetwork, ErrorTypeServerError, ErrorTypeParsing:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsRetryable checks if an error type should be retried
func IsRetryable(errorType ErrorType) bool {
	switch errorType {
	case ErrorTypeNetwork, ErrorTypeRateLimit, ErrorTypeServerError:
		return true
	default:
		return false
	}
}

// IsRetryableStatusCode checks if an HTTP status code indicates a retryable error
func IsRetryableStatusCode(statusCode int) bool {
	switch statusCode {
	case 0: // Network error
		return true
	case 429:
		return true
	case 401, 403, 404:
		return false
	default:
		return statusCode >= 500
	}
}
