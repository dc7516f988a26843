package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// NetworkError is returned when the request never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is a non-2xx response, carrying the server-supplied message when present.
type HTTPStatusError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPStatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// DecodeError reports a response or stored value that could not be deserialized.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Kind classifies an error for presentation.
type Kind int

const (
	KindUnknown Kind = iota
	KindSessionExpired
	KindForbidden
	KindNotFound
	KindServer
	KindValidation
	KindMissingToken
	KindNetwork
	KindDecode
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindSessionExpired:
		return "session_expired"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindValidation:
		return "validation"
	case KindMissingToken:
		return "missing_token"
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// KindOf classifies err. It has no side effects.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return kindForStatus(statusErr.StatusCode)
	}

	var validationErrs *ValidationErrors
	var decodeErr *DecodeError
	var networkErr *NetworkError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, ErrMissingToken):
		return KindMissingToken
	case errors.As(err, &validationErrs):
		return KindValidation
	case errors.As(err, &decodeErr):
		return KindDecode
	case errors.As(err, &networkErr):
		return KindNetwork
	}
	return KindUnknown
}

func kindForStatus(code int) Kind {
	switch {
	case code == http.StatusUnauthorized:
		return KindSessionExpired
	case code == http.StatusForbidden:
		return KindForbidden
	case code == http.StatusNotFound:
		return KindNotFound
	case code == http.StatusUnprocessableEntity, code == http.StatusBadRequest:
		return KindValidation
	case code >= 500:
		return KindServer
	}
	return KindUnknown
}

// User-facing messages
const (
	MsgSessionExpired = "Session expired. Please login again."
	MsgForbidden      = "Access denied. You don't have permission to perform this action."
	MsgNotFound       = "Resource not found. Please check your request."
	MsgServer         = "Server error. Please try again later."
	MsgUnexpected     = "An unexpected error occurred."
)

// UserMessage maps err to the single message shown to the operator.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	switch KindOf(err) {
	case KindSessionExpired:
		return MsgSessionExpired
	case KindForbidden:
		return MsgForbidden
	case KindNotFound:
		return MsgNotFound
	case KindServer:
		return MsgServer
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgUnexpected
}
