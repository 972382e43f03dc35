package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for the HTTP responder.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindBadRequest   Kind = "bad_request"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUpstream     Kind = "upstream"
	KindInternal     Kind = "internal"
)

// FieldError is one entry of a structured validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a client-facing failure carrying its HTTP status.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Errors  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Wrap attaches an underlying cause that is logged but never rendered.
func (e *Error) Wrap(cause error) *Error {
	clone := *e
	clone.cause = cause
	return &clone
}

func newError(kind Kind, status int, msg string) *Error {
	return &Error{Kind: kind, Status: status, Message: msg}
}

func Validation(msg string, fields ...FieldError) *Error {
	e := newError(KindValidation, http.StatusBadRequest, msg)
	e.Errors = fields
	return e
}

func BadRequest(msg string) *Error { return newError(KindBadRequest, http.StatusBadRequest, msg) }

func NotFound(msg string) *Error { return newError(KindNotFound, http.StatusNotFound, msg) }

// Conflict covers duplicate keys and deletions blocked by references; both render as 400.
func Conflict(msg string) *Error { return newError(KindConflict, http.StatusBadRequest, msg) }

func Unauthorized(msg string) *Error {
	return newError(KindUnauthorized, http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *Error { return newError(KindForbidden, http.StatusForbidden, msg) }

// Upstream reports a gateway failure with the gateway's own status code.
func Upstream(status int, msg string) *Error {
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	return newError(KindUpstream, status, msg)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr != nil {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
