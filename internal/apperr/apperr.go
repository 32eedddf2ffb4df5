// Package apperr defines the tagged error carried from handlers to the HTTP
// error middleware.
//
// An *Error holds a Kind (stable machine code), a human message, the HTTP
// status to respond with, and whether the failure is operational. Operational
// errors are anticipated, client-facing failures (bad input, not found) whose
// message is safe to show verbatim. Everything else is a defect: the message
// is kept for logs and hidden from clients unless stack exposure is enabled.
//
// Every error records the stack at construction so the middleware can surface
// it in non-production environments.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// Kind is the machine-readable category of an error.
type Kind string

const (
	KindBadRequest       Kind = "bad_request"
	KindNotFound         Kind = "not_found"
	KindValidation       Kind = "validation_failed"
	KindMethodNotAllowed Kind = "method_not_allowed"
	KindConflict         Kind = "conflict"
	KindInternal         Kind = "internal_error"
)

// ValidationMessage replaces store-level schema errors shown to clients.
const ValidationMessage = "required fields missing or invalid"

// Error is the tagged application error.
type Error struct {
	Kind        Kind
	Message     string
	StatusCode  int
	Operational bool

	cause error
	trace error // pkg/errors value holding the captured stack
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil && e.cause.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Stack returns the formatted stack captured when the error was built.
func (e *Error) Stack() string {
	if e.trace == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.trace)
}

// New builds an operational error for the given status and message. The kind
// is derived from the status.
func New(status int, message string) *Error {
	return &Error{
		Kind:        kindFor(status),
		Message:     message,
		StatusCode:  status,
		Operational: true,
		trace:       pkgerrors.New(message),
	}
}

// BadRequest is New(400, message).
func BadRequest(message string) *Error { return New(http.StatusBadRequest, message) }

// NotFound is New(404, message).
func NotFound(message string) *Error { return New(http.StatusNotFound, message) }

// Validation wraps a store schema failure. The client sees ValidationMessage;
// the cause keeps the field-level detail for logs.
func Validation(cause error) *Error {
	return &Error{
		Kind:        KindValidation,
		Message:     ValidationMessage,
		StatusCode:  http.StatusBadRequest,
		Operational: true,
		cause:       cause,
		trace:       withStack(cause, ValidationMessage),
	}
}

// Internal wraps an unexpected failure. It is never operational.
func Internal(cause error) *Error {
	msg := "internal server error"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Kind:        KindInternal,
		Message:     msg,
		StatusCode:  http.StatusInternalServerError,
		Operational: false,
		cause:       cause,
		trace:       withStack(cause, msg),
	}
}

// From extracts the first *Error in err's chain.
func From(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func withStack(cause error, msg string) error {
	if cause == nil {
		return pkgerrors.New(msg)
	}
	return pkgerrors.WithStack(cause)
}

func kindFor(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusMethodNotAllowed:
		return KindMethodNotAllowed
	case status == http.StatusConflict:
		return KindConflict
	case status >= 500:
		return KindInternal
	default:
		return KindBadRequest
	}
}
