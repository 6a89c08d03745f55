// Package apperr defines the closed error taxonomy shared by the service and
// transport layers.
//
// Services construct the most specific [Kind] available when a precondition
// fails; the HTTP boundary renders any *Error through the response envelope.
// Errors that are not *Error values surface as Internal without exposing
// their details to the client.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is one of the closed set of error categories. Each kind maps to a
// fixed HTTP status code.
type Kind int

const (
	// Internal is an unexpected failure: persistence error, programming
	// error, or anything not classified by a more specific kind.
	Internal Kind = iota

	// BadRequest is malformed or invalid input, including validation failures.
	BadRequest

	// Unauthorized is missing or invalid credentials or token.
	Unauthorized

	// Forbidden is an authenticated request that is not permitted.
	Forbidden

	// NotFound is a referenced entity that does not exist.
	NotFound

	// Conflict is a uniqueness or state conflict, e.g. a duplicate email.
	Conflict
)

// Status returns the HTTP status code associated with the kind.
func (k Kind) Status() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case BadRequest:
		return "bad request"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	default:
		return "internal server error"
	}
}

// Error is a taxonomy instance: a kind, a client-safe message, and an
// optional wrapped cause preserved for [errors.Is] and [errors.As].
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// New constructs a taxonomy error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs a taxonomy error that preserves cause for unwrapping.
// The message, not the cause, is what clients see.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped cause to the errors package helpers.
func (e *Error) Unwrap() error {
	return e.cause
}

// Status returns the HTTP status code of the error's kind.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// From classifies an arbitrary error. A *Error anywhere in err's chain is
// returned as-is; anything else becomes Internal with a generic message so
// that internal details never reach a response body.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(Internal, http.StatusText(http.StatusInternalServerError), err)
}

// IsKind reports whether err carries a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
