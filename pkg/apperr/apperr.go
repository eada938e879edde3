// Package apperr defines the error taxonomy shared by all services.
//
// Services return apperr values; the controllers map them to HTTP status
// codes exactly once at the boundary (see app/controllers). Anything that is
// not an apperr is treated as an internal error.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for boundary mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindDomain
)

// Error is a classified application error.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string]string // field-level detail, validation errors only
	Err    error             // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets sentinel comparisons like errors.Is(err, ErrInsufficientStock)
// match wrapped copies carrying extra context.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Domain sentinels. Compare with errors.Is.
var (
	ErrInvalidCredentials = &Error{Kind: KindAuthentication, Msg: "invalid credentials"}
	ErrWeakPassword       = &Error{Kind: KindDomain, Msg: "password must be at least 8 characters"}
	ErrInvalidPage        = &Error{Kind: KindDomain, Msg: "invalid page number"}
	ErrInvalidQuantity    = &Error{Kind: KindDomain, Msg: "invalid quantity"}
	ErrInsufficientStock  = &Error{Kind: KindDomain, Msg: "insufficient stock of the desired product"}
	ErrInvalidTransition  = &Error{Kind: KindDomain, Msg: "invalid order status transition"}
)

// NotFound builds a not-found error for the named entity.
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Msg: entity + " not found"}
}

// NotFoundWrap builds a not-found error wrapping the store-level cause.
func NotFoundWrap(entity string, err error) *Error {
	return &Error{Kind: KindNotFound, Msg: entity + " not found", Err: err}
}

// Domain builds a business-rule violation with a custom message.
func Domain(msg string) *Error {
	return &Error{Kind: KindDomain, Msg: msg}
}

// Domainf builds a business-rule violation from a format string.
func Domainf(format string, args ...any) *Error {
	return &Error{Kind: KindDomain, Msg: fmt.Sprintf(format, args...)}
}

// Validation builds a validation error carrying a field→message map.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Msg: "validation failed", Fields: fields}
}

// Internal wraps an unexpected failure.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf extracts the Kind from any error; non-apperr errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf returns the field-level detail of a validation error, or nil.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// HTTPStatus maps an error kind to the status code written at the boundary.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindDomain:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
