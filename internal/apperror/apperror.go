package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an application error and fixes its HTTP status.
type Kind struct {
	Code   string
	Status int
}

var (
	KindValidation = Kind{"validation_error", http.StatusBadRequest}
	KindDuplicate  = Kind{"duplicate_error", http.StatusBadRequest}
	KindAuth       = Kind{"auth_error", http.StatusUnauthorized}
	KindForbidden  = Kind{"forbidden", http.StatusForbidden}
	KindNotFound   = Kind{"not_found", http.StatusNotFound}
	KindStore      = Kind{"operation_failed", http.StatusInternalServerError}
)

// Error is the component-level error surfaced to route handlers. The Message is
// fixed and safe to return to clients; the wrapped cause is for logs only.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string // per-field validation detail, nil otherwise
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) HTTPStatus() int {
	return e.Kind.Status
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap attaches an underlying cause without leaking it into the message.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, cause: cause}
}

func Validation(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func Duplicate(msg string) *Error  { return New(KindDuplicate, msg) }
func Auth(msg string) *Error      { return New(KindAuth, msg) }
func Forbidden(msg string) *Error { return New(KindForbidden, msg) }
func NotFound(msg string) *Error  { return New(KindNotFound, msg) }

// Store wraps a persistence failure as a generic "operation failed" error.
func Store(cause error) *Error {
	return Wrap(KindStore, "operation failed", cause)
}

// As extracts an *Error from any error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	if appErr, ok := As(err); ok {
		return appErr.Kind == kind
	}
	return false
}
