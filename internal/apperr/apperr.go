// Package apperr carries the domain error taxonomy the HTTP layer maps to
// response statuses.
package apperr

import (
	"errors"
	"fmt"
)

// Kind categorizes a domain error.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
	KindConflict
)

// Error is a categorized domain error. Field is set for validation errors.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound reports a missing entity or a missing referenced entity.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a delete blocked by dependent entities.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Validation reports a violated field constraint.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// Unauthorized reports a bad or missing credential.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden reports a missing role claim.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Internal reports an unexpected fault.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// KindOf extracts the kind from err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
