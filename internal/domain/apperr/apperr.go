// Package apperr defines the error taxonomy shared by stores, services,
// and HTTP handlers. Every failure that crosses a package boundary is
// classified with a Kind so the transport layer can map it to a status
// code without inspecting message text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping.
type Kind string

const (
	KindValidation Kind = "validation" // malformed or missing input
	KindNotFound   Kind = "not_found"  // unknown identifier
	KindConflict   Kind = "conflict"   // duplicate key, terminal-state mutation, unpaid session
	KindUpstream   Kind = "upstream"   // external payment provider failure
	KindInternal   Kind = "internal"   // storage failure or unexpected condition
)

// Error carries a kind, a user-safe message, and an optional wrapped cause.
// The cause is for logs only and never reaches a response body.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a validation-kind error with a formatted message.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a not-found-kind error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict returns a conflict-kind error.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Upstream wraps a payment-provider failure. The cause stays internal.
func Upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}

// Internal wraps a storage or unexpected failure behind a generic message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for
// unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf extracts the user-safe message from err. Unclassified errors
// report a generic message so internals never leak.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
