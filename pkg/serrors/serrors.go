// Package serrors provides semantic error kinds that survive wrapping. A Kind
// is a comparable sentinel describing the category of a failure (not found,
// validation, conflict, ...); the Error wrapper attaches a kind plus an
// optional message and cause while staying fully compatible with
// errors.Is/As. Transport layers map kinds to status codes without inspecting
// error strings.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is the marker interface implemented by sentinels created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new comparable error category sentinel.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds used across the service. Handlers translate them into HTTP status
// codes; everything else matches on them with errors.Is.
var (
	// ErrNotFound indicates the requested record does not exist or is not
	// visible to the caller.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller may not act on this resource.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates a malformed or unparsable request.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrValidation indicates a well-formed request whose values fail a
	// domain rule, e.g. scan masses that do not add up.
	ErrValidation = NewKind("VALIDATION")
	// ErrConflict indicates a state conflict such as a duplicate submission.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates a dependency is temporarily unreachable.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// errors.Is and errors.As match against both the kind sentinel and the
// wrapped cause. The Error() string is "<msg>: <cause>" when both are set,
// otherwise whichever is present, falling back to the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds a semantic error from a kind and a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds a semantic error that keeps the concrete cause in the chain.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds a semantic error carrying just the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap exposes the wrapped cause to errors.Unwrap/Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches the target against the kind sentinel as well as the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches the target against the kind sentinel as well as the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the category sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the attached message, if any.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, if any.
func (e *Error) Cause() error { return e.err }
