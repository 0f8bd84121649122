// Package simerr defines the structured error kinds the simulation
// surfaces across package boundaries (see spec §7, "Error Handling
// Design"). Physics closures never return these — they clamp and return
// safe values — but solver, replication, and driver boundaries do, so
// that an FFI layer can translate a Kind to a stable integer code without
// string-matching error messages.
package simerr

import (
	"errors"
	"fmt"
)

// Kind identifies a structured error category.
type Kind int

const (
	// InvalidInput covers NaN/negative Δt, non-positive dimensions, null
	// heightmap data, out-of-range enum values.
	InvalidInput Kind = iota
	// InvariantViolation covers an internal assertion failing, e.g. phi
	// going NaN after a step.
	InvariantViolation
	// DomainLimit covers a CFL violation or similar soft numerical-limit
	// condition; callers are expected to reduce Δt and retry.
	DomainLimit
	// NotFound covers an unknown element or event id.
	NotFound
	// IOError covers replay serialization/deserialization and compression
	// failures.
	IOError
	// BackendUnavailable covers a GPU backend request when no device is
	// present; callers fall back to CPU transparently.
	BackendUnavailable
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case InvariantViolation:
		return "invariant_violation"
	case DomainLimit:
		return "domain_limit"
	case NotFound:
		return "not_found"
	case IOError:
		return "io_error"
	case BackendUnavailable:
		return "backend_unavailable"
	default:
		return "unknown"
	}
}

// Error is a structured error carrying a Kind alongside the usual wrapped
// cause, so callers can branch on Kind via errors.As instead of matching
// message text.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an *Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an *Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error wrapping cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var se *Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Kind == kind
}
