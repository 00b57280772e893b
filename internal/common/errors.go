// Package common defines the error kinds shared by the service and transport
// layers. Callers should use errors.Is against the exported sentinels or
// KindOf to classify an error.
package common

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories an operation can report.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindCredential
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindNotFound:
		return "NOT_FOUND"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindCredential:
		return "INVALID_CREDENTIALS"
	default:
		return "INTERNAL"
	}
}

// Error is an operation failure of a known Kind. Message is safe to show to
// clients; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Internal wraps an unexpected failure. The cause never reaches the client.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: ErrorInternal.Message, Err: err}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind. A target without a message
// matches every error of its kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Detail returns the message together with the wrapped cause, for logging.
func (e *Error) Detail() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// KindOf reports the kind of err. Errors that carry no kind are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Operation-level kinds, usable as errors.Is targets.
	ErrorInternal           = &Error{Kind: KindInternal, Message: "internal error"}
	ErrorValidation         = &Error{Kind: KindValidation}
	ErrorMissing            = &Error{Kind: KindNotFound}
	ErrorUnauthorized       = &Error{Kind: KindUnauthorized}
	ErrorInvalidCredentials = &Error{Kind: KindCredential}

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
