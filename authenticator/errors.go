package authenticator

import (
	"errors"
	"fmt"
)

// Kind classifies an authentication failure
type Kind string

const (
	KindConfig       Kind = "config_error"
	KindMissingCode  Kind = "missing_code"
	KindOAuth        Kind = "oauth_error"
	KindUnauthorized Kind = "unauthorized"
	KindTransport    Kind = "transport_error"
	KindInvalidState Kind = "invalid_state"
)

// Error is a tagged authentication failure. Every failure in the
// flow is returned to the immediate caller as one of these; nothing
// is retried internally.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errf builds a tagged error with a formatted message
func Errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error, preserving it for errors.Is/As
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// KindOf extracts the failure kind from an error, "" if untagged
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
