package core

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindMissingCredential ErrorKind = "missing_credential"
	KindRateLimited       ErrorKind = "rate_limited"
	KindProvider          ErrorKind = "provider_error"
	KindUnreadable        ErrorKind = "unreadable_response"
	KindValidation        ErrorKind = "validation_error"
)

var (
	ErrBlockNotFound    = errors.New("no fenced block in provider response")
	ErrMalformedPayload = errors.New("malformed payload")
)

// Error is the classified failure of one pipeline run.
type Error struct {
	Kind    ErrorKind
	Message string
	// Raw is the provider's text, kept for diagnostics when it could not be read.
	Raw   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewMissingCredentialError(provider, hint string) *Error {
	msg := fmt.Sprintf("no API key configured for %s", provider)
	if hint != "" {
		msg += " (" + hint + ")"
	}
	return &Error{Kind: KindMissingCredential, Message: msg}
}

func NewRateLimitedError(cause error) *Error {
	return &Error{
		Kind:    KindRateLimited,
		Message: "daily search limit reached, try again tomorrow",
		Cause:   cause,
	}
}

func NewProviderError(cause error) *Error {
	return &Error{Kind: KindProvider, Message: "search provider failed", Cause: cause}
}

func NewUnreadableError(raw string, cause error) *Error {
	return &Error{
		Kind:    KindUnreadable,
		Message: "could not understand results",
		Raw:     raw,
		Cause:   cause,
	}
}

// ValidationError rejects caller input before compilation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

// KindOf classifies any error returned by this package. Unknown errors are
// reported as provider errors.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	var ve ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	return KindProvider
}

// RawText returns the provider text attached to an unreadable-response error.
func RawText(err error) string {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Raw
	}
	return ""
}
