// Package apperr defines the error taxonomy shared by the fetchers,
// the cache, and the HTTP boundary. Every failure the service can
// surface carries a Kind so the handler layer can map it to a status
// code without string matching.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	// KindInvalidInput is a client error; the message names the violated rule.
	KindInvalidInput Kind = iota
	// KindNotFound means the facts source has no record for the name.
	KindNotFound
	// KindTransient means an upstream was unreachable or returned an
	// unexpected status. The aggregator retries once before surfacing it.
	KindTransient
	// KindCache is a cache read/write failure. Always swallowed locally.
	KindCache
	// KindLiveEnrichment is a weather/news failure. Always swallowed.
	KindLiveEnrichment
)

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// NotFound builds the not-found error for a country name, phrased as a
// hint the caller can show directly.
func NotFound(countryName string) *Error {
	return New(KindNotFound, "country %q not found - please check the spelling and try again", countryName)
}

// Transient builds the upstream-failure error carrying the status code.
func Transient(status int) *Error {
	return New(KindTransient, "facts source returned unexpected status %d", status)
}

// KindOf extracts the Kind of err, or ok=false if err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
