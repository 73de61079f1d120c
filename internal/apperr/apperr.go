// Package apperr carries the error taxonomy surfaced to API callers.
// Every failure in the request path is one of these kinds; none are
// retried automatically.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: malformed or missing required input. Reported
	// inline, never retried.
	KindValidation
	// KindNotFound: entity missing or not visible to the caller.
	KindNotFound
	// KindStore: persistence layer failure.
	KindStore
	// KindUpstream: external API unreachable, non-success status, or
	// missing credential.
	KindUpstream
	// KindUpstreamFormat: external API returned content that fails
	// required parsing. No repair attempt.
	KindUpstreamFormat
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Store(err error) error {
	return &Error{Kind: KindStore, Msg: "storage failure", Err: err}
}

func Upstream(msg string, err error) error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

func UpstreamFormat(msg string, err error) error {
	return &Error{Kind: KindUpstreamFormat, Msg: msg, Err: err}
}

// KindOf extracts the taxonomy kind from anywhere in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
