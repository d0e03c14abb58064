package collector

import (
	"errors"
	"fmt"

	"SignalDeck/internal/model"
)

// ErrorClass is the failure taxonomy of a resource fetch.
type ErrorClass string

const (
	// NetworkError means the request could not complete.
	NetworkError ErrorClass = "network"
	// HTTPStatusError means the server answered with a non-2xx status.
	HTTPStatusError ErrorClass = "http_status"
	// ParseError means the body was not the expected JSON shape.
	ParseError ErrorClass = "parse"
	// InvalidRequest means the call was rejected before touching the network.
	InvalidRequest ErrorClass = "invalid_request"
)

// FetchError is the typed failure carried by a FetchResult.
type FetchError struct {
	Class  ErrorClass
	Kind   model.ResourceKind
	Symbol string
	Status int
	Detail string
	Err    error
}

func (e *FetchError) Error() string {
	target := string(e.Kind)
	if e.Symbol != "" {
		target += "/" + e.Symbol
	}
	msg := fmt.Sprintf("fetch %s: %s", target, e.Class)
	if e.Status != 0 {
		msg += fmt.Sprintf(" %d", e.Status)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// Retryable reports whether another attempt may succeed.
func (e *FetchError) Retryable() bool {
	return e.Class == NetworkError || e.Class == HTTPStatusError
}

// ClassOf returns the error class of err, or "" if err is not a FetchError.
func ClassOf(err error) ErrorClass {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Class
	}
	return ""
}

func isRetryable(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Retryable()
}
