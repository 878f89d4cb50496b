// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status-class errors. A [ResponseError] unwraps to one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrServerUnavailable wraps transport failures: refused connections,
	// timeouts, DNS errors.
	ErrServerUnavailable = errors.New("server is unavailable")

	// ErrUnsuccessful is returned for a 2xx answer with "success": false.
	ErrUnsuccessful = errors.New("request was not successful")

	ErrInvalidAddress = errors.New("invalid adapter http address")
)

// ResponseError is a non-successful server answer. Message is the
// "message" field of the JSON body, or the raw body when it is not JSON.
// Kind is one of the status-class errors above.
type ResponseError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Kind
}

// Message returns the server message carried by err, or "" when err is not
// a [ResponseError].
func Message(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return ""
}
