// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/app"
)

// ServerMessageError carries the server's message next to the service
// sentinel it maps to. Error returns the message so screens can print it
// as is.
type ServerMessageError struct {
	Err     error
	Message string
}

func (e *ServerMessageError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *ServerMessageError) Unwrap() error {
	return e.Err
}

var messageErrors = map[string]error{
	app.MsgMissingDetails:       ErrInvalidDataProvided,
	app.MsgWeakPassword:         ErrWeakPassword,
	app.MsgUserAlreadyExists:    ErrEmailAlreadyExists,
	app.MsgUserNotFound:         ErrUserNotFound,
	app.MsgInvalidEmailPassword: ErrInvalidCredentials,
	app.MsgOtpMissing:           ErrOtpMissing,
	app.MsgOtpExpired:           ErrOtpExpired,
	app.MsgOtpMismatch:          ErrOtpMismatch,
	app.MsgNotAuthorized:        ErrSessionInvalid,
	app.MsgMailDispatchFailed:   ErrMailDispatch,
}

// mapAdapterError translates the adapter's transport error into a service
// error. The server message wins over the status code.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrServerUnavailable) {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	msg := adapter.Message(err)
	if kind, ok := messageErrors[msg]; ok {
		return &ServerMessageError{Err: kind, Message: msg}
	}

	var kind error
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		kind = ErrInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized):
		kind = ErrSessionInvalid
	case errors.Is(err, adapter.ErrNotFound):
		kind = ErrUserNotFound
	case errors.Is(err, adapter.ErrConflict):
		kind = ErrEmailAlreadyExists
	case errors.Is(err, adapter.ErrBadGateway):
		kind = ErrMailDispatch
	default:
		return err
	}

	return &ServerMessageError{Err: kind, Message: msg}
}
