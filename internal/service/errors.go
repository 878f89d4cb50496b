// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWeakPassword        = errors.New("password must be between 6 and 72 characters")
	ErrEmailAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	// OTP validation outcomes. The texts double as wire messages.
	ErrOtpMissing  = errors.New("OtpMissing")
	ErrOtpExpired  = errors.New("OtpExpired")
	ErrOtpMismatch = errors.New("OtpMismatch")

	ErrSessionInvalid      = errors.New("session token is expired or invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrMailDispatch        = errors.New("mail dispatch failed")
)

// Client-side errors.
var (
	ErrServerUnavailable = errors.New("auth server is unavailable")
)
