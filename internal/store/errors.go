// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when an insert hits the unique email
	// index.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup or update matches no user.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUnknownOtpPurpose is returned for an OTP purpose without columns.
	ErrUnknownOtpPurpose = errors.New("unknown otp purpose")

	// ErrLocalSessionNotFound is returned by the client store when no
	// session has been saved yet.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot build a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the driver.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
