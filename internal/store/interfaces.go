// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the auth server (PostgreSQL user
// records, optional Redis token denylist) and the terminal client (sqlite
// session file).
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user identity, password hash, verification flag
// and the two OTP records.
type UserRepository interface {
	// Create inserts a new user and returns it with server-assigned fields.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, user models.User) (models.User, error)

	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID returns ErrUserNotFound when no user has the id.
	FindByID(ctx context.Context, userID int64) (models.User, error)

	// Save persists profile, password, verification and OTP fields of user
	// in place. The verification flag is never reset to false.
	Save(ctx context.Context, user models.User) error

	// SetOtp writes the code and expiry (epoch millis) for purpose,
	// overwriting any pending code.
	SetOtp(ctx context.Context, userID int64, purpose models.OtpPurpose, code string, expireAt int64) error

	// ConsumeOtp clears the code for purpose only if it still equals code
	// and has not expired at now, applying update in the same statement.
	// It reports whether a row was consumed.
	ConsumeOtp(ctx context.Context, userID int64, purpose models.OtpPurpose, code string, now time.Time, update models.UserUpdate) (bool, error)

	// ClearOtp clears the code for purpose only if it still equals code.
	ClearOtp(ctx context.Context, userID int64, purpose models.OtpPurpose, code string) error

	// ClearExpiredOtps clears every OTP pair expired at now and returns the
	// number of affected users.
	ClearExpiredOtps(ctx context.Context, now time.Time) (int64, error)
}

// TokenDenylist remembers revoked session token ids until they expire.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
