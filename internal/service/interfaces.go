// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the auth server (accounts,
// one-time codes, sessions) and the terminal client (session bootstrap,
// recovery flow calls).
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// OtpService issues and validates one-time codes for a purpose.
type OtpService interface {
	// Issue generates a fresh code, stores it with its expiry and returns
	// the plaintext. A pending code of the same purpose is overwritten.
	Issue(ctx context.Context, user models.User, purpose models.OtpPurpose) (string, error)

	// Validate checks code against the stored record of user and consumes it
	// atomically together with onConsume. Returns ErrOtpMissing,
	// ErrOtpExpired or ErrOtpMismatch on failure.
	Validate(ctx context.Context, user models.User, purpose models.OtpPurpose, code string, onConsume models.UserUpdate) error

	// TTL is the validity window for purpose.
	TTL(purpose models.OtpPurpose) time.Duration
}

// SessionService issues and checks the signed session token.
type SessionService interface {
	Issue(ctx context.Context, userID int64) (models.Token, error)

	// Verify returns the user id carried by a valid token. Every failure is
	// reported as ErrSessionInvalid.
	Verify(ctx context.Context, token string) (int64, error)

	// Revoke denylists the token until it expires. Without a denylist it is
	// a no-op.
	Revoke(ctx context.Context, token string) error

	// Duration is the lifetime of issued tokens.
	Duration() time.Duration
}

// AuthService implements the account operations exposed under /api/auth and
// /api/user.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	Logout(ctx context.Context, token string)

	// SendVerifyOtp emails a verification code. alreadyVerified is true and
	// no code is sent when the account is verified.
	SendVerifyOtp(ctx context.Context, userID int64) (alreadyVerified bool, err error)
	VerifyEmail(ctx context.Context, userID int64, otp string) error

	IsAuthenticated(ctx context.Context, token string) bool

	SendResetOtp(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	UserData(ctx context.Context, userID int64) (models.UserData, error)
}

// AppInfoService reports the build of the running server.
type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}
