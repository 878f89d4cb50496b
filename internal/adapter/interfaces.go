// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the terminal client uses to
// talk to the auth server.
//
// [ServerAdapter] hides the HTTP details: request encoding, the session
// cookie kept in a cookie jar, and the mapping of non-2xx responses to the
// sentinel errors in errors.go. The server's response message is preserved
// in [ResponseError] so the client can show it verbatim.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the auth server. Implementations
// must be safe for concurrent use.
type ServerAdapter interface {
	// Register creates an account. On success the session cookie from the
	// response is kept for subsequent requests.
	Register(ctx context.Context, req models.RegisterRequest) (models.APIResponse, error)

	// Login authenticates with email and password and keeps the session
	// cookie.
	Login(ctx context.Context, req models.LoginRequest) (models.APIResponse, error)

	// Logout asks the server to clear the cookie and drops the local copy
	// even when the request fails.
	Logout(ctx context.Context) (models.APIResponse, error)

	// IsAuthenticated reports whether the current cookie is accepted.
	IsAuthenticated(ctx context.Context) (bool, error)

	// UserData returns the profile of the logged-in user.
	UserData(ctx context.Context) (models.UserData, error)

	// SendVerifyOtp asks the server to email a verification code.
	SendVerifyOtp(ctx context.Context) (models.APIResponse, error)

	// VerifyEmail submits the verification code.
	VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) (models.APIResponse, error)

	// SendResetOtp asks the server to email a password reset code. No
	// session is required.
	SendResetOtp(ctx context.Context, req models.SendResetOtpRequest) (models.APIResponse, error)

	// ResetPassword submits email, reset code and the new password.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.APIResponse, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)

	// Session returns the session cookie currently held, if any.
	Session() (models.LocalSession, bool)

	// RestoreSession loads a previously persisted cookie into the jar.
	RestoreSession(session models.LocalSession) error

	// ClearSession forgets the cookie locally.
	ClearSession()
}
