// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService drives the account screens of the terminal client.
// Methods returning a string return the server's success message. Errors
// are service sentinels wrapped in [ServerMessageError] when the server
// sent a message.
type ClientAuthService interface {
	// Register creates the account and persists the session cookie.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login signs in and persists the session cookie.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Logout calls the server and always forgets the local session.
	Logout(ctx context.Context) error

	// RestoreSession loads the persisted cookie and asks the server whether
	// it is still accepted. A rejected cookie is deleted.
	RestoreSession(ctx context.Context) (bool, error)

	UserData(ctx context.Context) (models.UserData, error)
	SendVerifyOtp(ctx context.Context) (string, error)
	VerifyEmail(ctx context.Context, otp string) (string, error)

	ServerVersion(ctx context.Context) (models.AppBuildInfo, error)
}

// ClientRecoveryService performs the two server calls of the password
// recovery flow. Neither requires a session.
type ClientRecoveryService interface {
	SendResetOtp(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error)
}
