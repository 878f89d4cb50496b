// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mailer"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of [AuthService]. It
// orchestrates the user repository, the OTP engine, the session issuer and
// the mailer.
type authService struct {
	userRepository store.UserRepository
	otp            OtpService
	sessions       SessionService
	mailer         mailer.Mailer

	hasher passwordHasher

	// uniformResetResponse hides whether an email is registered from
	// send-reset-otp and reset-password.
	uniformResetResponse bool

	dummyHashOnce sync.Once
	dummyHash     string

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAuthService wires an [AuthService]. The returned service is safe for
// concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	otp OtpService,
	sessions SessionService,
	mailer mailer.Mailer,
	cfg config.App,
	m *metrics.Metrics,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:       userRepository,
		otp:                  otp,
		sessions:             sessions,
		mailer:               mailer,
		hasher:               passwordHasher{cost: bcrypt.DefaultCost},
		uniformResetResponse: cfg.UniformResetResponse,
		metrics:              m,
		logger:               logger,
	}
}

// Register creates an unverified account and signs the user in.
//
// Returns ErrInvalidDataProvided when a field is empty or the email is
// malformed, ErrWeakPassword and
// ErrEmailAlreadyExists. The welcome email is best effort.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := a.logger.Ctx(ctx)

	name := strings.TrimSpace(req.Name)
	email := models.NormalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" || !validEmail(email) {
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}
	if err := validatePassword(req.Password); err != nil {
		return models.User{}, models.Token{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	user, err := a.userRepository.Create(ctx, models.User{Email: email, Name: name, PasswordHash: hash})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", mapStoreError(err))
	}
	a.metrics.Registered()

	token, err := a.sessions.Issue(ctx, user.UserID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	if err = a.mailer.SendWelcome(ctx, user.Email, user.Name); err != nil {
		log.Warn().Err(err).Int64("user_id", user.UserID).Msg("welcome email was not sent")
	}

	return user, token, nil
}

// Login returns ErrInvalidCredentials for an unknown email and for a wrong
// password alike.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	email := models.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
		}
		// keep the response time close to the wrong-password path
		a.hasher.Compare(a.timingHash(), req.Password)
		a.metrics.Login(false)
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	if !a.hasher.Compare(user.PasswordHash, req.Password) {
		a.logger.Ctx(ctx).Info().Int64("user_id", user.UserID).Msg("wrong password")
		a.metrics.Login(false)
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.sessions.Issue(ctx, user.UserID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}
	a.metrics.Login(true)

	return user, token, nil
}

// Logout revokes the token when a denylist is configured. Failures are only
// logged: the cookie is cleared regardless.
func (a *authService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := a.sessions.Revoke(ctx, token); err != nil {
		a.logger.Ctx(ctx).Err(err).Msg("error revoking session token")
	}
}

func (a *authService) SendVerifyOtp(ctx context.Context, userID int64) (bool, error) {
	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		return false, mapStoreError(err)
	}
	if user.IsAccountVerified {
		return true, nil
	}

	if err = a.sendOtp(ctx, user, models.OtpPurposeVerify); err != nil {
		return false, err
	}
	return false, nil
}

func (a *authService) VerifyEmail(ctx context.Context, userID int64, otp string) error {
	otp = strings.TrimSpace(otp)
	if !validOtpCode(otp) {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		return mapStoreError(err)
	}

	verified := true
	return a.otp.Validate(ctx, user, models.OtpPurposeVerify, otp, models.UserUpdate{IsAccountVerified: &verified})
}

func (a *authService) IsAuthenticated(ctx context.Context, token string) bool {
	_, err := a.sessions.Verify(ctx, token)
	return err == nil
}

func (a *authService) SendResetOtp(ctx context.Context, email string) error {
	email = models.NormalizeEmail(email)
	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) && a.uniformResetResponse {
			a.logger.Ctx(ctx).Info().Msg("reset otp requested for unknown email")
			return nil
		}
		return mapStoreError(err)
	}

	return a.sendOtp(ctx, user, models.OtpPurposeReset)
}

// ResetPassword stores the new password hash in the same statement that
// consumes the reset code.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	email := models.NormalizeEmail(req.Email)
	otp := strings.TrimSpace(req.Otp)
	if email == "" || !validOtpCode(otp) || req.NewPassword == "" {
		return ErrInvalidDataProvided
	}
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) && a.uniformResetResponse {
			return ErrOtpMissing
		}
		return mapStoreError(err)
	}

	hash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	if err = a.otp.Validate(ctx, user, models.OtpPurposeReset, otp, models.UserUpdate{PasswordHash: &hash}); err != nil {
		return err
	}

	a.logger.Ctx(ctx).Info().Int64("user_id", user.UserID).Msg("password reset")
	return nil
}

func (a *authService) UserData(ctx context.Context, userID int64) (models.UserData, error) {
	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		return models.UserData{}, mapStoreError(err)
	}
	return user.Data(), nil
}

func (a *authService) sendOtp(ctx context.Context, user models.User, purpose models.OtpPurpose) error {
	code, err := a.otp.Issue(ctx, user, purpose)
	if err != nil {
		return err
	}

	if err = a.mailer.SendOtp(ctx, user.Email, purpose, code, a.otp.TTL(purpose)); err != nil {
		a.logger.Ctx(ctx).Err(err).Int64("user_id", user.UserID).Str("purpose", purpose.String()).Msg("otp email was not sent")
		return fmt.Errorf("%w: %w", ErrMailDispatch, err)
	}

	return nil
}

func (a *authService) timingHash() string {
	a.dummyHashOnce.Do(func() {
		hash, err := a.hasher.Hash("timing-equalizer")
		if err == nil {
			a.dummyHash = hash
		}
	})
	return a.dummyHash
}
