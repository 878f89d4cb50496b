// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	repo     *mock.MockUserRepository
	otp      *mock.MockOtpService
	sessions *mock.MockSessionService
	mailer   *mock.MockMailer
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller, cfg config.App) (*authService, authMocks) {
	t.Helper()
	m := authMocks{
		repo:     mock.NewMockUserRepository(ctrl),
		otp:      mock.NewMockOtpService(ctrl),
		sessions: mock.NewMockSessionService(ctrl),
		mailer:   mock.NewMockMailer(ctrl),
	}

	svc := NewAuthService(m.repo, m.otp, m.sessions, m.mailer, cfg, metrics.New(), logger.Nop()).(*authService)
	svc.hasher = passwordHasher{cost: bcrypt.MinCost}

	return svc, m
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

var testToken = models.Token{SignedString: "signed.jwt.value", UserID: 1}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})
	ctx := context.Background()

	gomock.InOrder(
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice@example.com", u.Email)
				assert.Equal(t, "Alice", u.Name)
				assert.False(t, u.IsAccountVerified)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))
				u.UserID = 1
				return u, nil
			},
		),
		m.sessions.EXPECT().Issue(ctx, int64(1)).Return(testToken, nil),
		m.mailer.EXPECT().SendWelcome(ctx, "alice@example.com", "Alice").Return(nil),
	)

	user, token, err := svc.Register(ctx, models.RegisterRequest{
		Name:     " Alice ",
		Email:    "  Alice@Example.COM ",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "signed.jwt.value", token.SignedString)
}

func TestAuthService_Register_MissingDetails(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"no name", models.RegisterRequest{Email: "a@x.io", Password: "hunter22"}},
		{"blank name", models.RegisterRequest{Name: "   ", Email: "a@x.io", Password: "hunter22"}},
		{"no email", models.RegisterRequest{Name: "A", Password: "hunter22"}},
		{"no password", models.RegisterRequest{Name: "A", Email: "a@x.io"}},
		{"malformed email", models.RegisterRequest{Name: "A", Email: "not-an-email", Password: "hunter22"}},
		{"email with display name", models.RegisterRequest{Name: "A", Email: "Bob <b@x.io>", Password: "hunter22"}},
		{"email without domain", models.RegisterRequest{Name: "A", Email: "a@", Password: "hunter22"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthSvc(t, ctrl, config.App{})

			_, _, err := svc.Register(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{})

	_, _, err := svc.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "a@x.io", Password: "12345"})

	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, _, err := svc.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "a@x.io", Password: "hunter22"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Register_WelcomeMailFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{UserID: 3, Email: "a@x.io", Name: "A"}, nil)
	m.sessions.EXPECT().Issue(gomock.Any(), int64(3)).Return(testToken, nil)
	m.mailer.EXPECT().SendWelcome(gomock.Any(), "a@x.io", "A").Return(errors.New("smtp: 421"))

	_, token, err := svc.Register(context.Background(), models.RegisterRequest{Name: "A", Email: "a@x.io", Password: "hunter22"})

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})
	ctx := context.Background()

	stored := models.User{UserID: 5, Email: "bob@x.io", PasswordHash: hashFor(t, "correct-horse")}

	m.repo.EXPECT().FindByEmail(ctx, "bob@x.io").Return(stored, nil)
	m.sessions.EXPECT().Issue(ctx, int64(5)).Return(testToken, nil)

	user, token, err := svc.Login(ctx, models.LoginRequest{Email: "BOB@x.io", Password: "correct-horse"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
	assert.Equal(t, testToken.SignedString, token.SignedString)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().FindByEmail(gomock.Any(), "bob@x.io").
		Return(models.User{UserID: 5, PasswordHash: hashFor(t, "correct-horse")}, nil)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "bob@x.io", Password: "wrong-horse"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail_SameErrorAsWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().FindByEmail(gomock.Any(), "ghost@x.io").Return(models.User{}, store.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@x.io", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_MissingDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{})

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "bob@x.io"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})
	dbErr := errors.New("connection refused")

	m.repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Email: "bob@x.io", Password: "pw1234"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Logout / IsAuthenticated ─────────────────────────────────────────────────

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.sessions.EXPECT().Revoke(gomock.Any(), "tok").Return(errors.New("redis down"))

	svc.Logout(context.Background(), "tok")
}

func TestAuthService_Logout_NoTokenIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{})

	svc.Logout(context.Background(), "")
}

func TestAuthService_IsAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.sessions.EXPECT().Verify(gomock.Any(), "good").Return(int64(1), nil)
	m.sessions.EXPECT().Verify(gomock.Any(), "bad").Return(int64(0), ErrSessionInvalid)

	assert.True(t, svc.IsAuthenticated(context.Background(), "good"))
	assert.False(t, svc.IsAuthenticated(context.Background(), "bad"))
}

// ── SendVerifyOtp / VerifyEmail ──────────────────────────────────────────────

func TestAuthService_SendVerifyOtp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})
	ctx := context.Background()

	user := models.User{UserID: 9, Email: "c@x.io"}

	gomock.InOrder(
		m.repo.EXPECT().FindByID(ctx, int64(9)).Return(user, nil),
		m.otp.EXPECT().Issue(ctx, user, models.OtpPurposeVerify).Return("123456", nil),
		m.otp.EXPECT().TTL(models.OtpPurposeVerify).Return(24*time.Hour),
		m.mailer.EXPECT().SendOtp(ctx, "c@x.io", models.OtpPurposeVerify, "123456", 24*time.Hour).Return(nil),
	)

	alreadyVerified, err := svc.SendVerifyOtp(ctx, 9)

	require.NoError(t, err)
	assert.False(t, alreadyVerified)
}

func TestAuthService_SendVerifyOtp_AlreadyVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(models.User{UserID: 9, IsAccountVerified: true}, nil)

	alreadyVerified, err := svc.SendVerifyOtp(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, alreadyVerified)
}

func TestAuthService_SendVerifyOtp_MailFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(models.User{UserID: 9, Email: "c@x.io"}, nil)
	m.otp.EXPECT().Issue(gomock.Any(), gomock.Any(), models.OtpPurposeVerify).Return("123456", nil)
	m.otp.EXPECT().TTL(models.OtpPurposeVerify).Return(24 * time.Hour)
	m.mailer.EXPECT().SendOtp(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp: 554"))

	_, err := svc.SendVerifyOtp(context.Background(), 9)

	assert.ErrorIs(t, err, ErrMailDispatch)
}

func TestAuthService_SendVerifyOtp_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.SendVerifyOtp(context.Background(), 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_VerifyEmail_ValidatesWithVerifiedUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})
	ctx := context.Background()

	user := models.User{UserID: 9}
	verified := true

	m.repo.EXPECT().FindByID(ctx, int64(9)).Return(user, nil)
	m.otp.EXPECT().
		Validate(ctx, user, models.OtpPurposeVerify, "654321", models.UserUpdate{IsAccountVerified: &verified}).
		Return(nil)

	require.NoError(t, svc.VerifyEmail(ctx, 9, " 654321 "))
}

func TestAuthService_VerifyEmail_PassesOtpErrorsThrough(t *testing.T) {
	for _, want := range []error{ErrOtpMissing, ErrOtpExpired, ErrOtpMismatch} {
		t.Run(want.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestAuthSvc(t, ctrl, config.App{})

			m.repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(models.User{UserID: 9}, nil)
			m.otp.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(want)

			err := svc.VerifyEmail(context.Background(), 9, "000000")

			assert.ErrorIs(t, err, want)
		})
	}
}

func TestAuthService_VerifyEmail_MalformedOtp(t *testing.T) {
	for _, code := range []string{"", "12345", "1234567", "12a456", "１２３４５６"} {
		t.Run(code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthSvc(t, ctrl, config.App{})

			assert.ErrorIs(t, svc.VerifyEmail(context.Background(), 9, code), ErrInvalidDataProvided)
		})
	}
}

// ── SendResetOtp / ResetPassword ─────────────────────────────────────────────

func TestAuthService_SendResetOtp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	user := models.User{UserID: 4, Email: "d@x.io"}

	m.repo.EXPECT().FindByEmail(gomock.Any(), "d@x.io").Return(user, nil)
	m.otp.EXPECT().Issue(gomock.Any(), user, models.OtpPurposeReset).Return("777000", nil)
	m.otp.EXPECT().TTL(models.OtpPurposeReset).Return(15 * time.Minute)
	m.mailer.EXPECT().SendOtp(gomock.Any(), "d@x.io", models.OtpPurposeReset, "777000", 15*time.Minute).Return(nil)

	require.NoError(t, svc.SendResetOtp(context.Background(), "D@x.io"))
}

func TestAuthService_SendResetOtp_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().FindByEmail(gomock.Any(), "ghost@x.io").Return(models.User{}, store.ErrUserNotFound)

	assert.ErrorIs(t, svc.SendResetOtp(context.Background(), "ghost@x.io"), ErrUserNotFound)
}

func TestAuthService_SendResetOtp_UnknownEmail_Uniform(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{UniformResetResponse: true})

	m.repo.EXPECT().FindByEmail(gomock.Any(), "ghost@x.io").Return(models.User{}, store.ErrUserNotFound)

	assert.NoError(t, svc.SendResetOtp(context.Background(), "ghost@x.io"))
}

func TestAuthService_SendResetOtp_MissingEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, config.App{})

	assert.ErrorIs(t, svc.SendResetOtp(context.Background(), "  "), ErrInvalidDataProvided)
}

func TestAuthService_ResetPassword_Success_HashesNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})
	ctx := context.Background()

	user := models.User{UserID: 4, Email: "d@x.io"}

	m.repo.EXPECT().FindByEmail(ctx, "d@x.io").Return(user, nil)
	m.otp.EXPECT().Validate(ctx, user, models.OtpPurposeReset, "777000", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.User, _ models.OtpPurpose, _ string, update models.UserUpdate) error {
			require.NotNil(t, update.PasswordHash)
			assert.Nil(t, update.IsAccountVerified)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*update.PasswordHash), []byte("brand-new-pw")))
			return nil
		},
	)

	err := svc.ResetPassword(ctx, models.ResetPasswordRequest{Email: "d@x.io", Otp: "777000", NewPassword: "brand-new-pw"})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_InvalidOtp(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().FindByEmail(gomock.Any(), "d@x.io").Return(models.User{UserID: 4}, nil)
	m.otp.EXPECT().Validate(gomock.Any(), gomock.Any(), models.OtpPurposeReset, "111111", gomock.Any()).Return(ErrOtpExpired)

	err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{Email: "d@x.io", Otp: "111111", NewPassword: "brand-new-pw"})

	assert.ErrorIs(t, err, ErrOtpExpired)
}

func TestAuthService_ResetPassword_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.ResetPasswordRequest
		want error
	}{
		{"no email", models.ResetPasswordRequest{Otp: "111111", NewPassword: "brand-new-pw"}, ErrInvalidDataProvided},
		{"no otp", models.ResetPasswordRequest{Email: "d@x.io", NewPassword: "brand-new-pw"}, ErrInvalidDataProvided},
		{"no password", models.ResetPasswordRequest{Email: "d@x.io", Otp: "111111"}, ErrInvalidDataProvided},
		{"short otp", models.ResetPasswordRequest{Email: "d@x.io", Otp: "1111", NewPassword: "brand-new-pw"}, ErrInvalidDataProvided},
		{"non-digit otp", models.ResetPasswordRequest{Email: "d@x.io", Otp: "11111x", NewPassword: "brand-new-pw"}, ErrInvalidDataProvided},
		{"short password", models.ResetPasswordRequest{Email: "d@x.io", Otp: "111111", NewPassword: "abc"}, ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthSvc(t, ctrl, config.App{})

			err := svc.ResetPassword(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_ResetPassword_UnknownEmail(t *testing.T) {
	tests := []struct {
		name    string
		uniform bool
		want    error
	}{
		{"distinct", false, ErrUserNotFound},
		{"uniform", true, ErrOtpMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestAuthSvc(t, ctrl, config.App{UniformResetResponse: tt.uniform})

			m.repo.EXPECT().FindByEmail(gomock.Any(), "ghost@x.io").Return(models.User{}, store.ErrUserNotFound)

			err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{
				Email: "ghost@x.io", Otp: "111111", NewPassword: "brand-new-pw",
			})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── UserData ─────────────────────────────────────────────────────────────────

func TestAuthService_UserData(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().FindByID(gomock.Any(), int64(2)).
		Return(models.User{UserID: 2, Name: "Eve", IsAccountVerified: true, PasswordHash: "secret"}, nil)

	data, err := svc.UserData(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Eve", data.Name)
	assert.True(t, data.IsAccountVerified)
}

func TestAuthService_UserData_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestAuthSvc(t, ctrl, config.App{})

	m.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UserData(context.Background(), 2)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
