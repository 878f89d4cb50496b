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
)

var otpTestNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newTestOtpSvc(t *testing.T, ctrl *gomock.Controller) (*otpService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)

	cfg := config.App{VerifyOtpTTL: 24 * time.Hour, ResetOtpTTL: 15 * time.Minute}
	svc := NewOtpService(repo, cfg, metrics.New(), logger.Nop()).(*otpService)
	svc.now = func() time.Time { return otpTestNow }
	svc.generate = func(int) (string, error) { return "042917", nil }

	return svc, repo
}

func userWithOtp(purpose models.OtpPurpose, code string, expireAt time.Time) models.User {
	u := models.User{UserID: 7, Email: "a@x.io"}
	if code == "" {
		return u
	}

	ms := expireAt.UnixMilli()
	switch purpose {
	case models.OtpPurposeVerify:
		u.VerifyOtp, u.VerifyOtpExpireAt = &code, &ms
	case models.OtpPurposeReset:
		u.ResetOtp, u.ResetOtpExpireAt = &code, &ms
	}
	return u
}

// ── TTL ──────────────────────────────────────────────────────────────────────

func TestOtpService_TTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestOtpSvc(t, ctrl)

	assert.Equal(t, 24*time.Hour, svc.TTL(models.OtpPurposeVerify))
	assert.Equal(t, 15*time.Minute, svc.TTL(models.OtpPurposeReset))
}

// ── Issue ────────────────────────────────────────────────────────────────────

func TestOtpService_Issue_StoresCodeWithPurposeWindow(t *testing.T) {
	tests := []struct {
		name     string
		purpose  models.OtpPurpose
		expireAt time.Time
	}{
		{"verify", models.OtpPurposeVerify, otpTestNow.Add(24 * time.Hour)},
		{"reset", models.OtpPurposeReset, otpTestNow.Add(15 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestOtpSvc(t, ctrl)
			ctx := context.Background()

			repo.EXPECT().
				SetOtp(ctx, int64(7), tt.purpose, "042917", tt.expireAt.UnixMilli()).
				Return(nil)

			code, err := svc.Issue(ctx, models.User{UserID: 7}, tt.purpose)

			require.NoError(t, err)
			assert.Equal(t, "042917", code)
		})
	}
}

func TestOtpService_Issue_InvalidPurpose(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestOtpSvc(t, ctrl)

	_, err := svc.Issue(context.Background(), models.User{UserID: 7}, models.OtpPurpose("login"))

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestOtpService_Issue_GeneratorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestOtpSvc(t, ctrl)
	svc.generate = func(int) (string, error) { return "", errors.New("entropy exhausted") }

	_, err := svc.Issue(context.Background(), models.User{UserID: 7}, models.OtpPurposeVerify)

	require.Error(t, err)
}

func TestOtpService_Issue_UserVanished(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestOtpSvc(t, ctrl)

	repo.EXPECT().SetOtp(gomock.Any(), int64(7), models.OtpPurposeReset, gomock.Any(), gomock.Any()).
		Return(store.ErrUserNotFound)

	_, err := svc.Issue(context.Background(), models.User{UserID: 7}, models.OtpPurposeReset)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestOtpService_Validate_Success_ConsumesWithUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestOtpSvc(t, ctrl)
	ctx := context.Background()

	user := userWithOtp(models.OtpPurposeVerify, "042917", otpTestNow.Add(time.Hour))
	verified := true
	update := models.UserUpdate{IsAccountVerified: &verified}

	repo.EXPECT().
		ConsumeOtp(ctx, int64(7), models.OtpPurposeVerify, "042917", otpTestNow, update).
		Return(true, nil)

	err := svc.Validate(ctx, user, models.OtpPurposeVerify, "042917", update)

	require.NoError(t, err)
}

func TestOtpService_Validate_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestOtpSvc(t, ctrl)

	err := svc.Validate(context.Background(), models.User{UserID: 7}, models.OtpPurposeReset, "123456", models.UserUpdate{})

	assert.ErrorIs(t, err, ErrOtpMissing)
	assert.Equal(t, "OtpMissing", err.Error())
}

func TestOtpService_Validate_Expired_ClearsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestOtpSvc(t, ctrl)
	ctx := context.Background()

	user := userWithOtp(models.OtpPurposeReset, "042917", otpTestNow.Add(-time.Second))

	repo.EXPECT().ClearOtp(ctx, int64(7), models.OtpPurposeReset, "042917").Return(nil)

	err := svc.Validate(ctx, user, models.OtpPurposeReset, "042917", models.UserUpdate{})

	assert.ErrorIs(t, err, ErrOtpExpired)
}

func TestOtpService_Validate_SweptExpiredCode_ReportsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestOtpSvc(t, ctrl)
	ctx := context.Background()

	expired := userWithOtp(models.OtpPurposeVerify, "042917", otpTestNow.Add(-time.Minute))
	repo.EXPECT().ClearOtp(ctx, int64(7), models.OtpPurposeVerify, "042917").Return(nil)
	require.ErrorIs(t, svc.Validate(ctx, expired, models.OtpPurposeVerify, "042917", models.UserUpdate{}), ErrOtpExpired)

	// the same account reloaded after the sweeper nulled the pair
	swept := userWithOtp(models.OtpPurposeVerify, "", time.Time{})
	err := svc.Validate(ctx, swept, models.OtpPurposeVerify, "042917", models.UserUpdate{})

	assert.ErrorIs(t, err, ErrOtpMissing)
	assert.NotErrorIs(t, err, ErrOtpExpired)
}

func TestOtpService_Validate_ExpiryBoundaryIsExclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestOtpSvc(t, ctrl)

	user := userWithOtp(models.OtpPurposeVerify, "042917", otpTestNow)

	repo.EXPECT().ClearOtp(gomock.Any(), int64(7), models.OtpPurposeVerify, "042917").Return(nil)

	err := svc.Validate(context.Background(), user, models.OtpPurposeVerify, "042917", models.UserUpdate{})

	assert.ErrorIs(t, err, ErrOtpExpired)
}

func TestOtpService_Validate_ExpiredClearFailure_StillExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestOtpSvc(t, ctrl)

	user := userWithOtp(models.OtpPurposeVerify, "042917", otpTestNow.Add(-time.Hour))

	repo.EXPECT().ClearOtp(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	err := svc.Validate(context.Background(), user, models.OtpPurposeVerify, "042917", models.UserUpdate{})

	assert.ErrorIs(t, err, ErrOtpExpired)
}

func TestOtpService_Validate_Mismatch_KeepsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestOtpSvc(t, ctrl)

	user := userWithOtp(models.OtpPurposeVerify, "042917", otpTestNow.Add(time.Hour))

	// no repository call expected: a wrong guess must not burn the code
	err := svc.Validate(context.Background(), user, models.OtpPurposeVerify, "042918", models.UserUpdate{})

	assert.ErrorIs(t, err, ErrOtpMismatch)
}

func TestOtpService_Validate_PurposesAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestOtpSvc(t, ctrl)

	user := userWithOtp(models.OtpPurposeVerify, "042917", otpTestNow.Add(time.Hour))

	err := svc.Validate(context.Background(), user, models.OtpPurposeReset, "042917", models.UserUpdate{})

	assert.ErrorIs(t, err, ErrOtpMissing)
}

func TestOtpService_Validate_LostRace_ReportsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestOtpSvc(t, ctrl)
	ctx := context.Background()

	user := userWithOtp(models.OtpPurposeReset, "042917", otpTestNow.Add(time.Minute))

	gomock.InOrder(
		repo.EXPECT().ConsumeOtp(ctx, int64(7), models.OtpPurposeReset, "042917", otpTestNow, gomock.Any()).
			Return(false, nil),
		repo.EXPECT().FindByID(ctx, int64(7)).Return(models.User{UserID: 7}, nil),
	)

	err := svc.Validate(ctx, user, models.OtpPurposeReset, "042917", models.UserUpdate{})

	assert.ErrorIs(t, err, ErrOtpMissing)
}

func TestOtpService_Validate_ReplacedInBetween_ReportsMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestOtpSvc(t, ctrl)
	ctx := context.Background()

	user := userWithOtp(models.OtpPurposeReset, "042917", otpTestNow.Add(time.Minute))
	fresh := userWithOtp(models.OtpPurposeReset, "555111", otpTestNow.Add(15*time.Minute))

	repo.EXPECT().ConsumeOtp(ctx, int64(7), models.OtpPurposeReset, "042917", otpTestNow, gomock.Any()).Return(false, nil)
	repo.EXPECT().FindByID(ctx, int64(7)).Return(fresh, nil)

	err := svc.Validate(ctx, user, models.OtpPurposeReset, "042917", models.UserUpdate{})

	assert.ErrorIs(t, err, ErrOtpMismatch)
}

func TestOtpService_Validate_ConsumeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestOtpSvc(t, ctrl)

	user := userWithOtp(models.OtpPurposeVerify, "042917", otpTestNow.Add(time.Hour))
	dbErr := errors.New("connection reset")

	repo.EXPECT().ConsumeOtp(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, dbErr)

	err := svc.Validate(context.Background(), user, models.OtpPurposeVerify, "042917", models.UserUpdate{})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrOtpMissing)
}
