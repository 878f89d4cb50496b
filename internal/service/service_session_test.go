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
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestSessionSvc(t *testing.T, denylist *mock.MockTokenDenylist, now *time.Time) *sessionService {
	t.Helper()

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-auth-keeper",
		TokenDuration: 7 * 24 * time.Hour,
	}

	var svc *sessionService
	if denylist == nil {
		svc = NewSessionService(nil, cfg, logger.Nop()).(*sessionService)
	} else {
		svc = NewSessionService(denylist, cfg, logger.Nop()).(*sessionService)
	}
	svc.ids = fixedID("0192f0c4-1111-7000-8000-000000000001")
	svc.now = func() time.Time { return *now }
	return svc
}

func TestSessionService_IssueThenVerify(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	svc := newTestSessionSvc(t, nil, &now)
	ctx := context.Background()

	token, err := svc.Issue(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, now.Add(7*24*time.Hour), token.Expiry())

	userID, err := svc.Verify(ctx, token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestSessionService_Verify_Expired(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	svc := newTestSessionSvc(t, nil, &now)

	token, err := svc.Issue(context.Background(), 42)
	require.NoError(t, err)

	now = now.Add(7*24*time.Hour + time.Second)

	_, err = svc.Verify(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionService_Verify_Rejects(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	svc := newTestSessionSvc(t, nil, &now)

	issued, err := svc.Issue(context.Background(), 42)
	require.NoError(t, err)

	other := newTestSessionSvc(t, nil, &now)
	other.tokenSignKey = "another-key"
	foreign, err := other.Issue(context.Background(), 42)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"tampered", issued.SignedString + "x"},
		{"foreign key", foreign.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrSessionInvalid)
		})
	}
}

func TestSessionService_Verify_Revoked(t *testing.T) {
	ctrl := gomock.NewController(t)
	denylist := mock.NewMockTokenDenylist(ctrl)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	svc := newTestSessionSvc(t, denylist, &now)
	ctx := context.Background()

	token, err := svc.Issue(ctx, 42)
	require.NoError(t, err)

	denylist.EXPECT().IsRevoked(ctx, "0192f0c4-1111-7000-8000-000000000001").Return(true, nil)

	_, err = svc.Verify(ctx, token.SignedString)

	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionService_Verify_DenylistError(t *testing.T) {
	ctrl := gomock.NewController(t)
	denylist := mock.NewMockTokenDenylist(ctrl)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	svc := newTestSessionSvc(t, denylist, &now)
	ctx := context.Background()

	token, err := svc.Issue(ctx, 42)
	require.NoError(t, err)

	redisErr := errors.New("redis: connection refused")
	denylist.EXPECT().IsRevoked(ctx, gomock.Any()).Return(false, redisErr)

	_, err = svc.Verify(ctx, token.SignedString)

	assert.ErrorIs(t, err, redisErr)
	assert.NotErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionService_Revoke_UsesTokenExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	denylist := mock.NewMockTokenDenylist(ctrl)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	svc := newTestSessionSvc(t, denylist, &now)
	ctx := context.Background()

	token, err := svc.Issue(ctx, 42)
	require.NoError(t, err)

	denylist.EXPECT().
		Revoke(ctx, "0192f0c4-1111-7000-8000-000000000001", now.Add(7*24*time.Hour)).
		Return(nil)

	require.NoError(t, svc.Revoke(ctx, token.SignedString))
}

func TestSessionService_Revoke_InvalidTokenIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	denylist := mock.NewMockTokenDenylist(ctrl)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	svc := newTestSessionSvc(t, denylist, &now)

	assert.NoError(t, svc.Revoke(context.Background(), "garbage"))
}

func TestSessionService_Duration(t *testing.T) {
	now := time.Now()
	svc := newTestSessionSvc(t, nil, &now)

	assert.Equal(t, 7*24*time.Hour, svc.Duration())
}
