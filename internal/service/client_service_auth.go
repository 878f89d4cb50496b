// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return "", ErrInvalidDataProvided
	}

	res, err := a.adapter.Register(ctx, req)
	if err != nil {
		return "", mapAdapterError(err)
	}

	a.persistSession(ctx)
	return res.Message, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", ErrInvalidDataProvided
	}

	res, err := a.adapter.Login(ctx, req)
	if err != nil {
		return "", mapAdapterError(err)
	}

	a.persistSession(ctx)
	return res.Message, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	_, err := a.adapter.Logout(ctx)

	if delErr := a.sessions.DeleteSession(ctx); delErr != nil {
		a.logger.Err(delErr).Msg("error deleting local session")
	}

	return mapAdapterError(err)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (bool, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if session.IsExpired(a.now()) {
		a.forget(ctx)
		return false, nil
	}

	if err = a.adapter.RestoreSession(session); err != nil {
		a.forget(ctx)
		return false, nil
	}

	ok, err := a.adapter.IsAuthenticated(ctx)
	if err != nil {
		// keep the cookie: the server may just be down
		return false, mapAdapterError(err)
	}
	if !ok {
		a.forget(ctx)
	}

	return ok, nil
}

func (a *clientAuthService) UserData(ctx context.Context) (models.UserData, error) {
	data, err := a.adapter.UserData(ctx)
	if err != nil {
		return models.UserData{}, mapAdapterError(err)
	}
	return data, nil
}

func (a *clientAuthService) SendVerifyOtp(ctx context.Context) (string, error) {
	res, err := a.adapter.SendVerifyOtp(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return res.Message, nil
}

func (a *clientAuthService) VerifyEmail(ctx context.Context, otp string) (string, error) {
	if otp == "" {
		return "", ErrInvalidDataProvided
	}

	res, err := a.adapter.VerifyEmail(ctx, models.VerifyEmailRequest{Otp: otp})
	if err != nil {
		return "", mapAdapterError(err)
	}
	return res.Message, nil
}

func (a *clientAuthService) ServerVersion(ctx context.Context) (models.AppBuildInfo, error) {
	info, err := a.adapter.Version(ctx)
	if err != nil {
		return models.AppBuildInfo{}, mapAdapterError(err)
	}
	return info, nil
}

// persistSession saves the cookie captured by the adapter. A failure costs
// only a re-login on next start, so it is logged.
func (a *clientAuthService) persistSession(ctx context.Context) {
	session, ok := a.adapter.Session()
	if !ok {
		return
	}
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Msg("error saving local session")
	}
}

func (a *clientAuthService) forget(ctx context.Context) {
	a.adapter.ClearSession()
	if err := a.sessions.DeleteSession(ctx); err != nil {
		a.logger.Err(err).Msg("error deleting local session")
	}
}
