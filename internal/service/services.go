// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mailer"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// Services groups the server-side services handed to the transport layer.
type Services struct {
	AuthService    AuthService
	SessionService SessionService
	OtpService     OtpService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	mailer mailer.Mailer,
	m *metrics.Metrics,
	cfg config.App,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Services {
	otp := NewOtpService(storages.UserRepository, cfg, m, logger)
	sessions := NewSessionService(storages.TokenDenylist, cfg, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, otp, sessions, mailer, cfg, m, logger),
		SessionService: sessions,
		OtpService:     otp,
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
