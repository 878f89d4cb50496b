// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

// Settings are the transport options taken from the app and server config.
type Settings struct {
	CookieName     string
	Production     bool
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewSettings(app config.App, server config.Server) Settings {
	return Settings{
		CookieName:     app.CookieName,
		Production:     app.IsProduction(),
		AllowedOrigins: server.AllowedOrigins,
		RequestTimeout: server.RequestTimeout,
	}
}

type Handler struct {
	services *service.Services
	settings Settings
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		metrics:  m,
		logger:   logger,
	}
}
