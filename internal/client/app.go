// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/tui"
)

const noticeServerUnavailable = "Server is unavailable, saved session kept"

type App struct {
	auth   service.ClientAuthService
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{
		auth:   services.AuthService,
		ui:     ui,
		logger: logger,
	}
}

// Run checks the saved session (is-auth, then user data) and starts the UI
// on the matching page. Quitting the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	start := a.bootstrap(ctx)

	err := a.ui.Run(ctx, start)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) bootstrap(ctx context.Context) tui.Start {
	ok, err := a.auth.RestoreSession(ctx)
	if err != nil {
		a.logger.Err(err).Msg("error restoring session")
		if errors.Is(err, service.ErrServerUnavailable) {
			return tui.Start{Notice: noticeServerUnavailable}
		}
		return tui.Start{}
	}
	if !ok {
		return tui.Start{}
	}

	user, err := a.auth.UserData(ctx)
	if err != nil {
		a.logger.Err(err).Msg("error loading user data")
		return tui.Start{}
	}

	a.logger.Info().Str("email", user.Email).Msg("session restored")
	return tui.Start{Authenticated: true, User: user}
}
