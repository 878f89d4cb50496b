// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal screens of the auth client: login,
// registration, profile with email verification, and password recovery.
package tui

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Start describes the state the client was in before the program opened.
type Start struct {
	// Authenticated opens the profile page with User instead of the menu.
	Authenticated bool
	User          models.UserData
	// Notice is shown on the first page, if any.
	Notice string
}

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits. It returns [ErrUserQuit] on ctrl+c.
func (t *TUI) Run(ctx context.Context, start Start) error {
	root := t.newRoot(ctx, start)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context, start Start) RootModel {
	menu := NewMenuModel()
	profile := NewProfileModel(ctx, t.services.AuthService)

	pages := map[string]tea.Model{
		pageMenu:     menu,
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
		pageReset:    NewResetPasswordModel(ctx, t.services.RecoveryService),
		pageProfile:  profile,
	}

	startPage := pageMenu
	if start.Authenticated {
		startPage = pageProfile
		profile.setUser(start.User)
		profile.notice = start.Notice
	} else {
		menu.status = start.Notice
	}

	return NewRootModel(ctx, t.services.AuthService, pages, startPage, t.buildInfo)
}
