// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageReset    = "reset"
	pageProfile  = "profile"
)

// NavigateTo asks [RootModel] to switch the active page. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// Notice carries a one-line success message to the page being opened.
type Notice struct {
	Text string
}

// LoginResult is produced by the async login command.
type LoginResult struct {
	Err     error
	Message string
	Email   string
}

// RegisterResult is produced by the async registration command.
type RegisterResult struct {
	Err     error
	Message string
	Email   string
}

// loadProfileMsg makes the profile page fetch fresh user data.
type loadProfileMsg struct {
	notice string
}

type profileLoadedMsg struct {
	user models.UserData
	err  error
}

type logoutDoneMsg struct {
	err error
}

type verifyOtpSentMsg struct {
	message string
	err     error
}

type emailVerifiedMsg struct {
	message string
	err     error
}

type resetOtpSentMsg struct {
	message string
	err     error
}

type passwordResetMsg struct {
	message string
	err     error
}

type serverVersionMsg struct {
	info models.AppBuildInfo
	err  error
}

type clipboardPasteMsg struct {
	text string
	err  error
}
