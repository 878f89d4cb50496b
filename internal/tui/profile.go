// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfileModel shows the signed-in account and drives email verification
// and logout.
type ProfileModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	user      models.UserData
	loaded    bool
	verifying bool
	otp       otpInput
	busy      bool
	notice    string
	errMsg    string
}

func NewProfileModel(ctx context.Context, auth service.ClientAuthService) *ProfileModel {
	return &ProfileModel{
		ctx:  ctx,
		auth: auth,
		otp:  newOtpInput(),
	}
}

// setUser pre-fills the page with data fetched before the program started.
func (m *ProfileModel) setUser(user models.UserData) {
	m.user = user
	m.loaded = true
}

func (m *ProfileModel) Init() tea.Cmd {
	if m.loaded {
		return nil
	}
	m.busy = true
	return m.cmdLoad()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadProfileMsg:
		m.notice, m.errMsg = msg.notice, ""
		m.verifying = false
		m.busy = true
		return m, m.cmdLoad()

	case profileLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.setUser(msg.user)
		return m, nil

	case verifyOtpSentMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.notice, m.errMsg = msg.message, ""
		if msg.message == app.MsgAlreadyVerified {
			// the account was verified elsewhere, no code was sent
			m.busy = true
			return m, m.cmdLoad()
		}
		m.otp.Reset()
		m.verifying = true
		return m, nil

	case emailVerifiedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.notice, m.errMsg = msg.message, ""
		m.verifying = false
		m.otp.Reset()
		m.busy = true
		return m, m.cmdLoad()

	case logoutDoneMsg:
		m.busy = false
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: Notice{Text: "Logged out"}}
		}

	case clipboardPasteMsg:
		if m.verifying {
			m.otp, _ = m.otp.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.verifying {
			return m.updateVerifying(msg)
		}

		switch {
		case key.Matches(msg, keys.refresh):
			m.notice, m.errMsg = "", ""
			m.busy = true
			return m, m.cmdLoad()
		case key.Matches(msg, keys.sendOtp):
			if m.user.IsAccountVerified {
				m.notice, m.errMsg = app.MsgAlreadyVerified, ""
				return m, nil
			}
			m.notice, m.errMsg = "", ""
			m.busy = true
			return m, m.cmdSendVerifyOtp()
		case key.Matches(msg, keys.verify):
			if m.user.IsAccountVerified {
				m.notice, m.errMsg = app.MsgAlreadyVerified, ""
				return m, nil
			}
			m.errMsg = ""
			m.verifying = true
			return m, nil
		case key.Matches(msg, keys.logout):
			m.busy = true
			return m, m.cmdLogout()
		}
	}
	return m, nil
}

func (m *ProfileModel) updateVerifying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.verifying = false
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		if !m.otp.Complete() {
			m.errMsg = msgIncompleteOtp
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		return m, m.cmdVerifyEmail(m.otp.Value())
	}

	var cmd tea.Cmd
	m.otp, cmd = m.otp.Update(msg)
	return m, cmd
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	if m.loaded {
		writeField(&b, "Name", 9, m.user.Name)
		writeField(&b, "Email", 9, m.user.Email)
		writeField(&b, "Verified", 9, yesNo(m.user.IsAccountVerified))
	} else {
		b.WriteString("Loading...\n")
	}

	if m.verifying {
		b.WriteString("\nEnter the 6-digit code sent to your email\n\n")
		b.WriteString(m.otp.View())
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString("\n[Working...]\n")
	}
	writeStatus(&b, m.notice, m.errMsg)

	hotKeys := "r: refresh │ s: send code │ e: enter code │ l: logout │ v: version"
	if m.verifying {
		hotKeys = "esc: cancel │ ←/→: move │ ctrl+v: paste │ enter: verify"
	}
	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ProfileModel) reset() {
	m.user = models.UserData{}
	m.loaded = false
	m.verifying = false
	m.otp.Reset()
	m.notice, m.errMsg = "", ""
}

func (m *ProfileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.UserData(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdSendVerifyOtp() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		message, err := auth.SendVerifyOtp(ctx)
		return verifyOtpSentMsg{message: message, err: err}
	}
}

func (m *ProfileModel) cmdVerifyEmail(otp string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		message, err := auth.VerifyEmail(ctx, otp)
		return emailVerifiedMsg{message: message, err: err}
	}
}

func (m *ProfileModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}
