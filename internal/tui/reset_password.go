// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const msgIncompleteOtp = "Please enter full 6-digit OTP"

type resetStep int

const (
	stepAwaitingEmail resetStep = iota
	stepAwaitingOtp
	stepAwaitingNewPassword
	stepDone
)

func (s resetStep) String() string {
	switch s {
	case stepAwaitingEmail:
		return "AwaitingEmail"
	case stepAwaitingOtp:
		return "AwaitingOtp"
	case stepAwaitingNewPassword:
		return "AwaitingNewPassword"
	case stepDone:
		return "Done"
	}
	return "Unknown"
}

// ResetPasswordModel walks the user through password recovery in three steps:
// request a code for an email, type the code, choose a new password.
//
// The code is only checked by the server together with the new password, so
// moving from the code step to the password step never leaves the client.
// A failed reset keeps the typed code for another attempt. Leaving the page
// or finishing the flow discards everything that was entered.
type ResetPasswordModel struct {
	ctx      context.Context
	recovery service.ClientRecoveryService

	step       resetStep
	email      textinput.Model
	otp        otpInput
	password   textinput.Model
	submitting bool
	notice     string
	errMsg     string
}

// NewResetPasswordModel creates the model in the AwaitingEmail step.
func NewResetPasswordModel(ctx context.Context, recovery service.ClientRecoveryService) *ResetPasswordModel {
	m := &ResetPasswordModel{
		ctx:      ctx,
		recovery: recovery,
		email:    newTextInput("email", false),
		password: newTextInput("new password", true),
	}
	m.reset()
	return m
}

// Init implements [tea.Model]. A finished flow starts over.
func (m *ResetPasswordModel) Init() tea.Cmd {
	if m.step == stepDone {
		m.reset()
	}
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *ResetPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetOtpSentMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = msg.message
		m.email.Blur()
		m.step = stepAwaitingOtp
		return m, nil

	case passwordResetMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		m.step = stepDone
		return m, func() tea.Msg {
			return NavigateTo{Page: pageLogin, Payload: Notice{Text: msg.message}}
		}

	case clipboardPasteMsg:
		if m.step == stepAwaitingOtp {
			m.otp, _ = m.otp.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.step {
	case stepAwaitingEmail:
		m.email, cmd = m.email.Update(msg)
	case stepAwaitingOtp:
		m.otp, cmd = m.otp.Update(msg)
	case stepAwaitingNewPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *ResetPasswordModel) submit() tea.Cmd {
	switch m.step {
	case stepAwaitingEmail:
		email := strings.TrimSpace(m.email.Value())
		if email == "" {
			m.errMsg = "Email is required"
			return nil
		}
		m.errMsg = ""
		m.submitting = true
		return m.cmdSendResetOtp(email)

	case stepAwaitingOtp:
		if !m.otp.Complete() {
			m.errMsg = msgIncompleteOtp
			return nil
		}
		m.errMsg = ""
		m.step = stepAwaitingNewPassword
		m.password.Focus()
		return textinput.Blink

	case stepAwaitingNewPassword:
		if m.password.Value() == "" {
			m.errMsg = "New password is required"
			return nil
		}
		m.errMsg = ""
		m.submitting = true
		return m.cmdResetPassword(models.ResetPasswordRequest{
			Email:       strings.TrimSpace(m.email.Value()),
			Otp:         m.otp.Value(),
			NewPassword: m.password.Value(),
		})
	}
	return nil
}

// View implements [tea.Model].
func (m *ResetPasswordModel) View() string {
	var b strings.Builder

	switch m.step {
	case stepAwaitingEmail:
		b.WriteString("Enter your registered email address\n\n")
		writeField(&b, "Email", 12, m.email.View())
	case stepAwaitingOtp:
		b.WriteString("Enter the 6-digit code sent to ")
		b.WriteString(strings.TrimSpace(m.email.Value()))
		b.WriteString("\n\n")
		b.WriteString(m.otp.View())
		b.WriteString("\n")
	case stepAwaitingNewPassword:
		b.WriteString("Enter the new password\n\n")
		writeField(&b, "Code", 12, m.otp.Value())
		writeField(&b, "New password", 12, m.password.View())
	case stepDone:
		b.WriteString("Password changed\n")
	}

	if m.submitting {
		b.WriteString("\n[Submit...]\n")
	} else {
		b.WriteString("\n[Submit]\n")
	}
	writeStatus(&b, m.notice, m.errMsg)

	hotKeys := "esc: back │ enter: submit"
	if m.step == stepAwaitingOtp {
		hotKeys = "esc: back │ ←/→: move │ ctrl+v: paste │ enter: submit"
	}
	return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// reset drops all flow state and returns to AwaitingEmail.
func (m *ResetPasswordModel) reset() {
	m.step = stepAwaitingEmail
	m.email.SetValue("")
	m.email.Focus()
	m.password.SetValue("")
	m.password.Blur()
	m.otp.Reset()
	m.submitting = false
	m.notice = ""
	m.errMsg = ""
}

func (m *ResetPasswordModel) cmdSendResetOtp(email string) tea.Cmd {
	ctx := m.ctx
	recovery := m.recovery

	return func() tea.Msg {
		message, err := recovery.SendResetOtp(ctx, email)
		return resetOtpSentMsg{message: message, err: err}
	}
}

func (m *ResetPasswordModel) cmdResetPassword(req models.ResetPasswordRequest) tea.Cmd {
	ctx := m.ctx
	recovery := m.recovery

	return func() tea.Msg {
		message, err := recovery.ResetPassword(ctx, req)
		return passwordResetMsg{message: message, err: err}
	}
}
