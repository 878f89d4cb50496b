// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

type message struct {
	Subject string
	Body    string
}

var (
	verifyOtpTemplate = template.Must(template.New("verify").Parse(
		`Your account verification code is {{.Code}}.
Verify your account using this code. It is valid for {{.TTL}}.
`))

	resetOtpTemplate = template.Must(template.New("reset").Parse(
		`Your password reset code is {{.Code}}.
Use this code to proceed with resetting your password. It is valid for {{.TTL}}.
If you did not request a reset, ignore this email.
`))

	welcomeTemplate = template.Must(template.New("welcome").Parse(
		`Hello {{.Name}},

your account has been created with email id: {{.Email}}.
`))
)

func otpMessage(purpose models.OtpPurpose, code string, ttl time.Duration) (message, error) {
	var (
		tpl     *template.Template
		subject string
	)
	switch purpose {
	case models.OtpPurposeVerify:
		tpl, subject = verifyOtpTemplate, "Account Verification OTP"
	case models.OtpPurposeReset:
		tpl, subject = resetOtpTemplate, "Password Reset OTP"
	default:
		return message{}, fmt.Errorf("no template for otp purpose %q", purpose)
	}

	body, err := render(tpl, map[string]string{"Code": code, "TTL": humanDuration(ttl)})
	if err != nil {
		return message{}, err
	}
	return message{Subject: subject, Body: body}, nil
}

func welcomeMessage(to, name string) (message, error) {
	body, err := render(welcomeTemplate, map[string]string{"Name": name, "Email": to})
	if err != nil {
		return message{}, err
	}
	return message{Subject: "Welcome", Body: body}, nil
}

func render(tpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tpl.Name(), err)
	}
	return buf.String(), nil
}

// humanDuration prints whole hours or minutes ("24 hours", "15 minutes").
func humanDuration(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	case d >= time.Minute && d%time.Minute == 0:
		return plural(int(d/time.Minute), "minute")
	default:
		return d.String()
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// buildMIME assembles a plain-text RFC 5322 message.
func buildMIME(from, to string, msg message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}
