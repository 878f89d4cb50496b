// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// logMailer writes messages to the log instead of sending them. Development
// only: the OTP code ends up in the log.
type logMailer struct {
	logger *logger.Logger
}

func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{logger: log}
}

func (m *logMailer) SendOtp(ctx context.Context, to string, purpose models.OtpPurpose, code string, ttl time.Duration) error {
	msg, err := otpMessage(purpose, code, ttl)
	if err != nil {
		return err
	}

	m.logger.Ctx(ctx).Info().
		Str("to", to).
		Str("purpose", purpose.String()).
		Str("subject", msg.Subject).
		Str("otp", code).
		Msg("mail (log transport)")
	return nil
}

func (m *logMailer) SendWelcome(ctx context.Context, to, name string) error {
	m.logger.Ctx(ctx).Info().
		Str("to", to).
		Str("name", name).
		Msg("welcome mail (log transport)")
	return nil
}
