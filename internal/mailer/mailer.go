// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mailer delivers OTP and welcome emails.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

// Mailer sends account emails. Implementations must be safe for concurrent
// use.
type Mailer interface {
	// SendOtp delivers code for purpose to the given address. ttl is shown
	// to the recipient as the validity window.
	SendOtp(ctx context.Context, to string, purpose models.OtpPurpose, code string, ttl time.Duration) error
	// SendWelcome greets a freshly registered user.
	SendWelcome(ctx context.Context, to, name string) error
}

var (
	ErrUnknownTransport = errors.New("unknown mail transport")
	ErrSendingMail      = errors.New("error sending mail")
)

// NewMailer picks the transport configured in cfg.
func NewMailer(cfg config.Mail, log *logger.Logger) (Mailer, error) {
	switch cfg.Transport {
	case config.MailTransportSMTP:
		return NewSMTPMailer(cfg, log), nil
	case config.MailTransportLog, "":
		log.Warn().Msg("mail transport is 'log', OTP codes will be written to the log")
		return NewLogMailer(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
}
