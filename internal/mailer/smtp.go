// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	send   sendFunc
	logger *logger.Logger
}

// NewSMTPMailer sends mail through the relay in cfg, authenticating with
// PLAIN when a user is configured.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) Mailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}

	return &smtpMailer{
		addr:   net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		auth:   auth,
		from:   cfg.Sender,
		send:   smtp.SendMail,
		logger: log,
	}
}

func (m *smtpMailer) SendOtp(ctx context.Context, to string, purpose models.OtpPurpose, code string, ttl time.Duration) error {
	msg, err := otpMessage(purpose, code, ttl)
	if err != nil {
		return err
	}
	return m.deliver(ctx, to, msg)
}

func (m *smtpMailer) SendWelcome(ctx context.Context, to, name string) error {
	msg, err := welcomeMessage(to, name)
	if err != nil {
		return err
	}
	return m.deliver(ctx, to, msg)
}

// deliver runs the blocking SMTP exchange in a goroutine so ctx can abandon
// it.
func (m *smtpMailer) deliver(ctx context.Context, to string, msg message) error {
	log := m.logger.Ctx(ctx)

	done := make(chan error, 1)
	go func() {
		done <- m.send(m.addr, m.auth, m.from, []string{to}, buildMIME(m.from, to, msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Err(err).Str("func", "*smtpMailer.deliver").Str("subject", msg.Subject).Msg("error sending mail")
			return fmt.Errorf("%w: %w", ErrSendingMail, err)
		}
		log.Debug().Str("subject", msg.Subject).Msg("mail sent")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrSendingMail, ctx.Err())
	}
}
