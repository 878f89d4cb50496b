// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if strings.TrimSpace(cfg.App.TokenSignKey) == "" {
		errs = append(errs, ErrMissingTokenSignKey)
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.VerifyOtpTTL <= 0 || cfg.App.ResetOtpTTL <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}
	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrInvalidServerConfigs)
	}
	switch cfg.Mail.Transport {
	case MailTransportLog:
	case MailTransportSMTP:
		if cfg.Mail.SMTPHost == "" || cfg.Mail.Sender == "" {
			errs = append(errs, ErrInvalidMailConfigs)
		}
	default:
		errs = append(errs, ErrInvalidMailConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" || strings.Contains(cfg.Storage.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
