// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults applied when no source sets a value.
const (
	defaultLogLevel         = "debug"
	defaultHTTPAddress      = "localhost:4000"
	defaultRequestTimeout   = 15 * time.Second
	defaultTokenIssuer      = "go-auth-keeper"
	defaultTokenDuration    = 7 * 24 * time.Hour
	defaultVerifyOtpTTL     = 15 * time.Minute
	defaultResetOtpTTL      = 15 * time.Minute
	defaultCookieName       = "token"
	defaultMailTransport    = MailTransportLog
	defaultSMTPPort         = 587
	defaultOtpSweepInterval = 10 * time.Minute
	defaultAdapterAddress   = "http://localhost:4000"
	defaultAdapterTimeout   = 10 * time.Second
	defaultLocalPath        = "go-auth-keeper.db"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs; the first source holding a non-zero
// value for a field wins.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// withDefaults must be the last step: mergo only fills fields still zero.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			LogLevel:      defaultLogLevel,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			VerifyOtpTTL:  defaultVerifyOtpTTL,
			ResetOtpTTL:   defaultResetOtpTTL,
			CookieName:    defaultCookieName,
		},
		Storage: Storage{
			Local: Local{Path: defaultLocalPath},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Mail: Mail{
			Transport: defaultMailTransport,
			SMTPPort:  defaultSMTPPort,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{
			OtpSweepInterval: defaultOtpSweepInterval,
		},
	})
	return b
}
