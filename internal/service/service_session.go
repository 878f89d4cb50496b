// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type idGenerator interface {
	Generate() string
}

// sessionService signs HS256 tokens. It keeps no per-session state; the
// optional denylist is the only server-side memory of a token.
type sessionService struct {
	denylist store.TokenDenylist

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewSessionService(denylist store.TokenDenylist, cfg config.App, logger *logger.Logger) SessionService {
	if denylist == nil {
		denylist = store.NewNoopTokenDenylist()
	}

	return &sessionService{
		denylist:      denylist,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger,
	}
}

func (s *sessionService) Duration() time.Duration {
	return s.tokenDuration
}

func (s *sessionService) Issue(ctx context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.ids.Generate(), s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *sessionService) Verify(ctx context.Context, tokenString string) (int64, error) {
	token, err := s.parse(tokenString)
	if err != nil {
		return 0, ErrSessionInvalid
	}

	revoked, err := s.denylist.IsRevoked(ctx, token.ID)
	if err != nil {
		return 0, fmt.Errorf("check token denylist: %w", err)
	}
	if revoked {
		return 0, ErrSessionInvalid
	}

	return token.UserID, nil
}

// Revoke ignores tokens that no longer verify: they are unusable anyway.
func (s *sessionService) Revoke(ctx context.Context, tokenString string) error {
	token, err := s.parse(tokenString)
	if err != nil {
		return nil
	}

	if err = s.denylist.Revoke(ctx, token.ID, token.Expiry()); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.logger.Ctx(ctx).Debug().Int64("user_id", token.UserID).Msg("session token revoked")
	return nil
}

func (s *sessionService) parse(tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrSessionInvalid
	}
	return utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, s.now())
}
