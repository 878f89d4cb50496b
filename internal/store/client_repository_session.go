// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs a sqlite-backed [LocalSessionRepository].
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{db: db, logger: logger}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	var expiresAt sql.NullTime
	if !session.ExpiresAt.IsZero() {
		expiresAt = sql.NullTime{Time: session.ExpiresAt.UTC(), Valid: true}
	}
	savedAt := session.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, saveLocalSession,
		session.ServerURL,
		session.Email,
		session.CookieName,
		session.Token,
		expiresAt,
		savedAt.UTC(),
	)
	if err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *localSessionRepository) GetSession(ctx context.Context) (models.LocalSession, error) {
	var (
		session   models.LocalSession
		expiresAt sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, getLocalSession).Scan(
		&session.ServerURL,
		&session.Email,
		&session.CookieName,
		&session.Token,
		&expiresAt,
		&session.SavedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.GetSession").Msg("error reading session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if expiresAt.Valid {
		session.ExpiresAt = expiresAt.Time
	}

	return session, nil
}

func (r *localSessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteLocalSession); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
