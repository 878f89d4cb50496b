// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository UserRepository
	TokenDenylist  TokenDenylist

	db    *DB
	redis *redis.Client
}

// NewStorages connects PostgreSQL, applies migrations and, when a Redis
// address is configured, wires the token denylist.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		TokenDenylist:  NewNoopTokenDenylist(),
		db:             db,
	}

	if cfg.Redis.Address == "" {
		log.Info().Msg("redis address is empty, sessions are stateless")
		return storages, nil
	}

	client, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	storages.redis = client
	storages.TokenDenylist = NewRedisTokenDenylist(client, log)

	return storages, nil
}

// DB exposes the connection pool.
func (s *Storages) DB() *DB {
	return s.db
}

// Ping reports whether PostgreSQL and, when configured, Redis answer.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres ping: %w", err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
	}
	return nil
}

// Close releases every open connection.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
