// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "auth:revoked:"

// redisTokenDenylist stores one key per revoked token id. Keys expire
// together with the token, so the set never outgrows live sessions.
type redisTokenDenylist struct {
	redis  *redis.Client
	logger *logger.Logger
	now    func() time.Time
}

// NewRedisTokenDenylist returns a [TokenDenylist] backed by client.
func NewRedisTokenDenylist(client *redis.Client, logger *logger.Logger) TokenDenylist {
	return &redisTokenDenylist{
		redis:  client,
		logger: logger,
		now:    time.Now,
	}
}

func (d *redisTokenDenylist) key(tokenID string) string {
	return denylistKeyPrefix + tokenID
}

// Revoke is a no-op for tokens that have already expired.
func (d *redisTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}

	if err := d.redis.Set(ctx, d.key(tokenID), 1, ttl).Err(); err != nil {
		d.logger.Ctx(ctx).Err(err).Str("func", "*redisTokenDenylist.Revoke").Msg("error revoking token")
		return fmt.Errorf("revoke token: %w", err)
	}

	return nil
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.redis.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		d.logger.Ctx(ctx).Err(err).Str("func", "*redisTokenDenylist.IsRevoked").Msg("error checking token")
		return false, fmt.Errorf("check revoked token: %w", err)
	}

	return n > 0, nil
}

// noopTokenDenylist keeps sessions fully stateless.
type noopTokenDenylist struct{}

// NewNoopTokenDenylist returns a [TokenDenylist] that never revokes.
func NewNoopTokenDenylist() TokenDenylist {
	return noopTokenDenylist{}
}

func (noopTokenDenylist) Revoke(context.Context, string, time.Time) error { return nil }

func (noopTokenDenylist) IsRevoked(context.Context, string) (bool, error) { return false, nil }
