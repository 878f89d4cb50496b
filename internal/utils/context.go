// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared across the application: typed
// context keys, JSON response writing, session token signing, one-time code
// generation, UUIDs and the resty HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they never collide with
// string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")

	// SessionTokenCtxKey holds the raw session token string.
	SessionTokenCtxKey = contextKey("sessionToken")
)

// GetUserIDFromContext returns the authenticated user id; ok is false when
// the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithSession stores the authenticated user id and raw token in ctx.
func WithSession(ctx context.Context, userID int64, token string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, SessionTokenCtxKey, token)
}

// GetSessionTokenFromContext returns the raw session token stored by the
// auth middleware.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok && token != ""
}
