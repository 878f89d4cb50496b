// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LocalSession is the session cookie persisted by the terminal client so a
// restart does not require a new login.
type LocalSession struct {
	// ServerURL is the auth server the cookie was issued by.
	ServerURL string
	// Email is the account the session belongs to, shown in the UI.
	Email string
	// CookieName and Token reproduce the HttpOnly cookie.
	CookieName string
	Token      string
	// ExpiresAt mirrors the cookie expiry. Zero means unknown.
	ExpiresAt time.Time
	SavedAt   time.Time
}

// IsExpired reports whether the cookie is known to be expired at now.
func (s LocalSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
