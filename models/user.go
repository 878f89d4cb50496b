// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and recovery.
// Sensitive fields (password hash, OTP codes) must never leave the server;
// use [User.Data] to build the client-facing projection.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique, case-normalized account identifier.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// IsAccountVerified flips to true once after a successful email
	// verification and never reverts.
	IsAccountVerified bool `json:"isAccountVerified"`

	// VerifyOtp and VerifyOtpExpireAt hold the pending email verification
	// code and its expiry in epoch milliseconds. Both are set or both nil.
	VerifyOtp         *string `json:"-"`
	VerifyOtpExpireAt *int64  `json:"-"`

	// ResetOtp and ResetOtpExpireAt hold the pending password reset code
	// and its expiry in epoch milliseconds. Both are set or both nil.
	ResetOtp         *string `json:"-"`
	ResetOtpExpireAt *int64  `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName is the Postgres table the user repository reads and writes.
func (u User) TableName() string {
	return "users"
}

// Otp returns the stored code and expiry for the given purpose.
// ok is false when no code is pending.
func (u User) Otp(purpose OtpPurpose) (code string, expireAt int64, ok bool) {
	var c *string
	var e *int64

	switch purpose {
	case OtpPurposeVerify:
		c, e = u.VerifyOtp, u.VerifyOtpExpireAt
	case OtpPurposeReset:
		c, e = u.ResetOtp, u.ResetOtpExpireAt
	}

	if c == nil || e == nil || *c == "" {
		return "", 0, false
	}

	return *c, *e, true
}

// Data returns the non-sensitive profile fields of the user.
func (u User) Data() UserData {
	return UserData{
		Name:              u.Name,
		Email:             u.Email,
		IsAccountVerified: u.IsAccountVerified,
	}
}

// UserData is the profile projection returned by GET /api/user/data.
type UserData struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	IsAccountVerified bool   `json:"isAccountVerified"`
}

// UserUpdate describes optional column changes applied together with an
// atomic OTP consumption. Nil fields are left untouched.
type UserUpdate struct {
	// IsAccountVerified marks the account as verified when set to true.
	IsAccountVerified *bool

	// PasswordHash replaces the stored password hash.
	PasswordHash *string
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address
// so lookups and the unique index agree on one spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
