// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-keeper/models"
)

const userColumns = `user_id, email, name, password_hash, is_account_verified,
	verify_otp, verify_otp_expire_at, reset_otp, reset_otp_expire_at,
	created_at, updated_at`

const (
	createUser = `INSERT INTO users (email, name, password_hash)
	VALUES ($1, $2, $3)
	RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
	FROM users
	WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
	FROM users
	WHERE user_id = $1;`

	clearExpiredOtps = `UPDATE users SET
		verify_otp = CASE WHEN verify_otp_expire_at <= $1 THEN NULL ELSE verify_otp END,
		verify_otp_expire_at = CASE WHEN verify_otp_expire_at <= $1 THEN NULL ELSE verify_otp_expire_at END,
		reset_otp = CASE WHEN reset_otp_expire_at <= $1 THEN NULL ELSE reset_otp END,
		reset_otp_expire_at = CASE WHEN reset_otp_expire_at <= $1 THEN NULL ELSE reset_otp_expire_at END,
		updated_at = NOW()
	WHERE verify_otp_expire_at <= $1 OR reset_otp_expire_at <= $1;`
)

var (
	psql       = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	usersTable = models.User{}.TableName()
)

// otpColumns maps a purpose to its (code, expiry) column pair.
func otpColumns(purpose models.OtpPurpose) (string, string, error) {
	switch purpose {
	case models.OtpPurposeVerify:
		return "verify_otp", "verify_otp_expire_at", nil
	case models.OtpPurposeReset:
		return "reset_otp", "reset_otp_expire_at", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownOtpPurpose, purpose)
	}
}

// buildSaveUserQuery writes every mutable column of user. The verification
// flag is OR-ed with the stored value so it can never flip back to false.
func buildSaveUserQuery(user models.User) (string, []any, error) {
	return psql.Update(usersTable).
		Set("email", user.Email).
		Set("name", user.Name).
		Set("password_hash", user.PasswordHash).
		Set("is_account_verified", sq.Expr("is_account_verified OR ?", user.IsAccountVerified)).
		Set("verify_otp", user.VerifyOtp).
		Set("verify_otp_expire_at", user.VerifyOtpExpireAt).
		Set("reset_otp", user.ResetOtp).
		Set("reset_otp_expire_at", user.ResetOtpExpireAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": user.UserID}).
		ToSql()
}

func buildSetOtpQuery(userID int64, purpose models.OtpPurpose, code string, expireAt int64) (string, []any, error) {
	codeColumn, expireColumn, err := otpColumns(purpose)
	if err != nil {
		return "", nil, err
	}

	return psql.Update(usersTable).
		Set(codeColumn, code).
		Set(expireColumn, expireAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildConsumeOtpQuery clears the pair only while the stored code matches and
// is still valid, so two concurrent consumers cannot both succeed.
func buildConsumeOtpQuery(userID int64, purpose models.OtpPurpose, code string, now time.Time, update models.UserUpdate) (string, []any, error) {
	codeColumn, expireColumn, err := otpColumns(purpose)
	if err != nil {
		return "", nil, err
	}

	b := psql.Update(usersTable).
		Set(codeColumn, nil).
		Set(expireColumn, nil)

	if update.IsAccountVerified != nil && *update.IsAccountVerified {
		b = b.Set("is_account_verified", true)
	}
	if update.PasswordHash != nil {
		b = b.Set("password_hash", *update.PasswordHash)
	}

	return b.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{codeColumn: code}).
		Where(sq.Gt{expireColumn: now.UnixMilli()}).
		ToSql()
}

func buildClearOtpQuery(userID int64, purpose models.OtpPurpose, code string) (string, []any, error) {
	codeColumn, expireColumn, err := otpColumns(purpose)
	if err != nil {
		return "", nil, err
	}

	return psql.Update(usersTable).
		Set(codeColumn, nil).
		Set(expireColumn, nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{codeColumn: code}).
		ToSql()
}
