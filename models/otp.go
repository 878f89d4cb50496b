// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OtpPurpose selects which one-time code record of a user is addressed.
// The two purposes are independent: issuing one never touches the other.
type OtpPurpose string

const (
	// OtpPurposeVerify is the email verification code.
	OtpPurposeVerify OtpPurpose = "verify"
	// OtpPurposeReset is the password reset code.
	OtpPurposeReset OtpPurpose = "reset"
)

// OtpLength is the number of digits in every issued code.
const OtpLength = 6

// String implements [fmt.Stringer].
func (p OtpPurpose) String() string {
	return string(p)
}

// IsValid reports whether p is one of the known purposes.
func (p OtpPurpose) IsValid() bool {
	return p == OtpPurposeVerify || p == OtpPurposeReset
}
