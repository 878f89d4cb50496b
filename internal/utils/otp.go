// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

var ten = big.NewInt(10)

// GenerateOTP returns a uniformly random numeric code of exactly digits
// characters. Every position is drawn independently, so leading zeros are
// kept ("004211" is a valid code).
func GenerateOTP(digits int) (string, error) {
	return generateOTP(rand.Reader, digits)
}

func generateOTP(r io.Reader, digits int) (string, error) {
	if digits <= 0 {
		return "", errors.New("otp length must be positive")
	}

	var b strings.Builder
	b.Grow(digits)
	for i := 0; i < digits; i++ {
		n, err := rand.Int(r, ten)
		if err != nil {
			return "", fmt.Errorf("error generating otp digit: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}

// IsNumericCode reports whether code consists of exactly length ASCII digits.
func IsNumericCode(code string, length int) bool {
	if len(code) != length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// CodesEqual compares two codes in constant time.
func CodesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
