// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response message strings shared by the server
// handlers and the terminal client.
//
// The client matches failure messages verbatim to recover the server's error
// kind, so changing a Msg* value is a wire-level change.
package app

// Failure messages.
const (
	// MsgMissingDetails is returned when the request body cannot be decoded
	// or a required field is empty.
	MsgMissingDetails = "Missing Details"

	// MsgWeakPassword is returned when a new password is shorter than 6
	// characters or longer than 72 bytes.
	MsgWeakPassword = "Password must be between 6 and 72 characters"

	MsgUserAlreadyExists    = "User already exists"
	MsgUserNotFound         = "User not found"
	MsgInvalidEmailPassword = "Invalid email or password"

	// OTP failures keep their machine-readable names so the client can
	// render its own wording.
	MsgOtpMissing  = "OtpMissing"
	MsgOtpExpired  = "OtpExpired"
	MsgOtpMismatch = "OtpMismatch"

	// MsgNotAuthorized is returned for a missing, malformed, expired or
	// revoked session cookie.
	MsgNotAuthorized = "Not Authorized. Login Again"

	// MsgMailDispatchFailed is returned when the OTP email could not be
	// handed to the mail relay.
	MsgMailDispatchFailed = "Failed to send email, try again later"

	MsgInternalServerError = "Internal server error"

	// MsgOriginNotAllowed is returned by the CORS middleware for origins
	// outside the allow-list.
	MsgOriginNotAllowed = "Not allowed by CORS"
)

// Success messages.
const (
	MsgAPIWorking      = "API Working fine"
	MsgRegistered      = "Registration successful"
	MsgLoggedIn        = "Login successful"
	MsgLoggedOut       = "Logged Out"
	MsgVerifyOtpSent   = "Verification OTP sent on email"
	MsgAlreadyVerified = "Account already verified"
	MsgEmailVerified   = "Email verified successfully"
	MsgResetOtpSent    = "OTP sent to your email"
	MsgPasswordReset   = "Password has been reset successfully"
)
