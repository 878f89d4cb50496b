// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSessionCookie is returned by the auth middleware when the request
	// carries no session cookie.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrEmptySessionCookie is returned when the cookie is present but empty.
	ErrEmptySessionCookie = errors.New("empty session cookie")

	// ErrNoUserIDInContext means a protected handler ran without the auth
	// middleware.
	ErrNoUserIDInContext = errors.New("no user id in request context")
)
