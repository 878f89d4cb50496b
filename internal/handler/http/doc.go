// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the auth server.
//
// Routes live under /api/auth and /api/user. The session token travels in an
// HttpOnly cookie; the auth middleware reads it, verifies it through
// [service.SessionService] and stores the user id in the request context.
// Every JSON answer uses the {success, message} envelope and failures are
// mapped to statuses in errors_mapper.go.
package http
