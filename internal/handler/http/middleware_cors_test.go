// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/stretchr/testify/assert"
)

func corsSettings() Settings {
	return Settings{AllowedOrigins: []string{"http://localhost:5173", "https://app.example.com/"}}
}

func TestCORS_NoOriginPasses(t *testing.T) {
	h, _ := newTestHandler(t, corsSettings())

	rec := serve(h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowedOrigin(t *testing.T) {
	h, _ := newTestHandler(t, corsSettings())

	rec := serve(h, http.MethodGet, "/", "", withHeader("Origin", "https://app.example.com"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_Preflight(t *testing.T) {
	h, _ := newTestHandler(t, corsSettings())

	rec := serve(h, http.MethodOptions, "/api/auth/login", "",
		withHeader("Origin", "http://localhost:5173"),
		withHeader("Access-Control-Request-Method", http.MethodPost),
	)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestCORS_UnlistedOriginRejected(t *testing.T) {
	h, _ := newTestHandler(t, corsSettings())

	rec := serve(h, http.MethodPost, "/api/auth/login", `{}`, withHeader("Origin", "https://evil.example"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgOriginNotAllowed, decodeAPIResponse(t, rec).Message)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_EmptyAllowListRejectsBrowsers(t *testing.T) {
	h, _ := newTestHandler(t, Settings{})

	rec := serve(h, http.MethodGet, "/", "", withHeader("Origin", "http://localhost:5173"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
