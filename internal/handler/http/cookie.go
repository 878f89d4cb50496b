// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// sameSite is None in production, where the browser app is served from
// another origin, and Strict otherwise. None requires Secure.
func (h *Handler) sameSite() http.SameSite {
	if h.settings.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     h.settings.CookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.settings.Production,
		SameSite: h.sameSite(),
		Expires:  token.Expiry(),
	}
	if token.IssuedAt != nil && !cookie.Expires.IsZero() {
		cookie.MaxAge = int(cookie.Expires.Sub(token.IssuedAt.Time) / time.Second)
	}

	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.settings.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.settings.Production,
		SameSite: h.sameSite(),
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// sessionToken returns the raw token from the session cookie.
func (h *Handler) sessionToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie(h.settings.CookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}
	if cookie.Value == "" {
		return "", ErrEmptySessionCookie
	}
	return cookie.Value, nil
}
