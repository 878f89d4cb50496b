// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

// auth rejects requests without a valid session cookie with 401 and the
// "Not Authorized" message. On success the user id and the raw token are
// stored in the request context and the trace logger gains a user_id field.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := h.sessionToken(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		userID, err := h.services.SessionService.Verify(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromRequest(r).WithUserID(userID)
		ctx = log.WithContext(utils.WithSession(ctx, userID, tokenString))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
