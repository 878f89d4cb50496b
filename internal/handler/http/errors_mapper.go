// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type errorResponse struct {
	err     error
	status  int
	message string
}

// errorResponses is matched in order with errors.Is.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgMissingDetails},
	{service.ErrWeakPassword, http.StatusBadRequest, app.MsgWeakPassword},
	{service.ErrEmailAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},
	{service.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{service.ErrOtpMissing, http.StatusBadRequest, app.MsgOtpMissing},
	{service.ErrOtpExpired, http.StatusBadRequest, app.MsgOtpExpired},
	{service.ErrOtpMismatch, http.StatusBadRequest, app.MsgOtpMismatch},
	{service.ErrSessionInvalid, http.StatusUnauthorized, app.MsgNotAuthorized},
	{ErrNoSessionCookie, http.StatusUnauthorized, app.MsgNotAuthorized},
	{ErrEmptySessionCookie, http.StatusUnauthorized, app.MsgNotAuthorized},
	{ErrNoUserIDInContext, http.StatusUnauthorized, app.MsgNotAuthorized},
	{service.ErrMailDispatch, http.StatusBadGateway, app.MsgMailDispatchFailed},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.err) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the {success:false, message} envelope. Server
// side failures are logged at error level, client mistakes at debug.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.APIResponse{Success: false, Message: message}, status)
}
