// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, token, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.APIResponse{Success: true, Message: app.MsgRegistered}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.APIResponse{Success: true, Message: app.MsgLoggedIn}, http.StatusOK)
}

// logout needs no valid session: it clears whatever cookie the caller has.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if token, err := h.sessionToken(r); err == nil {
		h.services.AuthService.Logout(r.Context(), token)
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.APIResponse{Success: true, Message: app.MsgLoggedOut}, http.StatusOK)
}

// isAuth always answers 200; the verdict is in "success".
func (h *Handler) isAuth(w http.ResponseWriter, r *http.Request) {
	token, err := h.sessionToken(r)
	if err != nil || !h.services.AuthService.IsAuthenticated(r.Context(), token) {
		utils.WriteJSON(w, models.APIResponse{Success: false, Message: app.MsgNotAuthorized}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true}, http.StatusOK)
}

func (h *Handler) sendVerifyOtp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	alreadyVerified, err := h.services.AuthService.SendVerifyOtp(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if alreadyVerified {
		utils.WriteJSON(w, models.APIResponse{Success: true, Message: app.MsgAlreadyVerified}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: app.MsgVerifyOtpSent}, http.StatusOK)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	var req models.VerifyEmailRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.AuthService.VerifyEmail(ctx, userID, req.Otp); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: app.MsgEmailVerified}, http.StatusOK)
}

func (h *Handler) sendResetOtp(w http.ResponseWriter, r *http.Request) {
	var req models.SendResetOtpRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.AuthService.SendResetOtp(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: app.MsgResetOtpSent}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, Message: app.MsgPasswordReset}, http.StatusOK)
}
