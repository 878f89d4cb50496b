// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	mu      sync.RWMutex
	session models.LocalSession

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter]
// for the server at cfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL.String(), cfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("address must include host and scheme")
	}

	return u, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.APIResponse, error) {
	resp, result, err := h.post(ctx, "/api/auth/register", req)
	if err != nil {
		return result, err
	}

	h.captureSession(resp, req.Email)
	return result, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.APIResponse, error) {
	resp, result, err := h.post(ctx, "/api/auth/login", req)
	if err != nil {
		return result, err
	}

	h.captureSession(resp, req.Email)
	return result, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) (models.APIResponse, error) {
	defer h.ClearSession()

	_, result, err := h.post(ctx, "/api/auth/logout", nil)
	return result, err
}

func (h *httpServerAdapter) IsAuthenticated(ctx context.Context) (bool, error) {
	var result models.APIResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/auth/is-auth")
	if err != nil {
		return false, fmt.Errorf("%w: is-auth request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Success, nil
}

func (h *httpServerAdapter) UserData(ctx context.Context) (models.UserData, error) {
	var result models.UserDataResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/user/data")
	if err != nil {
		return models.UserData{}, fmt.Errorf("%w: user data request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserData{}, err
	}
	if !result.Success || result.UserData == nil {
		return models.UserData{}, &ResponseError{StatusCode: resp.StatusCode(), Message: result.Message, Kind: ErrUnsuccessful}
	}

	return *result.UserData, nil
}

func (h *httpServerAdapter) SendVerifyOtp(ctx context.Context) (models.APIResponse, error) {
	_, result, err := h.post(ctx, "/api/auth/send-verify-otp", nil)
	return result, err
}

func (h *httpServerAdapter) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) (models.APIResponse, error) {
	_, result, err := h.post(ctx, "/api/auth/verify-email", req)
	return result, err
}

func (h *httpServerAdapter) SendResetOtp(ctx context.Context, req models.SendResetOtpRequest) (models.APIResponse, error) {
	_, result, err := h.post(ctx, "/api/auth/send-reset-otp", req)
	return result, err
}

func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.APIResponse, error) {
	_, result, err := h.post(ctx, "/api/auth/reset-password", req)
	return result, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("%w: version request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) Session() (models.LocalSession, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.session, h.session.Token != ""
}

func (h *httpServerAdapter) RestoreSession(session models.LocalSession) error {
	if session.Token == "" || session.CookieName == "" {
		return errors.New("restore session: empty cookie")
	}

	cookie := &http.Cookie{
		Name:  session.CookieName,
		Value: session.Token,
		Path:  "/",
	}
	if !session.ExpiresAt.IsZero() {
		cookie.Expires = session.ExpiresAt
	}
	h.client.Jar().SetCookies(h.baseURL, []*http.Cookie{cookie})

	session.ServerURL = h.baseURL.String()

	h.mu.Lock()
	h.session = session
	h.mu.Unlock()

	return nil
}

func (h *httpServerAdapter) ClearSession() {
	h.mu.Lock()
	name := h.session.CookieName
	h.session = models.LocalSession{}
	h.mu.Unlock()

	if name != "" {
		h.client.Jar().SetCookies(h.baseURL, []*http.Cookie{{Name: name, Path: "/", MaxAge: -1}})
	}
}

// post sends body as JSON and decodes the uniform {success,message}
// envelope. A 2xx answer with success=false is reported as [ErrUnsuccessful].
func (h *httpServerAdapter) post(ctx context.Context, path string, body any) (*resty.Response, models.APIResponse, error) {
	var result models.APIResponse

	req := h.client.R().
		SetContext(ctx).
		SetResult(&result)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("request failed")
		return nil, models.APIResponse{}, fmt.Errorf("%w: %s request: %w", ErrServerUnavailable, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg(err.Error())
		return resp, models.APIResponse{Success: false, Message: Message(err)}, err
	}
	if !result.Success {
		return resp, result, &ResponseError{StatusCode: resp.StatusCode(), Message: result.Message, Kind: ErrUnsuccessful}
	}

	return resp, result, nil
}

// captureSession remembers the session cookie set by a login or register
// answer. The jar already replays it; the copy here is what gets persisted.
func (h *httpServerAdapter) captureSession(resp *resty.Response, email string) {
	for _, c := range resp.Cookies() {
		if c.Value == "" || !c.HttpOnly {
			continue
		}

		session := models.LocalSession{
			ServerURL:  h.baseURL.String(),
			Email:      models.NormalizeEmail(email),
			CookieName: c.Name,
			Token:      c.Value,
			SavedAt:    time.Now(),
		}
		switch {
		case !c.Expires.IsZero():
			session.ExpiresAt = c.Expires
		case c.MaxAge > 0:
			session.ExpiresAt = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
		}

		h.mu.Lock()
		h.session = session
		h.mu.Unlock()
		return
	}

	h.logger.Warn().Msg("server answered without a session cookie")
}
