// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type clientRecoveryService struct {
	adapter adapter.ServerAdapter
}

func NewClientRecoveryService(serverAdapter adapter.ServerAdapter) ClientRecoveryService {
	return &clientRecoveryService{adapter: serverAdapter}
}

func (r *clientRecoveryService) SendResetOtp(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrInvalidDataProvided
	}

	res, err := r.adapter.SendResetOtp(ctx, models.SendResetOtpRequest{Email: email})
	if err != nil {
		return "", mapAdapterError(err)
	}
	return res.Message, nil
}

func (r *clientRecoveryService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Otp == "" || req.NewPassword == "" {
		return "", ErrInvalidDataProvided
	}

	res, err := r.adapter.ResetPassword(ctx, req)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return res.Message, nil
}
