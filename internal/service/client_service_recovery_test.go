// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientRecoveryService_SendResetOtp(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientRecoveryService(serverAdapter)

	serverAdapter.EXPECT().SendResetOtp(gomock.Any(), models.SendResetOtpRequest{Email: "a@x.io"}).
		Return(models.APIResponse{Success: true, Message: app.MsgResetOtpSent}, nil)

	msg, err := svc.SendResetOtp(context.Background(), "  a@x.io ")

	require.NoError(t, err)
	assert.Equal(t, app.MsgResetOtpSent, msg)
}

func TestClientRecoveryService_SendResetOtp_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientRecoveryService(serverAdapter)

	serverAdapter.EXPECT().SendResetOtp(gomock.Any(), gomock.Any()).
		Return(models.APIResponse{}, serverError(adapter.ErrNotFound, 404, app.MsgUserNotFound))

	_, err := svc.SendResetOtp(context.Background(), "ghost@x.io")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, app.MsgUserNotFound, err.Error())
}

func TestClientRecoveryService_SendResetOtp_EmptyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientRecoveryService(mock.NewMockServerAdapter(ctrl))

	_, err := svc.SendResetOtp(context.Background(), " ")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientRecoveryService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientRecoveryService(serverAdapter)

	req := models.ResetPasswordRequest{Email: "a@x.io", Otp: "123456", NewPassword: "brand-new-pw"}
	serverAdapter.EXPECT().ResetPassword(gomock.Any(), req).
		Return(models.APIResponse{Success: true, Message: app.MsgPasswordReset}, nil)

	msg, err := svc.ResetPassword(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, app.MsgPasswordReset, msg)
}

func TestClientRecoveryService_ResetPassword_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientRecoveryService(serverAdapter)

	serverAdapter.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).
		Return(models.APIResponse{}, serverError(adapter.ErrBadRequest, 400, app.MsgOtpMismatch))

	_, err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{Email: "a@x.io", Otp: "000000", NewPassword: "brand-new-pw"})

	assert.ErrorIs(t, err, ErrOtpMismatch)
}

func TestMapAdapterError_FallsBackToStatus(t *testing.T) {
	err := mapAdapterError(serverError(adapter.ErrBadGateway, 502, "upstream said no"))

	assert.ErrorIs(t, err, ErrMailDispatch)
	assert.Equal(t, "upstream said no", err.Error())
}

func TestMapAdapterError_UnknownKindPassesThrough(t *testing.T) {
	orig := serverError(adapter.ErrInternalServerError, 500, "boom")

	err := mapAdapterError(orig)

	assert.True(t, errors.Is(err, adapter.ErrInternalServerError))
	assert.Nil(t, mapAdapterError(nil))
}
