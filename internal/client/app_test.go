// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/tui"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	start tui.Start
	calls int
	err   error
}

func (f *fakeUI) Run(_ context.Context, start tui.Start) error {
	f.calls++
	f.start = start
	return f.err
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	services := &service.ClientServices{AuthService: auth}
	return NewApp(services, ui, logger.Nop()), auth
}

func TestApp_Run_RestoredSession(t *testing.T) {
	ui := &fakeUI{}
	app, auth := newTestApp(t, ui)
	user := models.UserData{Name: "Alice", Email: "a@x.io", IsAccountVerified: true}

	gomock.InOrder(
		auth.EXPECT().RestoreSession(gomock.Any()).Return(true, nil),
		auth.EXPECT().UserData(gomock.Any()).Return(user, nil),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
	assert.Equal(t, tui.Start{Authenticated: true, User: user}, ui.start)
}

func TestApp_Run_NoSession(t *testing.T) {
	ui := &fakeUI{}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().RestoreSession(gomock.Any()).Return(false, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, tui.Start{}, ui.start)
}

func TestApp_Run_ServerUnavailable(t *testing.T) {
	ui := &fakeUI{}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().RestoreSession(gomock.Any()).Return(false, service.ErrServerUnavailable)

	require.NoError(t, app.Run(context.Background()))
	assert.False(t, ui.start.Authenticated)
	assert.Equal(t, noticeServerUnavailable, ui.start.Notice)
}

func TestApp_Run_UserDataFails(t *testing.T) {
	ui := &fakeUI{}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().RestoreSession(gomock.Any()).Return(true, nil)
	auth.EXPECT().UserData(gomock.Any()).Return(models.UserData{}, service.ErrSessionInvalid)

	require.NoError(t, app.Run(context.Background()))
	assert.False(t, ui.start.Authenticated)
}

func TestApp_Run_UserQuitIsNotAnError(t *testing.T) {
	ui := &fakeUI{err: tui.ErrUserQuit}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().RestoreSession(gomock.Any()).Return(false, nil)

	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_UIError(t *testing.T) {
	uiErr := errors.New("no tty")
	ui := &fakeUI{err: uiErr}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().RestoreSession(gomock.Any()).Return(false, nil)

	assert.ErrorIs(t, app.Run(context.Background()), uiErr)
}
