// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-auth-keeper/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-auth-keeper/internal/handler/http"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(&service.Services{}, myHTTP.Settings{CookieName: "token"}, metrics.New(), logger.Nop()),
		GRPC: myGRPC.NewHandler(nil, logger.Nop()),
	}
}

func TestNewServer_NoAddresses(t *testing.T) {
	srv, err := NewServer(testHandlers(), config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	srv, err := NewServer(testHandlers(), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
}

func TestRunServer_ListenFailureIsReturned(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	srv, err := NewServer(testHandlers(), cfg, logger.Nop())
	require.NoError(t, err)

	select {
	case err := <-runAsync(srv):
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not report the listen failure")
	}
}

func runAsync(srv Server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(context.Background()) }()
	return done
}
