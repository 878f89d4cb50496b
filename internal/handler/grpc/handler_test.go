// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

type stubProber struct {
	err error
}

func (s *stubProber) Ping(context.Context) error { return s.err }

func newHealthClient(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.LoggingInterceptor))
	h.Register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHealth_ServingWhenStoresAnswer(t *testing.T) {
	h := NewHandler(&stubProber{}, logger.Nop())
	client := newHealthClient(t, h)
	ctx := context.Background()

	h.Probe(ctx)

	for _, svc := range []string{"", AuthServiceName} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: svc})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}

func TestHealth_NotServingWhenProbeFails(t *testing.T) {
	prober := &stubProber{err: errors.New("postgres ping: connection refused")}
	h := NewHandler(prober, logger.Nop())
	client := newHealthClient(t, h)
	ctx := context.Background()

	h.Probe(ctx)

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: AuthServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	prober.err = nil
	h.Probe(ctx)

	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: AuthServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestHealth_ShutdownReportsNotServing(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := newHealthClient(t, h)
	ctx := context.Background()

	h.Probe(ctx)
	h.Shutdown()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
