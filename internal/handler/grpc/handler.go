// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1 service so orchestrators
// can probe the auth server without speaking HTTP.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// AuthServiceName is the service name reported by the health server next to
// the overall ("") status.
const AuthServiceName = "auth.v1.AuthService"

// Prober checks the backing stores. [store.Storages] implements it.
type Prober interface {
	Ping(ctx context.Context) error
}

// Handler owns the health server and keeps its status in line with the
// result of the last probe.
type Handler struct {
	health *health.Server
	prober Prober

	logger *logger.Logger
}

func NewHandler(prober Prober, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: health.NewServer(),
		prober: prober,
		logger: logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe runs one check and updates the reported status.
func (h *Handler) Probe(ctx context.Context) {
	serving := healthpb.HealthCheckResponse_SERVING
	if h.prober != nil {
		if err := h.prober.Ping(ctx); err != nil {
			h.logger.Ctx(ctx).Warn().Err(err).Msg("health probe failed")
			serving = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.health.SetServingStatus("", serving)
	h.health.SetServingStatus(AuthServiceName, serving)
}

// RunProbes probes every interval until ctx is done.
func (h *Handler) RunProbes(ctx context.Context, interval time.Duration) {
	h.Probe(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

// Shutdown reports NOT_SERVING to every watcher and stops accepting status
// updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// LoggingInterceptor writes one entry per unary call.
func (h *Handler) LoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	h.logger.Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("grpc call")

	return resp, err
}
