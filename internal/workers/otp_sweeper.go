// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

// OtpSweeper clears expired OTP pairs so stale codes do not linger in the
// users table. Validation never depends on it: expiry is checked on use.
type OtpSweeper struct {
	repo     store.UserRepository
	interval time.Duration
	now      func() time.Time

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewOtpSweeper(repo store.UserRepository, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) *OtpSweeper {
	return &OtpSweeper{
		repo:     repo,
		interval: interval,
		now:      time.Now,
		metrics:  m,
		logger:   logger,
	}
}

func (s *OtpSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Msg("otp sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("otp sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("otp sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass and returns the number of users whose codes were
// cleared.
func (s *OtpSweeper) Sweep(ctx context.Context) int64 {
	n, err := s.repo.ClearExpiredOtps(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Msg("error sweeping expired otps")
		}
		return 0
	}

	if n > 0 {
		s.metrics.OtpSwept(n)
		s.logger.Debug().Int64("users", n).Msg("expired otps cleared")
	}
	return n
}
