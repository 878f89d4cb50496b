// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type otpService struct {
	userRepository store.UserRepository

	verifyTTL time.Duration
	resetTTL  time.Duration

	generate func(digits int) (string, error)
	now      func() time.Time

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewOtpService constructs an [OtpService] with the windows from cfg.
func NewOtpService(userRepository store.UserRepository, cfg config.App, m *metrics.Metrics, logger *logger.Logger) OtpService {
	return &otpService{
		userRepository: userRepository,
		verifyTTL:      cfg.VerifyOtpTTL,
		resetTTL:       cfg.ResetOtpTTL,
		generate:       utils.GenerateOTP,
		now:            time.Now,
		metrics:        m,
		logger:         logger,
	}
}

func (s *otpService) TTL(purpose models.OtpPurpose) time.Duration {
	if purpose == models.OtpPurposeReset {
		return s.resetTTL
	}
	return s.verifyTTL
}

func (s *otpService) Issue(ctx context.Context, user models.User, purpose models.OtpPurpose) (string, error) {
	if !purpose.IsValid() {
		return "", fmt.Errorf("%w: otp purpose %q", ErrInvalidDataProvided, purpose)
	}

	code, err := s.generate(models.OtpLength)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	expireAt := s.now().Add(s.TTL(purpose)).UnixMilli()
	if err = s.userRepository.SetOtp(ctx, user.UserID, purpose, code, expireAt); err != nil {
		return "", fmt.Errorf("store otp: %w", mapStoreError(err))
	}

	s.metrics.OtpIssued(purpose.String())
	s.logger.Ctx(ctx).Debug().
		Int64("user_id", user.UserID).
		Str("purpose", purpose.String()).
		Int64("expire_at", expireAt).
		Msg("otp issued")

	return code, nil
}

func (s *otpService) Validate(ctx context.Context, user models.User, purpose models.OtpPurpose, code string, onConsume models.UserUpdate) error {
	if !purpose.IsValid() {
		return fmt.Errorf("%w: otp purpose %q", ErrInvalidDataProvided, purpose)
	}

	now := s.now()

	if err := s.classify(ctx, user, purpose, code, now); err != nil {
		s.metrics.OtpValidated(purpose.String(), err.Error())
		return err
	}

	consumed, err := s.userRepository.ConsumeOtp(ctx, user.UserID, purpose, code, now, onConsume)
	if err != nil {
		return fmt.Errorf("consume otp: %w", mapStoreError(err))
	}

	if !consumed {
		// another request consumed or replaced the code in between
		err = s.reclassify(ctx, user.UserID, purpose, code, now)
		s.metrics.OtpValidated(purpose.String(), failureLabel(err))
		return err
	}

	s.metrics.OtpValidated(purpose.String(), metrics.ResultSuccess)
	return nil
}

// classify reports why code would not be accepted for user at now, or nil
// if it matches a live record. An expired record is cleared on the way.
func (s *otpService) classify(ctx context.Context, user models.User, purpose models.OtpPurpose, code string, now time.Time) error {
	stored, expireAt, ok := user.Otp(purpose)
	if !ok {
		// also the outcome once the sweeper has nulled an expired pair
		return ErrOtpMissing
	}

	if now.UnixMilli() >= expireAt {
		if err := s.userRepository.ClearOtp(ctx, user.UserID, purpose, stored); err != nil {
			s.logger.Ctx(ctx).Err(err).Int64("user_id", user.UserID).Msg("error clearing expired otp")
		}
		return ErrOtpExpired
	}

	if !utils.CodesEqual(stored, code) {
		return ErrOtpMismatch
	}

	return nil
}

func (s *otpService) reclassify(ctx context.Context, userID int64, purpose models.OtpPurpose, code string, now time.Time) error {
	fresh, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("reload user: %w", mapStoreError(err))
	}

	if err = s.classify(ctx, fresh, purpose, code, now); err != nil {
		return err
	}
	return ErrOtpMissing
}

func failureLabel(err error) string {
	switch {
	case errors.Is(err, ErrOtpMissing), errors.Is(err, ErrOtpExpired), errors.Is(err, ErrOtpMismatch):
		return err.Error()
	default:
		return metrics.ResultFailure
	}
}

// mapStoreError translates repository sentinels into service sentinels.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyExists
	default:
		return err
	}
}
