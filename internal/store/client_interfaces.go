// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository persists the single client-side session.
type LocalSessionRepository interface {
	// SaveSession replaces the stored session.
	SaveSession(ctx context.Context, session models.LocalSession) error
	// GetSession returns ErrLocalSessionNotFound when nothing is stored.
	GetSession(ctx context.Context) (models.LocalSession, error)
	DeleteSession(ctx context.Context) error
}
