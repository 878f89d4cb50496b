// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	ErrMissingTokenSignKey   = errors.New("token sign key is required")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidMailConfigs    = errors.New("invalid mail configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
