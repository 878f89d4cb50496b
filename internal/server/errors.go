// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when neither the auth HTTP
// API nor the gRPC health endpoint has an address configured.
var errNoServersAreCreated = errors.New("neither http nor grpc address is configured")
