// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the auth server's transports.
//
// It starts the HTTP API and, when configured, the gRPC health endpoint,
// then shuts both down gracefully when the run context is cancelled.
package server
