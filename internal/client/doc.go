// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the saved session, loads the account data when the server
// still accepts it, and hands control to the terminal UI.
package client
