// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// The local_session table holds at most one row with id = 1.
const (
	saveLocalSession = `
		INSERT INTO local_session (
			id,
			server_url,
			email,
			cookie_name,
			token,
			expires_at,
			saved_at
		) VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			server_url  = excluded.server_url,
			email       = excluded.email,
			cookie_name = excluded.cookie_name,
			token       = excluded.token,
			expires_at  = excluded.expires_at,
			saved_at    = excluded.saved_at;`

	getLocalSession = `
		SELECT
			server_url,
			email,
			cookie_name,
			token,
			expires_at,
			saved_at
		FROM local_session
		WHERE id = 1;`

	deleteLocalSession = `DELETE FROM local_session WHERE id = 1;`
)
