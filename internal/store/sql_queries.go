// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createUser = `INSERT INTO users (first_name, last_name, email, password_hash, relative_name, relative_number, telephone, relative_email, profile_picture)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
    RETURNING user_id, first_name, last_name, email, password_hash, relative_name, relative_number, telephone, relative_email, COALESCE(profile_picture, ''), last_login, last_logout;`

	findUserByEmail = `SELECT user_id, first_name, last_name, email, password_hash, relative_name, relative_number, telephone, relative_email, COALESCE(profile_picture, ''), last_login, last_logout
    FROM users
    WHERE email = $1;`

	updateLastLogin = `UPDATE users
    SET last_login = $2
    WHERE email = $1;`

	updateLastLogout = `UPDATE users
    SET last_logout = $2
    WHERE email = $1;`

	// The (xmax = 0) projection reports whether the row was freshly
	// inserted, so one round trip answers "created or updated".
	upsertChat = `INSERT INTO chats (email, session_id, messages, saved_at)
    VALUES ($1, $2, $3, now())
    ON CONFLICT (email, session_id)
    DO UPDATE SET messages = EXCLUDED.messages, saved_at = now()
    RETURNING chat_id, saved_at, (xmax = 0) AS inserted;`

	listChatsByEmail = `SELECT chat_id, email, session_id, messages, saved_at
    FROM chats
    WHERE email = $1
    ORDER BY saved_at DESC;`

	findChat = `SELECT chat_id, email, session_id, messages, saved_at
    FROM chats
    WHERE email = $1 AND session_id = $2;`
)
