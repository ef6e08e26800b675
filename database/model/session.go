package model

import "time"

// Fixed keys for the persisted client state: the bearer token pair plus
// the cached user profile. All three are cleared on logout or on an
// irrecoverable refresh failure.
const (
	KEY_ACCESS_TOKEN  = "access_token"
	KEY_REFRESH_TOKEN = "refresh_token"
	KEY_USER_DATA     = "user_data"
)

const CREATE_SESSION_TABLE = `CREATE TABLE IF NOT EXISTS session (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at TEXT NOT NULL
);`

type SessionEntry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
