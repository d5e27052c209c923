package models

import (
	"encoding/json"
	"time"
)

// Session is a browser session as persisted by the postgres and redis stores.
// The backend token never leaves the process unsealed.
type Session struct {
	ID          string          `json:"id" db:"session_id"`
	SealedToken string          `json:"token,omitempty" db:"sealed_token"`
	User        json.RawMessage `json:"user,omitempty" db:"user_data"`
	ExpiresAt   time.Time       `json:"expiresAt" db:"expires_at"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

