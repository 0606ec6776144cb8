package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the per-interaction context object. It is created fresh for
// each user interaction and carries no state beyond identity; nothing is
// persisted across sessions.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	StartedAt time.Time `json:"started_at"`
}

// NewSession mints a session for one interaction lifetime.
func NewSession(email string) Session {
	return Session{
		ID:        uuid.New().String(),
		Email:     email,
		StartedAt: time.Now().UTC(),
	}
}
