package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the explicit login state: created at login, revoked at logout.
// Role is captured at creation so admin sessions work without a Users-table
// row backing them.
type Session struct {
	Token     uuid.UUID  `json:"token"`
	UserID    uuid.UUID  `json:"userId"`
	Role      UserRole   `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

func (s *Session) Valid(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
