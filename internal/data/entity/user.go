package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	StatusActive  UserStatus = "active"
	StatusBlocked UserStatus = "blocked"
)

// User is a registered account. ID, Email, CreatedAt and PageSlug are
// immutable after registration; published links depend on PageSlug staying put.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	PageSlug  string     `json:"pageSlug"`
}

func (u *User) IsBlocked() bool {
	return u.Status == StatusBlocked
}
