package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// User represents an authenticated community member.
// Points increase only through adoption awards and are never
// decreased automatically.
type User struct {
	ID        uuid.UUID
	Email     string
	Username  string
	Nickname  string
	AvatarURL *string
	Role      UserRole
	Points    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AnswerStats holds a user's aggregate answer counters. It feeds the badge
// qualification check and the expert ranking page.
type AnswerStats struct {
	TotalAnswers   int
	AdoptedAnswers int
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
