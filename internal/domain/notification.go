package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app notification record. The read flag moves one way
// only: unread to read.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Message   string
	Points    int
	Read      bool
	CreatedAt time.Time
}
