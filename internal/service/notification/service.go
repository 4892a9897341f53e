// Package notification implements the in-app notification inbox: listing,
// read-state transitions, clearing, and retention cleanup.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/config"
	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

type notificationRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteAll(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Service handles notification inbox use cases.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	cfg           config.CommunityConfig
}

// NewService creates a notification service.
func NewService(logger *slog.Logger, notifications notificationRepo, cfg config.CommunityConfig) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		cfg:           cfg,
	}
}
