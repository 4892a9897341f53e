// Package badge implements the expert badge calculator. Badges are
// awarded from a user's answer statistics; an award is permanent and
// re-evaluating never revokes one.
package badge

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// userRepo defines the user repository interface needed by badge service.
type userRepo interface {
	GetAnswerStats(ctx context.Context, userID uuid.UUID) (domain.AnswerStats, error)
}

// badgeRepo defines the badge repository interface needed by badge service.
type badgeRepo interface {
	ListActive(ctx context.Context) ([]*domain.Badge, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error)
	Award(ctx context.Context, userID, badgeID uuid.UUID) (bool, error)
}

// Service provides badge qualification and award operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	badges badgeRepo
}

// NewService creates a new badge service.
func NewService(logger *slog.Logger, users userRepo, badges badgeRepo) *Service {
	return &Service{
		log:    logger.With("service", "badge"),
		users:  users,
		badges: badges,
	}
}
