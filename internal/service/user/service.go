// Package user implements profile use cases: viewing a member's public
// profile with answer stats and badges, and editing one's own profile.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetAnswerStats(ctx context.Context, userID uuid.UUID) (domain.AnswerStats, error)
	Update(ctx context.Context, id uuid.UUID, nickname *string, avatarURL *string) (*domain.User, error)
}

type badgeLister interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error)
}

// Service handles profile use cases.
type Service struct {
	log    *slog.Logger
	users  userRepo
	badges badgeLister
}

// NewService creates a user service.
func NewService(logger *slog.Logger, users userRepo, badges badgeLister) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		badges: badges,
	}
}
