// Package question implements the travel question board: posting,
// browsing, editing and deleting questions.
package question

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/config"
	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// questionRepo defines the question repository interface needed by this service.
type questionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	List(ctx context.Context, category string, limit, offset int) ([]*domain.Question, int, error)
	Create(ctx context.Context, question *domain.Question) (*domain.Question, error)
	Update(ctx context.Context, id uuid.UUID, title, body, category *string) (*domain.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// answerRepo defines the answer repository interface needed by this service.
type answerRepo interface {
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error)
}

// Service provides question board operations.
type Service struct {
	log       *slog.Logger
	questions questionRepo
	answers   answerRepo
	cfg       config.CommunityConfig
}

// NewService creates a new question service.
func NewService(logger *slog.Logger, questions questionRepo, answers answerRepo, cfg config.CommunityConfig) *Service {
	return &Service{
		log:       logger.With("service", "question"),
		questions: questions,
		answers:   answers,
		cfg:       cfg,
	}
}
