// Package answer implements answering, voting, commenting and the
// adoption workflow. Adoption is the heart of the community: the question
// author picks one answer, the answer author earns points and possibly a
// badge, and a notification fans out to their devices.
package answer

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
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	SetAcceptedAnswer(ctx context.Context, id uuid.UUID, answerID *uuid.UUID) error
}

// answerRepo defines the answer repository interface needed by this service.
type answerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error)
	Create(ctx context.Context, a *domain.Answer) (*domain.Answer, error)
	SetAccepted(ctx context.Context, id uuid.UUID, accepted bool) error
	ClearAcceptedForQuestion(ctx context.Context, questionID uuid.UUID) (int, error)
	Vote(ctx context.Context, id uuid.UUID, vote domain.VoteType) (*domain.Answer, error)
	AdjustCommentCount(ctx context.Context, id uuid.UUID, delta int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// commentRepo defines the comment repository interface needed by this service.
type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByAnswer(ctx context.Context, answerID uuid.UUID) ([]*domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	AddPoints(ctx context.Context, id uuid.UUID, amount int) error
}

// notificationRecorder persists notifications inside the adoption transaction.
type notificationRecorder interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// badgeAwarder re-evaluates badges after an adoption changes a user's stats.
type badgeAwarder interface {
	Recalculate(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error)
}

// notificationPublisher pushes a committed notification to the user's live
// connections. Called only after the transaction commits.
type notificationPublisher interface {
	Publish(userID uuid.UUID, n *domain.Notification)
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides answer and adoption operations.
type Service struct {
	log           *slog.Logger
	questions     questionRepo
	answers       answerRepo
	comments      commentRepo
	users         userRepo
	notifications notificationRecorder
	badges        badgeAwarder
	publisher     notificationPublisher
	tx            txManager
	cfg           config.CommunityConfig
}

// NewService creates a new answer service.
func NewService(
	logger *slog.Logger,
	questions questionRepo,
	answers answerRepo,
	comments commentRepo,
	users userRepo,
	notifications notificationRecorder,
	badges badgeAwarder,
	publisher notificationPublisher,
	tx txManager,
	cfg config.CommunityConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "answer"),
		questions:     questions,
		answers:       answers,
		comments:      comments,
		users:         users,
		notifications: notifications,
		badges:        badges,
		publisher:     publisher,
		tx:            tx,
		cfg:           cfg,
	}
}
