package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// Create posts a new answer on a question.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Answer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxBodyLen); err != nil {
		return nil, err
	}

	// Existence check up front for a clean not-found instead of an FK error.
	if _, err := s.questions.GetByID(ctx, input.QuestionID); err != nil {
		return nil, fmt.Errorf("answer.Create: %w", err)
	}

	var created *domain.Answer
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		a, err := s.answers.Create(txCtx, &domain.Answer{
			ID:         uuid.New(),
			QuestionID: input.QuestionID,
			AuthorID:   userID,
			Content:    strings.TrimSpace(input.Content),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("answer.Create: %w", err)
	}

	s.log.InfoContext(ctx, "answer posted",
		slog.String("answer_id", created.ID.String()),
		slog.String("question_id", input.QuestionID.String()),
		slog.String("author_id", userID.String()))

	return created, nil
}

// Delete removes an answer. Only the author may delete, and an adopted
// answer cannot be removed while its acceptance stands.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	answer, err := s.answers.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("answer.Delete: %w", err)
	}
	if answer.AuthorID != userID {
		return domain.ErrForbidden
	}
	if answer.IsAccepted {
		return fmt.Errorf("adopted answer cannot be deleted: %w", domain.ErrConflict)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.answers.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("answer.Delete: %w", err)
	}
	return nil
}
