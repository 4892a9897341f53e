package question

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// Update edits a question. Only the author may edit.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxTitleLen, s.cfg.MaxBodyLen); err != nil {
		return nil, err
	}

	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("question.Update: %w", err)
	}
	if !question.IsAuthor(userID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.questions.Update(ctx, id, input.Title, input.Body, input.Category)
	if err != nil {
		return nil, fmt.Errorf("question.Update: %w", err)
	}
	return updated, nil
}
