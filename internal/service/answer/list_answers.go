package answer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// ListByQuestion returns a question's answers, the accepted answer first,
// the rest oldest first.
func (s *Service) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error) {
	if _, err := s.questions.GetByID(ctx, questionID); err != nil {
		return nil, fmt.Errorf("answer.ListByQuestion: get question: %w", err)
	}

	answers, err := s.answers.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("answer.ListByQuestion: %w", err)
	}
	return answers, nil
}
