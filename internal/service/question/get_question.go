package question

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// Detail is a question together with its answers, accepted answer first.
type Detail struct {
	Question *domain.Question
	Answers  []*domain.Answer
}

// Get returns a question with its answers. The answer ordering puts the
// adopted answer first, then oldest first.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Detail, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("question.Get: %w", err)
	}

	answers, err := s.answers.ListByQuestion(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("question.Get list answers: %w", err)
	}

	return &Detail{Question: question, Answers: answers}, nil
}
