package question

import (
	"context"
	"fmt"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// List returns a page of questions, newest first, optionally filtered by
// category. The second return value is the total count for the filter.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Question, int, error) {
	input.Normalize(s.cfg.PageSizeDefault, s.cfg.PageSizeMax)

	questions, total, err := s.questions.List(ctx, input.Category, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("question.List: %w", err)
	}
	return questions, total, nil
}
