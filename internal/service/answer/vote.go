package answer

import (
	"context"
	"fmt"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// Vote registers a like or dislike on an answer and returns the updated
// counters.
func (s *Service) Vote(ctx context.Context, input VoteInput) (*domain.Answer, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	answer, err := s.answers.Vote(ctx, input.AnswerID, input.Vote)
	if err != nil {
		return nil, fmt.Errorf("answer.Vote: %w", err)
	}
	return answer, nil
}
