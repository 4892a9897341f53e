package answer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// Unadopt clears the acceptance of the given answer. Only the question
// author may do this, and only for the currently accepted answer;
// un-adopting anything else returns ErrConflict. Points and badges already
// granted stay granted.
func (s *Service) Unadopt(ctx context.Context, input AdoptInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		question, err := s.questions.GetByIDForUpdate(txCtx, input.QuestionID)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}
		if !question.IsAuthor(userID) {
			return domain.ErrForbidden
		}

		if question.AcceptedAnswerID == nil {
			return fmt.Errorf("question has no accepted answer: %w", domain.ErrConflict)
		}
		if *question.AcceptedAnswerID != input.AnswerID {
			return fmt.Errorf("answer is not the accepted one: %w", domain.ErrConflict)
		}

		if err := s.answers.SetAccepted(txCtx, input.AnswerID, false); err != nil {
			return fmt.Errorf("clear answer acceptance: %w", err)
		}
		if err := s.questions.SetAcceptedAnswer(txCtx, question.ID, nil); err != nil {
			return fmt.Errorf("clear accepted answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("answer.Unadopt: %w", err)
	}

	s.log.InfoContext(ctx, "answer adoption cleared",
		slog.String("question_id", input.QuestionID.String()),
		slog.String("answer_id", input.AnswerID.String()))

	return nil
}
