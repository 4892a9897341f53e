package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// Delete removes a question. The author or an admin may delete; answers
// and comments cascade at the storage level.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("question.Delete: %w", err)
	}
	if !question.IsAuthor(userID) && !isAdmin {
		return domain.ErrForbidden
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("question.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.String("question_id", id.String()),
		slog.String("deleted_by", userID.String()))

	return nil
}
