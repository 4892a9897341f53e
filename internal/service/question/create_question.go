package question

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

// Create posts a new question authored by the user in context.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxTitleLen, s.cfg.MaxBodyLen); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	question, err := s.questions.Create(ctx, &domain.Question{
		ID:        uuid.New(),
		AuthorID:  userID,
		Title:     strings.TrimSpace(input.Title),
		Body:      strings.TrimSpace(input.Body),
		Category:  strings.TrimSpace(input.Category),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("question.Create: %w", err)
	}

	s.log.InfoContext(ctx, "question posted",
		slog.String("question_id", question.ID.String()),
		slog.String("author_id", userID.String()),
		slog.String("category", question.Category))

	return question, nil
}
