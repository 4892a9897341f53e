package answer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// AddComment posts a comment under an answer.
func (s *Service) AddComment(ctx context.Context, input CommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxBodyLen); err != nil {
		return nil, err
	}

	var created *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		c, err := s.comments.Create(txCtx, &domain.Comment{
			ID:        uuid.New(),
			AnswerID:  input.AnswerID,
			AuthorID:  userID,
			Content:   strings.TrimSpace(input.Content),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		if err := s.answers.AdjustCommentCount(txCtx, input.AnswerID, 1); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("answer.AddComment: %w", err)
	}
	return created, nil
}

// ListComments returns an answer's comments, oldest first.
func (s *Service) ListComments(ctx context.Context, answerID uuid.UUID) ([]*domain.Comment, error) {
	comments, err := s.comments.ListByAnswer(ctx, answerID)
	if err != nil {
		return nil, fmt.Errorf("answer.ListComments: %w", err)
	}
	return comments, nil
}

// DeleteComment removes a comment. Only the comment author may delete.
func (s *Service) DeleteComment(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("answer.DeleteComment: %w", err)
	}
	if comment.AuthorID != userID {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.comments.Delete(txCtx, id); err != nil {
			return err
		}
		return s.answers.AdjustCommentCount(txCtx, comment.AnswerID, -1)
	})
	if err != nil {
		return fmt.Errorf("answer.DeleteComment: %w", err)
	}
	return nil
}
