package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// MarkRead marks one of the caller's notifications as read. The flag is
// one-way; re-marking an already-read notification succeeds silently.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.notifications.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification of the caller as read and returns
// how many were flipped.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	flipped, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.MarkAllRead: %w", err)
	}
	return flipped, nil
}

// DeleteAll clears the caller's inbox.
func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	removed, err := s.notifications.DeleteAll(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.DeleteAll: %w", err)
	}

	s.log.InfoContext(ctx, "inbox cleared",
		slog.String("user_id", userID.String()),
		slog.Int("removed", removed))

	return removed, nil
}
