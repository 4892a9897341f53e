package notification

import (
	"context"
	"fmt"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

// InboxView is the inbox as presented to the client.
type InboxView struct {
	Notifications []*domain.Notification
	UnreadCount   int
}

// List returns the caller's notifications, newest first, together with the
// unread count. The backlog is already bounded at the storage layer, so no
// pagination is needed here.
func (s *Service) List(ctx context.Context) (*InboxView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	notifications, err := s.notifications.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}

	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}

	return &InboxView{Notifications: notifications, UnreadCount: unread}, nil
}

// CountUnread returns only the caller's unread count, for badge polling.
func (s *Service) CountUnread(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	count, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.CountUnread: %w", err)
	}
	return count, nil
}
