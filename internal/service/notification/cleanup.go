package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// CleanupRead removes read notifications older than the retention window,
// across all users. Meant to run from a scheduled job; unread notifications
// are never touched.
func (s *Service) CleanupRead(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-s.cfg.NotificationRetention)

	removed, err := s.notifications.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("notification.CleanupRead: %w", err)
	}

	s.log.InfoContext(ctx, "read notifications cleaned up",
		slog.Time("cutoff", cutoff),
		slog.Int("removed", removed))

	return removed, nil
}
