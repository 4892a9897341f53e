package badge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// Recalculate re-evaluates every active badge against the user's current
// answer statistics and awards the ones newly qualified for. Already held
// badges are skipped by the storage layer, so calling this repeatedly is
// safe. Returns the badges awarded by this call.
func (s *Service) Recalculate(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error) {
	stats, err := s.users.GetAnswerStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("badge.Recalculate stats: %w", err)
	}

	badges, err := s.badges.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("badge.Recalculate list badges: %w", err)
	}

	var awarded []*domain.Badge
	for _, b := range badges {
		if !b.Qualifies(stats) {
			continue
		}
		isNew, err := s.badges.Award(ctx, userID, b.ID)
		if err != nil {
			return nil, fmt.Errorf("badge.Recalculate award %s: %w", b.Code, err)
		}
		if isNew {
			awarded = append(awarded, b)
			s.log.InfoContext(ctx, "badge awarded",
				slog.String("user_id", userID.String()),
				slog.String("badge", b.Code))
		}
	}

	return awarded, nil
}

// ListForUser returns the badges a user has earned, newest first.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error) {
	badges, err := s.badges.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("badge.ListForUser: %w", err)
	}
	return badges, nil
}
