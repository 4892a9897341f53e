package domain

import (
	"time"

	"github.com/google/uuid"
)

// Badge describes an expert badge and its qualification thresholds.
// RequiredAdoptRate is a percentage in [0, 100].
type Badge struct {
	ID                uuid.UUID
	Code              string
	Name              string
	RequiredAnswers   int
	RequiredAdoptRate float64
	Active            bool
	CreatedAt         time.Time
}

// UserBadge is the award record linking a user to an earned badge.
// Unique on (UserID, BadgeID); re-awarding is a no-op.
type UserBadge struct {
	UserID    uuid.UUID
	BadgeID   uuid.UUID
	AwardedAt time.Time
}

// AdoptRate returns the fraction of a user's answers that were adopted.
// A user with zero answers has rate 0.
func AdoptRate(adopted, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(adopted) / float64(total)
}

// Qualifies reports whether the given answer stats meet this badge's
// thresholds. Inactive badges never qualify.
func (b *Badge) Qualifies(stats AnswerStats) bool {
	if !b.Active {
		return false
	}
	if stats.TotalAnswers < b.RequiredAnswers {
		return false
	}
	return AdoptRate(stats.AdoptedAnswers, stats.TotalAnswers)*100 >= b.RequiredAdoptRate
}
