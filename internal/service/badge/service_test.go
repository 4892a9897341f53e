package badge

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

type userRepoMock struct {
	GetAnswerStatsFunc func(ctx context.Context, userID uuid.UUID) (domain.AnswerStats, error)
}

func (m *userRepoMock) GetAnswerStats(ctx context.Context, userID uuid.UUID) (domain.AnswerStats, error) {
	return m.GetAnswerStatsFunc(ctx, userID)
}

type badgeRepoMock struct {
	ListActiveFunc func(ctx context.Context) ([]*domain.Badge, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error)
	AwardFunc      func(ctx context.Context, userID, badgeID uuid.UUID) (bool, error)
}

func (m *badgeRepoMock) ListActive(ctx context.Context) ([]*domain.Badge, error) {
	return m.ListActiveFunc(ctx)
}

func (m *badgeRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *badgeRepoMock) Award(ctx context.Context, userID, badgeID uuid.UUID) (bool, error) {
	return m.AwardFunc(ctx, userID, badgeID)
}

func testBadges() []*domain.Badge {
	return []*domain.Badge{
		{ID: uuid.New(), Code: "sprout_guide", RequiredAnswers: 3, RequiredAdoptRate: 0, Active: true},
		{ID: uuid.New(), Code: "answer_machine", RequiredAnswers: 10, RequiredAdoptRate: 30, Active: true},
		{ID: uuid.New(), Code: "jeju_expert", RequiredAnswers: 30, RequiredAdoptRate: 50, Active: true},
	}
}

func newTestService(users *userRepoMock, badges *badgeRepoMock) *Service {
	return NewService(slog.New(slog.DiscardHandler), users, badges)
}

func TestService_Recalculate_AwardsQualified(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	users := &userRepoMock{
		GetAnswerStatsFunc: func(ctx context.Context, uid uuid.UUID) (domain.AnswerStats, error) {
			// 12 answers, 5 adopted → 41.7% adopt rate.
			return domain.AnswerStats{TotalAnswers: 12, AdoptedAnswers: 5}, nil
		},
	}

	var awardedIDs []uuid.UUID
	badges := &badgeRepoMock{
		ListActiveFunc: func(ctx context.Context) ([]*domain.Badge, error) { return testBadges(), nil },
		AwardFunc: func(ctx context.Context, uid, badgeID uuid.UUID) (bool, error) {
			awardedIDs = append(awardedIDs, badgeID)
			return true, nil
		},
	}

	svc := newTestService(users, badges)

	awarded, err := svc.Recalculate(context.Background(), userID)
	require.NoError(t, err)

	// Qualifies for sprout_guide (3+) and answer_machine (10+, 30%+) but
	// not jeju_expert (needs 30 answers).
	require.Len(t, awarded, 2)
	assert.Equal(t, "sprout_guide", awarded[0].Code)
	assert.Equal(t, "answer_machine", awarded[1].Code)
	assert.Len(t, awardedIDs, 2)
}

func TestService_Recalculate_AlreadyHeldNotReported(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetAnswerStatsFunc: func(ctx context.Context, uid uuid.UUID) (domain.AnswerStats, error) {
			return domain.AnswerStats{TotalAnswers: 5, AdoptedAnswers: 1}, nil
		},
	}
	badges := &badgeRepoMock{
		ListActiveFunc: func(ctx context.Context) ([]*domain.Badge, error) { return testBadges(), nil },
		AwardFunc: func(ctx context.Context, uid, badgeID uuid.UUID) (bool, error) {
			return false, nil // already held
		},
	}

	svc := newTestService(users, badges)

	awarded, err := svc.Recalculate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, awarded, "re-evaluation must not report already held badges")
}

func TestService_Recalculate_BelowThreshold(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetAnswerStatsFunc: func(ctx context.Context, uid uuid.UUID) (domain.AnswerStats, error) {
			return domain.AnswerStats{TotalAnswers: 2, AdoptedAnswers: 2}, nil
		},
	}
	badges := &badgeRepoMock{
		ListActiveFunc: func(ctx context.Context) ([]*domain.Badge, error) { return testBadges(), nil },
		AwardFunc: func(ctx context.Context, uid, badgeID uuid.UUID) (bool, error) {
			t.Fatal("Award must not be called below the answer threshold")
			return false, nil
		},
	}

	svc := newTestService(users, badges)

	awarded, err := svc.Recalculate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, awarded)
}

func TestService_Recalculate_AdoptRateBoundary(t *testing.T) {
	t.Parallel()

	// Exactly 30%: 10 answers, 3 adopted. Threshold is inclusive.
	users := &userRepoMock{
		GetAnswerStatsFunc: func(ctx context.Context, uid uuid.UUID) (domain.AnswerStats, error) {
			return domain.AnswerStats{TotalAnswers: 10, AdoptedAnswers: 3}, nil
		},
	}

	var codes []string
	all := testBadges()
	badges := &badgeRepoMock{
		ListActiveFunc: func(ctx context.Context) ([]*domain.Badge, error) { return all, nil },
		AwardFunc: func(ctx context.Context, uid, badgeID uuid.UUID) (bool, error) {
			for _, b := range all {
				if b.ID == badgeID {
					codes = append(codes, b.Code)
				}
			}
			return true, nil
		},
	}

	svc := newTestService(users, badges)

	_, err := svc.Recalculate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Contains(t, codes, "answer_machine")
}

func TestService_Recalculate_InactiveBadgeSkipped(t *testing.T) {
	t.Parallel()

	inactive := &domain.Badge{ID: uuid.New(), Code: "retired", RequiredAnswers: 1, Active: false}
	users := &userRepoMock{
		GetAnswerStatsFunc: func(ctx context.Context, uid uuid.UUID) (domain.AnswerStats, error) {
			return domain.AnswerStats{TotalAnswers: 100, AdoptedAnswers: 100}, nil
		},
	}
	badges := &badgeRepoMock{
		ListActiveFunc: func(ctx context.Context) ([]*domain.Badge, error) {
			return []*domain.Badge{inactive}, nil
		},
		AwardFunc: func(ctx context.Context, uid, badgeID uuid.UUID) (bool, error) {
			t.Fatal("inactive badge must never be awarded")
			return false, nil
		},
	}

	svc := newTestService(users, badges)

	awarded, err := svc.Recalculate(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, awarded)
}
