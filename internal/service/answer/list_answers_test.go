package answer

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

func TestService_ListByQuestion(t *testing.T) {
	t.Parallel()

	questionID := uuid.New()
	want := []*domain.Answer{
		{ID: uuid.New(), QuestionID: questionID, IsAccepted: true},
		{ID: uuid.New(), QuestionID: questionID},
	}

	questions := &questionRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
			assert.Equal(t, questionID, id)
			return &domain.Question{ID: id}, nil
		},
	}
	answers := &answerRepoMock{
		ListByQuestionFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Answer, error) {
			return want, nil
		},
	}

	svc := NewService(
		slog.New(slog.DiscardHandler),
		questions, answers, &commentRepoMock{}, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg(),
	)

	got, err := svc.ListByQuestion(context.Background(), questionID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_ListByQuestion_QuestionMissing(t *testing.T) {
	t.Parallel()

	questions := &questionRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := NewService(
		slog.New(slog.DiscardHandler),
		questions, &answerRepoMock{}, &commentRepoMock{}, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg(),
	)

	_, err := svc.ListByQuestion(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
