package answer

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
	"github.com/ip9202/jeju-tourlist-sub007/pkg/ctxutil"
)

func TestService_Create_Success(t *testing.T) {
	t.Parallel()

	questionID := uuid.New()
	authorID := uuid.New()

	questions := &questionRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
			return &domain.Question{ID: questionID}, nil
		},
	}
	answers := &answerRepoMock{
		CreateFunc: func(ctx context.Context, a *domain.Answer) (*domain.Answer, error) {
			return a, nil
		},
	}

	svc := NewService(slog.New(slog.DiscardHandler),
		questions, answers, &commentRepoMock{}, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg())

	ctx := ctxutil.WithUserID(context.Background(), authorID)
	created, err := svc.Create(ctx, CreateInput{
		QuestionID: questionID,
		Content:    "  우도는 배 시간 때문에 오전에 가는 게 좋아요.  ",
	})
	require.NoError(t, err)

	assert.Equal(t, questionID, created.QuestionID)
	assert.Equal(t, authorID, created.AuthorID)
	assert.Equal(t, "우도는 배 시간 때문에 오전에 가는 게 좋아요.", created.Content)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestService_Create_QuestionMissing(t *testing.T) {
	t.Parallel()

	questions := &questionRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := NewService(slog.New(slog.DiscardHandler),
		questions, &answerRepoMock{}, &commentRepoMock{}, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg())

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	_, err := svc.Create(ctx, CreateInput{QuestionID: uuid.New(), Content: "바다 보이는 카페 추천"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.New(slog.DiscardHandler),
		&questionRepoMock{}, &answerRepoMock{}, &commentRepoMock{}, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg())

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	_, err := svc.Create(ctx, CreateInput{QuestionID: uuid.New(), Content: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Delete_AdoptedAnswerBlocked(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	answerID := uuid.New()

	answers := &answerRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
			return &domain.Answer{ID: answerID, AuthorID: authorID, IsAccepted: true}, nil
		},
	}

	svc := NewService(slog.New(slog.DiscardHandler),
		&questionRepoMock{}, answers, &commentRepoMock{}, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg())

	ctx := ctxutil.WithUserID(context.Background(), authorID)
	err := svc.Delete(ctx, answerID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestService_Delete_OnlyAuthor(t *testing.T) {
	t.Parallel()

	answerID := uuid.New()
	answers := &answerRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
			return &domain.Answer{ID: answerID, AuthorID: uuid.New()}, nil
		},
	}

	svc := NewService(slog.New(slog.DiscardHandler),
		&questionRepoMock{}, answers, &commentRepoMock{}, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg())

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	err := svc.Delete(ctx, answerID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_Vote(t *testing.T) {
	t.Parallel()

	answerID := uuid.New()
	answers := &answerRepoMock{
		VoteFunc: func(ctx context.Context, id uuid.UUID, vote domain.VoteType) (*domain.Answer, error) {
			assert.Equal(t, domain.VoteLike, vote)
			return &domain.Answer{ID: id, LikeCount: 4}, nil
		},
	}

	svc := NewService(slog.New(slog.DiscardHandler),
		&questionRepoMock{}, answers, &commentRepoMock{}, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg())

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	updated, err := svc.Vote(ctx, VoteInput{AnswerID: answerID, Vote: domain.VoteLike})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.LikeCount)

	_, err = svc.Vote(ctx, VoteInput{AnswerID: answerID, Vote: "meh"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_AddComment_BumpsCounter(t *testing.T) {
	t.Parallel()

	answerID := uuid.New()
	authorID := uuid.New()

	var delta int
	comments := &commentRepoMock{
		CreateFunc: func(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
			return c, nil
		},
	}
	answers := &answerRepoMock{
		AdjustCommentCountFunc: func(ctx context.Context, id uuid.UUID, d int) error {
			delta = d
			return nil
		},
	}

	svc := NewService(slog.New(slog.DiscardHandler),
		&questionRepoMock{}, answers, comments, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg())

	ctx := ctxutil.WithUserID(context.Background(), authorID)
	created, err := svc.AddComment(ctx, CommentInput{AnswerID: answerID, Content: "저도 여기 가봤는데 정말 좋았어요"})
	require.NoError(t, err)

	assert.Equal(t, authorID, created.AuthorID)
	assert.Equal(t, 1, delta)
}

func TestService_DeleteComment_OnlyAuthor(t *testing.T) {
	t.Parallel()

	commentID := uuid.New()
	comments := &commentRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return &domain.Comment{ID: commentID, AuthorID: uuid.New()}, nil
		},
	}

	svc := NewService(slog.New(slog.DiscardHandler),
		&questionRepoMock{}, &answerRepoMock{}, comments, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg())

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	err := svc.DeleteComment(ctx, commentID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_DeleteComment_DecrementsCounter(t *testing.T) {
	t.Parallel()

	commentID := uuid.New()
	answerID := uuid.New()
	authorID := uuid.New()

	comments := &commentRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
			return &domain.Comment{ID: commentID, AnswerID: answerID, AuthorID: authorID}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
	}

	var delta int
	answers := &answerRepoMock{
		AdjustCommentCountFunc: func(ctx context.Context, id uuid.UUID, d int) error {
			assert.Equal(t, answerID, id)
			delta = d
			return nil
		},
	}

	svc := NewService(slog.New(slog.DiscardHandler),
		&questionRepoMock{}, answers, comments, &userRepoMock{},
		&notificationRecorderMock{}, &badgeAwarderMock{}, &publisherMock{}, &txManagerMock{},
		testCfg())

	ctx := ctxutil.WithUserID(context.Background(), authorID)
	err := svc.DeleteComment(ctx, commentID)
	require.NoError(t, err)
	assert.Equal(t, -1, delta)
}
