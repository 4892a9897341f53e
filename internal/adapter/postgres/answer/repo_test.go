package answer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	answerrepo "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/answer"
	"github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres/testhelper"
	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

func answerCount(t *testing.T, pool *pgxpool.Pool, questionID uuid.UUID) int {
	t.Helper()
	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT answer_count FROM questions WHERE id = $1`, questionID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("answerCount query: %v", err)
	}
	return count
}

func TestListByQuestion_AcceptedFirst(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := answerrepo.New(pool)
	ctx := context.Background()

	asker := testhelper.SeedUser(t, pool)
	answerer := testhelper.SeedUser(t, pool)
	question := testhelper.SeedQuestion(t, pool, asker.ID)

	first := testhelper.SeedAnswer(t, pool, question.ID, answerer.ID)
	second := testhelper.SeedAnswer(t, pool, question.ID, answerer.ID)
	third := testhelper.SeedAnswer(t, pool, question.ID, answerer.ID)

	// Stagger created_at so the tiebreak ordering is deterministic.
	base := time.Now().UTC().Truncate(time.Microsecond)
	for i, id := range []uuid.UUID{first.ID, second.ID, third.ID} {
		_, err := pool.Exec(ctx,
			`UPDATE answers SET created_at = $1 WHERE id = $2`,
			base.Add(time.Duration(i)*time.Second), id,
		)
		if err != nil {
			t.Fatalf("stagger created_at: %v", err)
		}
	}

	if err := repo.SetAccepted(ctx, third.ID, true); err != nil {
		t.Fatalf("SetAccepted: %v", err)
	}

	answers, err := repo.ListByQuestion(ctx, question.ID)
	if err != nil {
		t.Fatalf("ListByQuestion: %v", err)
	}
	if len(answers) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(answers))
	}

	if answers[0].ID != third.ID || !answers[0].IsAccepted {
		t.Fatalf("expected accepted answer first, got %s (accepted=%v)",
			answers[0].ID, answers[0].IsAccepted)
	}
	if answers[1].ID != first.ID || answers[2].ID != second.ID {
		t.Fatalf("expected remaining answers oldest first, got %s, %s",
			answers[1].ID, answers[2].ID)
	}
}

func TestClearAcceptedForQuestion(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := answerrepo.New(pool)
	ctx := context.Background()

	asker := testhelper.SeedUser(t, pool)
	answerer := testhelper.SeedUser(t, pool)
	question := testhelper.SeedQuestion(t, pool, asker.ID)
	answer := testhelper.SeedAnswer(t, pool, question.ID, answerer.ID)

	if err := repo.SetAccepted(ctx, answer.ID, true); err != nil {
		t.Fatalf("SetAccepted: %v", err)
	}

	cleared, err := repo.ClearAcceptedForQuestion(ctx, question.ID)
	if err != nil {
		t.Fatalf("ClearAcceptedForQuestion: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("expected 1 cleared answer, got %d", cleared)
	}

	got, err := repo.GetByID(ctx, answer.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.IsAccepted {
		t.Fatal("expected is_accepted to be cleared")
	}

	// Second clear is a no-op.
	cleared, err = repo.ClearAcceptedForQuestion(ctx, question.ID)
	if err != nil {
		t.Fatalf("ClearAcceptedForQuestion (repeat): %v", err)
	}
	if cleared != 0 {
		t.Fatalf("expected 0 cleared answers on repeat, got %d", cleared)
	}
}

func TestVote_IncrementsCounters(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := answerrepo.New(pool)
	ctx := context.Background()

	asker := testhelper.SeedUser(t, pool)
	answerer := testhelper.SeedUser(t, pool)
	question := testhelper.SeedQuestion(t, pool, asker.ID)
	answer := testhelper.SeedAnswer(t, pool, question.ID, answerer.ID)

	if _, err := repo.Vote(ctx, answer.ID, domain.VoteLike); err != nil {
		t.Fatalf("Vote like: %v", err)
	}
	if _, err := repo.Vote(ctx, answer.ID, domain.VoteLike); err != nil {
		t.Fatalf("Vote like: %v", err)
	}
	got, err := repo.Vote(ctx, answer.ID, domain.VoteDislike)
	if err != nil {
		t.Fatalf("Vote dislike: %v", err)
	}

	if got.LikeCount != 2 || got.DislikeCount != 1 {
		t.Fatalf("expected 2 likes / 1 dislike, got %d / %d", got.LikeCount, got.DislikeCount)
	}
}

func TestCreate_BumpsQuestionCounter(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := answerrepo.New(pool)
	ctx := context.Background()

	asker := testhelper.SeedUser(t, pool)
	answerer := testhelper.SeedUser(t, pool)
	question := testhelper.SeedQuestion(t, pool, asker.ID)

	now := time.Now().UTC().Truncate(time.Microsecond)
	created, err := repo.Create(ctx, &domain.Answer{
		ID:         uuid.New(),
		QuestionID: question.ID,
		AuthorID:   answerer.ID,
		Content:    "제주공항에서 시내까지는 버스가 제일 편해요.",
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.IsAccepted {
		t.Fatal("new answer must not be accepted")
	}

	if got := answerCount(t, pool, question.ID); got != 1 {
		t.Fatalf("expected answer_count 1, got %d", got)
	}
}

func TestCreate_MissingQuestion(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := answerrepo.New(pool)
	ctx := context.Background()

	answerer := testhelper.SeedUser(t, pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := repo.Create(ctx, &domain.Answer{
		ID:         uuid.New(),
		QuestionID: uuid.New(),
		AuthorID:   answerer.ID,
		Content:    "이 질문은 존재하지 않아요.",
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestDelete_DecrementsQuestionCounter(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := answerrepo.New(pool)
	ctx := context.Background()

	asker := testhelper.SeedUser(t, pool)
	answerer := testhelper.SeedUser(t, pool)
	question := testhelper.SeedQuestion(t, pool, asker.ID)
	answer := testhelper.SeedAnswer(t, pool, question.ID, answerer.ID)

	if err := repo.Delete(ctx, answer.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if got := answerCount(t, pool, question.ID); got != 0 {
		t.Fatalf("expected answer_count 0, got %d", got)
	}

	if _, err := repo.GetByID(ctx, answer.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := answerrepo.New(pool)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
