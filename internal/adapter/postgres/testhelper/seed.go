package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row with default role and zero points.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Username:  "testuser-" + suffix,
		Nickname:  "여행자 " + suffix,
		Role:      domain.UserRoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, nickname, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.Nickname, user.Role.String(), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedQuestion creates a question authored by the given user.
// Returns a filled domain.Question.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Question {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	question := domain.Question{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     "성산일출봉 근처 맛집 추천해주세요 " + suffix,
		Body:      "다음 주에 성산 쪽으로 여행 가는데 현지인 맛집이 궁금합니다.",
		Category:  "맛집",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO questions (id, author_id, title, body, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		question.ID, question.AuthorID, question.Title, question.Body, question.Category,
		question.CreatedAt, question.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion insert question: %v", err)
	}

	return question
}

// SeedAnswer creates an answer on the given question and bumps the
// question's answer counter, mirroring what the answer repository does.
// Returns a filled domain.Answer.
func SeedAnswer(t *testing.T, pool *pgxpool.Pool, questionID, authorID uuid.UUID) domain.Answer {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	answer := domain.Answer{
		ID:         uuid.New(),
		QuestionID: questionID,
		AuthorID:   authorID,
		Content:    "현지인만 아는 고기국수집이 있어요 " + suffix,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO answers (id, question_id, author_id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		answer.ID, answer.QuestionID, answer.AuthorID, answer.Content, answer.CreatedAt, answer.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer insert answer: %v", err)
	}

	_, err = pool.Exec(ctx,
		`UPDATE questions SET answer_count = answer_count + 1 WHERE id = $1`,
		questionID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer bump answer_count: %v", err)
	}

	return answer
}

// SeedNotification creates a notification row for the given user.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, createdAt time.Time) domain.Notification {
	t.Helper()
	ctx := context.Background()

	n := domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   "회원님의 답변이 채택되었습니다! +20P 적립",
		Points:    20,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO notifications (id, user_id, message, points, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.UserID, n.Message, n.Points, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification insert: %v", err)
	}

	return n
}

// FetchBadge returns a seeded badge definition by code.
func FetchBadge(t *testing.T, pool *pgxpool.Pool, code string) domain.Badge {
	t.Helper()
	ctx := context.Background()

	var b domain.Badge
	err := pool.QueryRow(ctx,
		`SELECT id, code, name, required_answers, required_adopt_rate, active, created_at
		 FROM badges WHERE code = $1`,
		code,
	).Scan(&b.ID, &b.Code, &b.Name, &b.RequiredAnswers, &b.RequiredAdoptRate, &b.Active, &b.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: FetchBadge %q: %v", code, err)
	}

	return b
}
