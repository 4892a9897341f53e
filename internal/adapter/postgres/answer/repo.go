// Package answer implements the Answer repository using PostgreSQL.
package answer

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres"
	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const answerColumns = "id, question_id, author_id, content, is_accepted, like_count, dislike_count, comment_count, created_at, updated_at"

// Repo provides answer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new answer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an answer by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(answerColumns).From("answers").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build answer query: %w", err)
	}

	a, err := scanAnswer(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "answer", id)
	}
	return a, nil
}

// ListByQuestion returns a question's answers, accepted answer first,
// then oldest first.
func (r *Repo) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(answerColumns).
		From("answers").
		Where(sq.Eq{"question_id": questionID}).
		OrderBy("is_accepted DESC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build answer list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var answers []*domain.Answer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	return answers, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new answer, bumps the question's answer counter, and
// returns the persisted domain.Answer.
func (r *Repo) Create(ctx context.Context, a *domain.Answer) (*domain.Answer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("answers").
		Columns("id", "question_id", "author_id", "content", "created_at", "updated_at").
		Values(a.ID, a.QuestionID, a.AuthorID, a.Content, a.CreatedAt, a.UpdatedAt).
		Suffix("RETURNING " + answerColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build answer insert: %w", err)
	}

	created, err := scanAnswer(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "answer", a.ID)
	}

	if _, err := q.Exec(ctx,
		`UPDATE questions SET answer_count = answer_count + 1 WHERE id = $1`,
		a.QuestionID,
	); err != nil {
		return nil, mapError(err, "question", a.QuestionID)
	}

	return created, nil
}

// SetAccepted sets or clears the denormalized is_accepted flag on one answer.
func (r *Repo) SetAccepted(ctx context.Context, id uuid.UUID, accepted bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE answers SET is_accepted = $1, updated_at = now() WHERE id = $2`,
		accepted, id,
	)
	if err != nil {
		return mapError(err, "answer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("answer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ClearAcceptedForQuestion clears is_accepted on every answer of a question.
// Returns the number of cleared answers (0 or 1 when the invariant holds).
func (r *Repo) ClearAcceptedForQuestion(ctx context.Context, questionID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE answers SET is_accepted = false, updated_at = now()
		 WHERE question_id = $1 AND is_accepted`,
		questionID,
	)
	if err != nil {
		return 0, mapError(err, "question", questionID)
	}
	return int(tag.RowsAffected()), nil
}

// Vote increments the like or dislike counter.
func (r *Repo) Vote(ctx context.Context, id uuid.UUID, vote domain.VoteType) (*domain.Answer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	column := "like_count"
	if vote == domain.VoteDislike {
		column = "dislike_count"
	}

	a, err := scanAnswer(q.QueryRow(ctx,
		fmt.Sprintf(`UPDATE answers SET %s = %s + 1, updated_at = now()
			WHERE id = $1 RETURNING %s`, column, column, answerColumns),
		id,
	))
	if err != nil {
		return nil, mapError(err, "answer", id)
	}
	return a, nil
}

// AdjustCommentCount shifts the denormalized comment counter by delta.
func (r *Repo) AdjustCommentCount(ctx context.Context, id uuid.UUID, delta int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE answers SET comment_count = comment_count + $1 WHERE id = $2`,
		delta, id,
	)
	if err != nil {
		return mapError(err, "answer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("answer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an answer and decrements the question's answer counter.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var questionID uuid.UUID
	err := q.QueryRow(ctx, `DELETE FROM answers WHERE id = $1 RETURNING question_id`, id).Scan(&questionID)
	if err != nil {
		return mapError(err, "answer", id)
	}

	if _, err := q.Exec(ctx,
		`UPDATE questions SET answer_count = answer_count - 1 WHERE id = $1`,
		questionID,
	); err != nil {
		return mapError(err, "question", questionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning and error mapping
// ---------------------------------------------------------------------------

func scanAnswer(row pgx.Row) (*domain.Answer, error) {
	var a domain.Answer
	err := row.Scan(&a.ID, &a.QuestionID, &a.AuthorID, &a.Content, &a.IsAccepted,
		&a.LikeCount, &a.DislikeCount, &a.CommentCount, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
