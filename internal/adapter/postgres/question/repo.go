// Package question implements the Question repository using PostgreSQL.
package question

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

const questionColumns = "id, author_id, title, body, category, accepted_answer_id, answer_count, created_at, updated_at"

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a question by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns a question by primary key, locking its row for
// the duration of the surrounding transaction. Concurrent adoptions of the
// same question serialize on this lock.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(questionColumns).From("questions").Where(sq.Eq{"id": id})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build question query: %w", err)
	}

	question, err := scanQuestion(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "question", id)
	}
	return question, nil
}

// List returns questions ordered by created_at DESC with pagination,
// optionally filtered by category. Returns items and total count.
func (r *Repo) List(ctx context.Context, category string, limit, offset int) ([]*domain.Question, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countQuery := qb.Select("count(*)").From("questions")
	listQuery := qb.Select(questionColumns).From("questions")
	if category != "" {
		countQuery = countQuery.Where(sq.Eq{"category": category})
		listQuery = listQuery.Where(sq.Eq{"category": category})
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build question count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}

	sql, args, err = listQuery.
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build question list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []*domain.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}

	return questions, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new question and returns the persisted domain.Question.
func (r *Repo) Create(ctx context.Context, question *domain.Question) (*domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("questions").
		Columns("id", "author_id", "title", "body", "category", "created_at", "updated_at").
		Values(question.ID, question.AuthorID, question.Title, question.Body, question.Category,
			question.CreatedAt, question.UpdatedAt).
		Suffix("RETURNING " + questionColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build question insert: %w", err)
	}

	created, err := scanQuestion(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "question", question.ID)
	}
	return created, nil
}

// Update modifies title, body and category. Nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, title, body, category *string) (*domain.Question, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("questions").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if title != nil {
		update = update.Set("title", *title)
	}
	if body != nil {
		update = update.Set("body", *body)
	}
	if category != nil {
		update = update.Set("category", *category)
	}

	sql, args, err := update.Suffix("RETURNING " + questionColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build question update: %w", err)
	}

	question, err := scanQuestion(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "question", id)
	}
	return question, nil
}

// SetAcceptedAnswer sets or clears the accepted answer reference.
func (r *Repo) SetAcceptedAnswer(ctx context.Context, id uuid.UUID, answerID *uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE questions SET accepted_answer_id = $1, updated_at = now() WHERE id = $2`,
		answerID, id,
	)
	if err != nil {
		return mapError(err, "question", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a question. Answers and comments cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "question", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning and error mapping
// ---------------------------------------------------------------------------

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var q domain.Question
	err := row.Scan(&q.ID, &q.AuthorID, &q.Title, &q.Body, &q.Category,
		&q.AcceptedAnswerID, &q.AnswerCount, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
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
