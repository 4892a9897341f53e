// Package badge implements the Badge repository using PostgreSQL.
package badge

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

const badgeColumns = "id, code, name, required_answers, required_adopt_rate, active, created_at"

// Repo provides badge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new badge repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListActive returns every active badge definition.
func (r *Repo) ListActive(ctx context.Context) ([]*domain.Badge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(badgeColumns).
		From("badges").
		Where(sq.Eq{"active": true}).
		OrderBy("required_answers ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build badge list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	defer rows.Close()

	var badges []*domain.Badge
	for rows.Next() {
		b, err := scanBadge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}

	return badges, nil
}

// ListByUser returns the badges a user has earned, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Badge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("b.id, b.code, b.name, b.required_answers, b.required_adopt_rate, b.active, b.created_at").
		From("user_badges ub").
		Join("badges b ON b.id = ub.badge_id").
		Where(sq.Eq{"ub.user_id": userID}).
		OrderBy("ub.awarded_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user badge list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list user badges: %w", err)
	}
	defer rows.Close()

	var badges []*domain.Badge
	for rows.Next() {
		b, err := scanBadge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list user badges: %w", err)
	}

	return badges, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Award records a badge for a user. Awarding the same badge twice is a
// no-op; the first award's timestamp is kept. Returns true when a new
// award row was written.
func (r *Repo) Award(ctx context.Context, userID, badgeID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`INSERT INTO user_badges (user_id, badge_id, awarded_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id, badge_id) DO NOTHING`,
		userID, badgeID,
	)
	if err != nil {
		return false, mapError(err, "badge", badgeID)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Scanning and error mapping
// ---------------------------------------------------------------------------

func scanBadge(row pgx.Row) (*domain.Badge, error) {
	var b domain.Badge
	err := row.Scan(&b.ID, &b.Code, &b.Name, &b.RequiredAnswers, &b.RequiredAdoptRate, &b.Active, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
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
