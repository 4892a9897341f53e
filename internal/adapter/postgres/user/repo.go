// Package user implements the User repository using PostgreSQL.
package user

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

const userColumns = "id, email, username, nickname, avatar_url, role, points, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"email": email}, uuid.Nil)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"username": username}, uuid.Nil)
}

func (r *Repo) getBy(ctx context.Context, pred sq.Eq, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(userColumns).From("users").Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "user", id)
	}
	return u, nil
}

// EmailExists reports whether a user with the given email is registered.
// Backs the signup form's availability check.
func (r *Repo) EmailExists(ctx context.Context, email string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

// GetAnswerStats returns the user's total and adopted answer counts.
func (r *Repo) GetAnswerStats(ctx context.Context, userID uuid.UUID) (domain.AnswerStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var stats domain.AnswerStats
	err := q.QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE is_accepted)
		 FROM answers WHERE author_id = $1`,
		userID,
	).Scan(&stats.TotalAnswers, &stats.AdoptedAnswers)
	if err != nil {
		return domain.AnswerStats{}, fmt.Errorf("answer stats for user %s: %w", userID, err)
	}
	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("users").
		Columns("id", "email", "username", "nickname", "avatar_url", "role", "created_at", "updated_at").
		Values(u.ID, u.Email, u.Username, u.Nickname, u.AvatarURL, u.Role.String(), u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	created, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "user", u.ID)
	}
	return created, nil
}

// Update modifies nickname and avatar_url for the given user.
// Nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, nickname *string, avatarURL *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("users").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})
	if nickname != nil {
		update = update.Set("nickname", *nickname)
	}
	if avatarURL != nil {
		update = update.Set("avatar_url", *avatarURL)
	}

	sql, args, err := update.Suffix("RETURNING " + userColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "user", id)
	}
	return u, nil
}

// AddPoints increments the user's point total. amount must be positive;
// points never decrease automatically.
func (r *Repo) AddPoints(ctx context.Context, id uuid.UUID, amount int) error {
	if amount <= 0 {
		return domain.NewValidationError("amount", "must be positive")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `UPDATE users SET points = points + $1, updated_at = now() WHERE id = $2`, amount, id)
	if err != nil {
		return mapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning and error mapping
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Nickname, &u.AvatarURL, &role, &u.Points, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
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
