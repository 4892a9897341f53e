// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

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

const authMethodColumns = "id, user_id, method, provider_id, password_hash, created_at, updated_at"

// Repo provides auth method persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth method repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByOAuth returns the auth method for an OAuth provider identity.
func (r *Repo) GetByOAuth(ctx context.Context, method domain.AuthMethodType, providerID string) (*domain.AuthMethod, error) {
	return r.getBy(ctx, sq.Eq{"method": method.String(), "provider_id": providerID})
}

// GetByUserAndMethod returns a user's auth method of the given type.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	return r.getBy(ctx, sq.Eq{"user_id": userID, "method": method.String()})
}

func (r *Repo) getBy(ctx context.Context, pred sq.Eq) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(authMethodColumns).From("auth_methods").Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build auth method query: %w", err)
	}

	m, err := scanAuthMethod(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "auth_method", uuid.Nil)
	}
	return m, nil
}

// Create inserts a new auth method record.
func (r *Repo) Create(ctx context.Context, m *domain.AuthMethod) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("auth_methods").
		Columns("id", "user_id", "method", "provider_id", "password_hash", "created_at", "updated_at").
		Values(m.ID, m.UserID, m.Method.String(), m.ProviderID, m.PasswordHash, m.CreatedAt, m.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build auth method insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "auth_method", m.ID)
	}
	return nil
}

func scanAuthMethod(row pgx.Row) (*domain.AuthMethod, error) {
	var (
		m      domain.AuthMethod
		method string
	)
	err := row.Scan(&m.ID, &m.UserID, &method, &m.ProviderID, &m.PasswordHash, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Method = domain.AuthMethodType(method)
	return &m, nil
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
