// Package notification implements the Notification repository using
// PostgreSQL. The per-user inbox is bounded: every insert trims the
// oldest rows beyond the configured cap, so the table never grows past
// cap rows per user.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ip9202/jeju-tourlist-sub007/internal/adapter/postgres"
	"github.com/ip9202/jeju-tourlist-sub007/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const notificationColumns = "id, user_id, message, points, read, created_at"

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	cap  int
}

// New creates a new notification repository. cap bounds each user's inbox.
func New(pool *pgxpool.Pool, cap int) *Repo {
	return &Repo{pool: pool, cap: cap}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns a user's notifications, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(notificationColumns).
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notification list: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// CountUnread returns the user's unread notification count.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT read`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a notification and evicts the oldest rows beyond the
// inbox cap for that user.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("notifications").
		Columns("id", "user_id", "message", "points", "created_at").
		Values(n.ID, n.UserID, n.Message, n.Points, n.CreatedAt).
		Suffix("RETURNING " + notificationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build notification insert: %w", err)
	}

	created, err := scanNotification(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "notification", n.ID)
	}

	// Evict oldest beyond cap. Read or unread, oldest goes first.
	if _, err := q.Exec(ctx,
		`DELETE FROM notifications WHERE id IN (
			SELECT id FROM notifications
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			OFFSET $2
		)`,
		n.UserID, r.cap,
	); err != nil {
		return nil, mapError(err, "notification", n.ID)
	}

	return created, nil
}

// MarkRead marks one notification as read. Marking an already-read
// notification is a no-op; the flag never goes back to unread.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return mapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every notification of a user as read and returns
// how many were flipped.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE notifications SET read = true WHERE user_id = $1 AND NOT read`,
		userID,
	)
	if err != nil {
		return 0, mapError(err, "notification", userID)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteAll clears a user's inbox and returns how many rows were removed.
func (r *Repo) DeleteAll(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM notifications WHERE user_id = $1`, userID)
	if err != nil {
		return 0, mapError(err, "notification", userID)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteReadOlderThan removes read notifications created before the
// cutoff, across all users. Used by the cleanup job.
func (r *Repo) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM notifications WHERE read AND created_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Scanning and error mapping
// ---------------------------------------------------------------------------

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Message, &n.Points, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
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
