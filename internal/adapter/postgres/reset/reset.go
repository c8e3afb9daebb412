package reset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainuser "github.com/avelar/taskhub/internal/domain/user"
	portreset "github.com/avelar/taskhub/internal/port/reset"
)

var _ portreset.Repository = (*Repository)(nil)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, t domainuser.ResetToken) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO password_resets (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)`,
		t.Token, t.UserID, t.ExpiresAt, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting reset token: %w", err)
	}
	return nil
}

func (r *Repository) LatestByUser(ctx context.Context, userID uuid.UUID) (domainuser.ResetToken, error) {
	var t domainuser.ResetToken
	err := r.pool.QueryRow(ctx, `
		SELECT token, user_id, expires_at, created_at
		FROM password_resets
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		userID,
	).Scan(&t.Token, &t.UserID, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainuser.ResetToken{}, domainuser.ErrNotFound
		}
		return domainuser.ResetToken{}, fmt.Errorf("querying reset token: %w", err)
	}
	return t, nil
}

func (r *Repository) FindValid(ctx context.Context, token uuid.UUID, now time.Time) (domainuser.ResetToken, error) {
	var t domainuser.ResetToken
	err := r.pool.QueryRow(ctx, `
		SELECT token, user_id, expires_at, created_at
		FROM password_resets
		WHERE token = $1 AND expires_at > $2`,
		token, now,
	).Scan(&t.Token, &t.UserID, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainuser.ResetToken{}, domainuser.ErrNotFound
		}
		return domainuser.ResetToken{}, fmt.Errorf("querying reset token: %w", err)
	}
	return t, nil
}

func (r *Repository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM password_resets WHERE user_id = $1`, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting reset tokens: %w", err)
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM password_resets WHERE expires_at <= $1`, now,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting expired reset tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
