package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainuser "github.com/avelar/taskhub/internal/domain/user"
	portuser "github.com/avelar/taskhub/internal/port/user"
)

var _ portuser.Repository = (*Repository)(nil)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, u domainuser.User) (domainuser.User, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, password_hash, avatar, created_at`

	var created domainuser.User
	err := r.pool.QueryRow(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Avatar, u.CreatedAt,
	).Scan(
		&created.ID, &created.Name, &created.Email,
		&created.PasswordHash, &created.Avatar, &created.CreatedAt,
	)
	if err != nil {
		return domainuser.User{}, fmt.Errorf("inserting user: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainuser.User, error) {
	return r.get(ctx, `SELECT id, name, email, password_hash, avatar, created_at FROM users WHERE id = $1`, id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (domainuser.User, error) {
	return r.get(ctx, `SELECT id, name, email, password_hash, avatar, created_at FROM users WHERE email = $1`, email)
}

func (r *Repository) get(ctx context.Context, query string, arg interface{}) (domainuser.User, error) {
	var u domainuser.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Avatar, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainuser.User{}, domainuser.ErrNotFound
		}
		return domainuser.User{}, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, u domainuser.User) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET name = $2, email = $3, avatar = $4 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.Avatar,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainuser.ErrNotFound
	}
	return nil
}

func (r *Repository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainuser.ErrNotFound
	}
	return nil
}
