package reset

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainuser "github.com/avelar/taskhub/internal/domain/user"
)

// Repository manages password reset tokens.
type Repository interface {
	Create(ctx context.Context, t domainuser.ResetToken) error
	// LatestByUser returns the user's most recent token, or ErrNotFound-style
	// error when none exists.
	LatestByUser(ctx context.Context, userID uuid.UUID) (domainuser.ResetToken, error)
	// FindValid returns the token when it exists and has not expired at `now`.
	FindValid(ctx context.Context, token uuid.UUID, now time.Time) (domainuser.ResetToken, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	// DeleteExpired removes every token that expired before `now` and reports
	// how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
