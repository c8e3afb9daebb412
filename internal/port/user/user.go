package user

import (
	"context"

	"github.com/google/uuid"

	domainuser "github.com/avelar/taskhub/internal/domain/user"
)

// Repository manages user persistence.
type Repository interface {
	Create(ctx context.Context, u domainuser.User) (domainuser.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainuser.User, error)
	GetByEmail(ctx context.Context, email string) (domainuser.User, error)

	// UpdateProfile writes name, email and avatar.
	UpdateProfile(ctx context.Context, u domainuser.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
