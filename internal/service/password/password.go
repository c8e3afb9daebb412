package password

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domainuser "github.com/avelar/taskhub/internal/domain/user"
	portmailer "github.com/avelar/taskhub/internal/port/mailer"
	portreset "github.com/avelar/taskhub/internal/port/reset"
	portuser "github.com/avelar/taskhub/internal/port/user"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrWrongPassword = errors.New("current password is incorrect")
)

// resetTTL is how long a reset token stays valid.
const resetTTL = time.Hour

type Service struct {
	users  portuser.Repository
	resets portreset.Repository
	mailer portmailer.Mailer
}

func NewService(users portuser.Repository, resets portreset.Repository, mailer portmailer.Mailer) *Service {
	return &Service{users: users, resets: resets, mailer: mailer}
}

// Forgot mints (or reuses) a reset token for the account and mails the reset
// link. It returns nil for unknown emails so the endpoint cannot be used to
// probe which addresses are registered. Mail delivery is best-effort.
func (s *Service) Forgot(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainuser.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	now := time.Now().UTC()
	token := uuid.Nil

	existing, err := s.resets.LatestByUser(ctx, u.ID)
	switch {
	case err == nil && !existing.Expired(now):
		token = existing.Token
	case err == nil || errors.Is(err, domainuser.ErrNotFound):
		if err := s.resets.DeleteByUser(ctx, u.ID); err != nil {
			return fmt.Errorf("purge reset tokens: %w", err)
		}
		token = uuid.New()
		if err := s.resets.Create(ctx, domainuser.ResetToken{
			Token:     token,
			UserID:    u.ID,
			ExpiresAt: now.Add(resetTTL),
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("create reset token: %w", err)
		}
	default:
		return fmt.Errorf("lookup reset token: %w", err)
	}

	if err := s.mailer.SendPasswordReset(ctx, email, token.String()); err != nil {
		slog.ErrorContext(ctx, "failed to send password reset email", "error", err)
	}
	return nil
}

// Reset sets a new password for the account that owns a valid token, then
// purges all of that account's reset tokens.
func (s *Service) Reset(ctx context.Context, token uuid.UUID, newPassword string) error {
	rt, err := s.resets.FindValid(ctx, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domainuser.ErrNotFound) {
			return ErrInvalidToken
		}
		return fmt.Errorf("lookup reset token: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, rt.UserID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if err := s.resets.DeleteByUser(ctx, rt.UserID); err != nil {
		return fmt.Errorf("purge reset tokens: %w", err)
	}
	return nil
}

// Change verifies the current password and replaces it.
func (s *Service) Change(ctx context.Context, userID uuid.UUID, current, newPassword string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
