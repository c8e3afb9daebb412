package password_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	domainuser "github.com/avelar/taskhub/internal/domain/user"
	"github.com/avelar/taskhub/internal/mocks"
	"github.com/avelar/taskhub/internal/service/password"
)

type fixture struct {
	users  *mocks.MockUserRepository
	resets *mocks.MockResetRepository
	mailer *mocks.MockMailer
	svc    *password.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		users:  mocks.NewMockUserRepository(ctrl),
		resets: mocks.NewMockResetRepository(ctrl),
		mailer: mocks.NewMockMailer(ctrl),
	}
	f.svc = password.NewService(f.users, f.resets, f.mailer)
	return f
}

func TestForgotMintsNewToken(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
		Return(domainuser.User{ID: userID, Email: "ana@example.com"}, nil)
	f.resets.EXPECT().LatestByUser(gomock.Any(), userID).
		Return(domainuser.ResetToken{}, domainuser.ErrNotFound)
	f.resets.EXPECT().DeleteByUser(gomock.Any(), userID).Return(nil)

	var minted uuid.UUID
	f.resets.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rt domainuser.ResetToken) error {
			assert.Equal(t, userID, rt.UserID)
			assert.True(t, rt.ExpiresAt.After(time.Now()))
			minted = rt.Token
			return nil
		})
	f.mailer.EXPECT().SendPasswordReset(gomock.Any(), "ana@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, token string) error {
			assert.Equal(t, minted.String(), token)
			return nil
		})

	require.NoError(t, f.svc.Forgot(context.Background(), "ana@example.com"))
}

func TestForgotReusesUnexpiredToken(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	existing := uuid.New()

	f.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
		Return(domainuser.User{ID: userID, Email: "ana@example.com"}, nil)
	f.resets.EXPECT().LatestByUser(gomock.Any(), userID).
		Return(domainuser.ResetToken{
			Token:     existing,
			UserID:    userID,
			ExpiresAt: time.Now().UTC().Add(30 * time.Minute),
		}, nil)
	// No Create expectation: the live token is reused as-is.
	f.mailer.EXPECT().SendPasswordReset(gomock.Any(), "ana@example.com", existing.String()).Return(nil)

	require.NoError(t, f.svc.Forgot(context.Background(), "ana@example.com"))
}

func TestForgotReplacesExpiredToken(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	stale := uuid.New()

	f.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
		Return(domainuser.User{ID: userID, Email: "ana@example.com"}, nil)
	f.resets.EXPECT().LatestByUser(gomock.Any(), userID).
		Return(domainuser.ResetToken{
			Token:     stale,
			UserID:    userID,
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
		}, nil)
	f.resets.EXPECT().DeleteByUser(gomock.Any(), userID).Return(nil)
	f.resets.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rt domainuser.ResetToken) error {
			assert.NotEqual(t, stale, rt.Token)
			return nil
		})
	f.mailer.EXPECT().SendPasswordReset(gomock.Any(), "ana@example.com", gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Forgot(context.Background(), "ana@example.com"))
}

func TestForgotUnknownEmailIsSilent(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").
		Return(domainuser.User{}, domainuser.ErrNotFound)

	// No token is minted and no mail goes out, but the caller sees success.
	require.NoError(t, f.svc.Forgot(context.Background(), "ghost@example.com"))
}

func TestForgotMailFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	f.users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
		Return(domainuser.User{ID: userID, Email: "ana@example.com"}, nil)
	f.resets.EXPECT().LatestByUser(gomock.Any(), userID).
		Return(domainuser.ResetToken{}, domainuser.ErrNotFound)
	f.resets.EXPECT().DeleteByUser(gomock.Any(), userID).Return(nil)
	f.resets.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.mailer.EXPECT().SendPasswordReset(gomock.Any(), "ana@example.com", gomock.Any()).
		Return(errors.New("smtp unreachable"))

	require.NoError(t, f.svc.Forgot(context.Background(), "ana@example.com"))
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	token := uuid.New()

	f.resets.EXPECT().FindValid(gomock.Any(), token, gomock.Any()).
		Return(domainuser.ResetToken{Token: token, UserID: userID}, nil)
	f.users.EXPECT().UpdatePassword(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-secret")))
			return nil
		})
	f.resets.EXPECT().DeleteByUser(gomock.Any(), userID).Return(nil)

	require.NoError(t, f.svc.Reset(context.Background(), token, "new-secret"))
}

func TestResetInvalidToken(t *testing.T) {
	f := newFixture(t)

	f.resets.EXPECT().FindValid(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domainuser.ResetToken{}, domainuser.ErrNotFound)

	err := f.svc.Reset(context.Background(), uuid.New(), "new-secret")
	assert.ErrorIs(t, err, password.ErrInvalidToken)
}

func TestChange(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("old-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.EXPECT().GetByID(gomock.Any(), userID).
		Return(domainuser.User{ID: userID, PasswordHash: string(hash)}, nil)
	f.users.EXPECT().UpdatePassword(gomock.Any(), userID, gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Change(context.Background(), userID, "old-secret", "new-secret"))
}

func TestChangeWrongCurrentPassword(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("old-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.EXPECT().GetByID(gomock.Any(), userID).
		Return(domainuser.User{ID: userID, PasswordHash: string(hash)}, nil)

	err = f.svc.Change(context.Background(), userID, "not-it", "new-secret")
	assert.ErrorIs(t, err, password.ErrWrongPassword)
}
