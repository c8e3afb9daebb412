package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainproject "github.com/avelar/taskhub/internal/domain/project"
	domainuser "github.com/avelar/taskhub/internal/domain/user"
	"github.com/avelar/taskhub/internal/mocks"
	"github.com/avelar/taskhub/internal/service/user"
)

func strPtr(s string) *string { return &s }

func TestProfileNeverReturnsNilLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	projects := mocks.NewMockProjectRepository(ctrl)
	svc := user.NewService(users, projects)

	userID := uuid.New()
	users.EXPECT().GetByID(gomock.Any(), userID).
		Return(domainuser.User{ID: userID, Name: "Ana"}, nil)
	projects.EXPECT().ListForUser(gomock.Any(), userID).Return(nil, nil, nil)

	p, err := svc.Profile(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, p.TeamProjects)
	assert.NotNil(t, p.PersonalProjects)
	assert.Empty(t, p.TeamProjects)
}

func TestProfileSplitsProjectLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	projects := mocks.NewMockProjectRepository(ctrl)
	svc := user.NewService(users, projects)

	userID := uuid.New()
	team := []domainproject.Summary{{ID: uuid.New(), Name: "Apollo"}}
	personal := []domainproject.Summary{{ID: uuid.New(), Name: "Inbox"}}
	users.EXPECT().GetByID(gomock.Any(), userID).
		Return(domainuser.User{ID: userID}, nil)
	projects.EXPECT().ListForUser(gomock.Any(), userID).Return(team, personal, nil)

	p, err := svc.Profile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, team, p.TeamProjects)
	assert.Equal(t, personal, p.PersonalProjects)
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := user.NewService(users, mocks.NewMockProjectRepository(ctrl))

	userID := uuid.New()
	users.EXPECT().GetByID(gomock.Any(), userID).
		Return(domainuser.User{ID: userID, Email: "ana@example.com"}, nil)
	users.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").
		Return(domainuser.User{ID: uuid.New()}, nil)

	err := svc.UpdateProfile(context.Background(), userID, user.ProfileUpdate{Email: strPtr("bob@example.com")})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestUpdateProfileKeepingOwnEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := user.NewService(users, mocks.NewMockProjectRepository(ctrl))

	userID := uuid.New()
	users.EXPECT().GetByID(gomock.Any(), userID).
		Return(domainuser.User{ID: userID, Name: "Ana", Email: "ana@example.com"}, nil)
	// Re-submitting the current email must not trip the uniqueness check.
	users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u domainuser.User) error {
			assert.Equal(t, "Ana Maria", u.Name)
			assert.Equal(t, "ana@example.com", u.Email)
			return nil
		})

	err := svc.UpdateProfile(context.Background(), userID, user.ProfileUpdate{
		Name:  strPtr("Ana Maria"),
		Email: strPtr("ana@example.com"),
	})
	require.NoError(t, err)
}

func TestUpdateProfileDeleteAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	svc := user.NewService(users, mocks.NewMockProjectRepository(ctrl))

	userID := uuid.New()
	users.EXPECT().GetByID(gomock.Any(), userID).
		Return(domainuser.User{ID: userID, Avatar: "https://cdn.example.com/a.png"}, nil)
	users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u domainuser.User) error {
			assert.Empty(t, u.Avatar)
			return nil
		})

	require.NoError(t, svc.UpdateProfile(context.Background(), userID, user.ProfileUpdate{DeleteAvatar: true}))
}
