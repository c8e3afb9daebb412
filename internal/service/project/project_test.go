package project_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainnotif "github.com/avelar/taskhub/internal/domain/notification"
	domainproject "github.com/avelar/taskhub/internal/domain/project"
	domainuser "github.com/avelar/taskhub/internal/domain/user"
	"github.com/avelar/taskhub/internal/mocks"
	"github.com/avelar/taskhub/internal/service/project"
)

type fixture struct {
	repo       *mocks.MockProjectRepository
	users      *mocks.MockUserRepository
	tasks      *mocks.MockTaskRepository
	dispatcher *mocks.MockDispatcher
	svc        *project.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:       mocks.NewMockProjectRepository(ctrl),
		users:      mocks.NewMockUserRepository(ctrl),
		tasks:      mocks.NewMockTaskRepository(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
	}
	f.svc = project.NewService(f.repo, f.users, f.tasks, f.dispatcher)
	return f
}

func TestRenameNotifiesOtherMembers(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()
	actor := uuid.New()
	other := uuid.New()

	f.repo.EXPECT().GetByID(gomock.Any(), projectID).
		Return(domainproject.Project{ID: projectID, Name: "Apollo", OwnerID: actor}, nil)
	f.repo.EXPECT().Rename(gomock.Any(), projectID, "Artemis").Return(nil)
	f.repo.EXPECT().MemberIDs(gomock.Any(), projectID).Return([]uuid.UUID{actor, other}, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), []uuid.UUID{other},
		domainnotif.ProjectRenamed{OldName: "Apollo", NewName: "Artemis"}).Return(nil)

	require.NoError(t, f.svc.Rename(context.Background(), projectID, actor, "Artemis"))
}

func TestRenameSoleMemberDispatchesToNobody(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()
	actor := uuid.New()

	f.repo.EXPECT().GetByID(gomock.Any(), projectID).
		Return(domainproject.Project{ID: projectID, Name: "Apollo", OwnerID: actor}, nil)
	f.repo.EXPECT().Rename(gomock.Any(), projectID, "Artemis").Return(nil)
	f.repo.EXPECT().MemberIDs(gomock.Any(), projectID).Return([]uuid.UUID{actor}, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), []uuid.UUID{}, gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Rename(context.Background(), projectID, actor, "Artemis"))
}

func TestDeleteOrQuitAsOwnerDeletes(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()
	owner := uuid.New()
	member := uuid.New()

	f.repo.EXPECT().GetByID(gomock.Any(), projectID).
		Return(domainproject.Project{ID: projectID, Name: "Apollo", OwnerID: owner}, nil)
	// Recipients load before the delete cascades the membership rows away.
	f.repo.EXPECT().MemberIDs(gomock.Any(), projectID).Return([]uuid.UUID{owner, member}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), projectID).Return(nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), []uuid.UUID{member},
		domainnotif.ProjectDeleted{ProjectName: "Apollo"}).Return(nil)

	deleted, name, err := f.svc.DeleteOrQuit(context.Background(), projectID, owner)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "Apollo", name)
}

func TestDeleteOrQuitAsMemberQuits(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()
	owner := uuid.New()
	member := uuid.New()

	f.repo.EXPECT().GetByID(gomock.Any(), projectID).
		Return(domainproject.Project{ID: projectID, Name: "Apollo", OwnerID: owner}, nil)
	f.repo.EXPECT().RemoveMember(gomock.Any(), projectID, member).Return(nil)
	f.users.EXPECT().GetByID(gomock.Any(), member).
		Return(domainuser.User{ID: member, Name: "Bob"}, nil)
	f.repo.EXPECT().MemberIDs(gomock.Any(), projectID).Return([]uuid.UUID{owner}, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), []uuid.UUID{owner},
		domainnotif.MemberQuit{ProjectName: "Apollo", MemberName: "Bob"}).Return(nil)

	deleted, name, err := f.svc.DeleteOrQuit(context.Background(), projectID, member)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, "Apollo", name)
}

func TestAddMember(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()
	newMember := uuid.New()

	f.users.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").
		Return(domainuser.User{ID: newMember, Email: "bob@example.com"}, nil)
	f.repo.EXPECT().IsMember(gomock.Any(), projectID, newMember).Return(false, nil)
	f.repo.EXPECT().AddMember(gomock.Any(), projectID, newMember).Return(nil)
	f.repo.EXPECT().GetByID(gomock.Any(), projectID).
		Return(domainproject.Project{ID: projectID, Name: "Apollo"}, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), []uuid.UUID{newMember},
		domainnotif.AddedToProject{ProjectName: "Apollo"}).Return(nil)

	require.NoError(t, f.svc.AddMember(context.Background(), projectID, "bob@example.com"))
}

func TestAddMemberAlreadyMember(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()
	existing := uuid.New()

	f.users.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").
		Return(domainuser.User{ID: existing}, nil)
	f.repo.EXPECT().IsMember(gomock.Any(), projectID, existing).Return(true, nil)

	err := f.svc.AddMember(context.Background(), projectID, "bob@example.com")
	assert.ErrorIs(t, err, project.ErrAlreadyMember)
}

func TestRemoveMemberNotifiesRemovedUser(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()
	member := uuid.New()

	f.repo.EXPECT().RemoveMember(gomock.Any(), projectID, member).Return(nil)
	f.repo.EXPECT().GetByID(gomock.Any(), projectID).
		Return(domainproject.Project{ID: projectID, Name: "Apollo"}, nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), []uuid.UUID{member},
		domainnotif.KickedFromProject{ProjectName: "Apollo"}).Return(nil)

	require.NoError(t, f.svc.RemoveMember(context.Background(), projectID, member))
}

func TestIsOwner(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()
	owner := uuid.New()

	f.repo.EXPECT().GetByID(gomock.Any(), projectID).
		Return(domainproject.Project{ID: projectID, OwnerID: owner}, nil).Times(2)

	ok, err := f.svc.IsOwner(context.Background(), projectID, owner)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.IsOwner(context.Background(), projectID, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsOwnerMissingProject(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()

	f.repo.EXPECT().GetByID(gomock.Any(), projectID).
		Return(domainproject.Project{}, domainproject.ErrNotFound)

	ok, err := f.svc.IsOwner(context.Background(), projectID, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
