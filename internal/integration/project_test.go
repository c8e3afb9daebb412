//go:build integration

package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgproject "github.com/avelar/taskhub/internal/adapter/postgres/project"
	pgtask "github.com/avelar/taskhub/internal/adapter/postgres/task"
	pguser "github.com/avelar/taskhub/internal/adapter/postgres/user"
	domainnotif "github.com/avelar/taskhub/internal/domain/notification"
	projectsvc "github.com/avelar/taskhub/internal/service/project"
	"github.com/avelar/taskhub/internal/testutil"
)

func TestMembershipChangesDispatchEvents(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()

	dispatcher := &testutil.CaptureDispatcher{}
	svc := projectsvc.NewService(pgproject.New(pool), pguser.New(pool), pgtask.New(pool), dispatcher)

	owner := newUser(t, pool, "erin")
	bob := newUser(t, pool, "bob")

	created, err := svc.Create(ctx, owner.ID, "Hermes", true)
	require.NoError(t, err)

	require.NoError(t, svc.AddMember(ctx, created.ID, bob.Email))

	calls := dispatcher.For(bob.ID)
	require.Len(t, calls, 1)
	assert.Equal(t, domainnotif.AddedToProject{ProjectName: "Hermes"}, calls[0].Event)

	// Rename goes to the other members, never back to the actor.
	dispatcher.Reset()
	require.NoError(t, svc.Rename(ctx, created.ID, owner.ID, "Hestia"))

	assert.Empty(t, dispatcher.For(owner.ID))
	calls = dispatcher.For(bob.ID)
	require.Len(t, calls, 1)
	assert.Equal(t, domainnotif.ProjectRenamed{OldName: "Hermes", NewName: "Hestia"}, calls[0].Event)
}
