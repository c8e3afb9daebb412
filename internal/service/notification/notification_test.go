package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainnotif "github.com/avelar/taskhub/internal/domain/notification"
	"github.com/avelar/taskhub/internal/mocks"
	notifsvc "github.com/avelar/taskhub/internal/service/notification"
	"github.com/avelar/taskhub/internal/sse"
)

type fakeStream struct {
	payloads [][]byte
	fail     bool
}

func (f *fakeStream) Send(p []byte) error {
	if f.fail {
		return errors.New("broken pipe")
	}
	f.payloads = append(f.payloads, p)
	return nil
}

func newDispatcher(t *testing.T) (*notifsvc.Service, *mocks.MockNotificationStore, *sse.Registry) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNotificationStore(ctrl)
	reg := sse.NewRegistry()
	return notifsvc.NewService(store, reg), store, reg
}

func TestDispatch_PersistsAndPushesToConnected(t *testing.T) {
	svc, store, reg := newDispatcher(t)
	userA, userB := uuid.New(), uuid.New()
	streamA := &fakeStream{}
	reg.Register(userA, streamA)

	created := domainnotif.Record{
		Title:       "Apollo",
		Description: "You have been added to project Apollo",
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	store.EXPECT().
		Create(gomock.Any(), "Apollo", "You have been added to project Apollo", []uuid.UUID{userA, userB}).
		Return(created, nil)

	err := svc.Dispatch(context.Background(), []uuid.UUID{userA, userB}, domainnotif.AddedToProject{ProjectName: "Apollo"})
	require.NoError(t, err)

	require.Len(t, streamA.payloads, 1)
	assert.JSONEq(t,
		`{"title":"Apollo","description":"You have been added to project Apollo","createdAt":"2026-03-01T12:00:00Z","seen":false}`,
		string(streamA.payloads[0]))
}

func TestDispatch_DeduplicatesRecipients(t *testing.T) {
	svc, store, _ := newDispatcher(t)
	userA := uuid.New()

	store.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), []uuid.UUID{userA}).
		Return(domainnotif.Record{}, nil)

	err := svc.Dispatch(context.Background(), []uuid.UUID{userA, userA, userA}, domainnotif.ProjectDeleted{ProjectName: "P"})
	require.NoError(t, err)
}

func TestDispatch_EmptyRecipientsSkipsEverything(t *testing.T) {
	svc, _, _ := newDispatcher(t)
	// No store expectations set; any call would fail the test.
	err := svc.Dispatch(context.Background(), nil, domainnotif.AddedToProject{ProjectName: "P"})
	require.NoError(t, err)
}

func TestDispatch_InvalidKindBeforePersistence(t *testing.T) {
	svc, _, _ := newDispatcher(t)
	err := svc.Dispatch(context.Background(), []uuid.UUID{uuid.New()}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainnotif.ErrInvalidKind)
}

func TestDispatch_TaskRenamedTemplate(t *testing.T) {
	svc, store, _ := newDispatcher(t)
	userA := uuid.New()

	store.EXPECT().
		Create(gomock.Any(), "P", "Task Old has been renamed to New", []uuid.UUID{userA}).
		Return(domainnotif.Record{Title: "P"}, nil)

	err := svc.Dispatch(context.Background(), []uuid.UUID{userA},
		domainnotif.TaskRenamed{ProjectName: "P", OldName: "Old", NewName: "New"})
	require.NoError(t, err)
}

func TestDispatch_StoreErrorPropagates(t *testing.T) {
	svc, store, _ := newDispatcher(t)
	store.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domainnotif.Record{}, errors.New("db down"))

	err := svc.Dispatch(context.Background(), []uuid.UUID{uuid.New()}, domainnotif.ProjectDeleted{ProjectName: "P"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create notification")
}

func TestDispatch_PushFailureIsIsolated(t *testing.T) {
	svc, store, reg := newDispatcher(t)
	broken, healthy := uuid.New(), uuid.New()
	brokenStream := &fakeStream{fail: true}
	healthyStream := &fakeStream{}
	reg.Register(broken, brokenStream)
	reg.Register(healthy, healthyStream)

	store.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domainnotif.Record{Title: "P"}, nil)

	err := svc.Dispatch(context.Background(), []uuid.UUID{broken, healthy}, domainnotif.ProjectDeleted{ProjectName: "P"})
	require.NoError(t, err)
	assert.Len(t, healthyStream.payloads, 1)
}

func TestDispatch_DisconnectedRecipientStillPersisted(t *testing.T) {
	svc, store, reg := newDispatcher(t)
	userA, userB := uuid.New(), uuid.New()
	streamA := &fakeStream{}
	reg.Register(userA, streamA)

	store.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), []uuid.UUID{userA, userB}).
		Return(domainnotif.Record{Title: "P"}, nil)

	err := svc.Dispatch(context.Background(), []uuid.UUID{userA, userB}, domainnotif.KickedFromProject{ProjectName: "P"})
	require.NoError(t, err)
	assert.Len(t, streamA.payloads, 1)
}

func TestBacklog_NeverNil(t *testing.T) {
	svc, store, _ := newDispatcher(t)
	userID := uuid.New()
	store.EXPECT().ListRecent(gomock.Any(), userID, notifsvc.BacklogLimit).Return(nil, nil)

	items, err := svc.Backlog(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMarkAllSeen_WrapsStoreError(t *testing.T) {
	svc, store, _ := newDispatcher(t)
	userID := uuid.New()
	store.EXPECT().MarkAllSeen(gomock.Any(), userID).Return(errors.New("db down"))

	err := svc.MarkAllSeen(context.Background(), userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mark notifications seen")
}
