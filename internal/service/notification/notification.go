package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainnotif "github.com/avelar/taskhub/internal/domain/notification"
	"github.com/avelar/taskhub/internal/metrics"
	portnotif "github.com/avelar/taskhub/internal/port/notification"
	"github.com/avelar/taskhub/internal/sse"
)

// BacklogLimit is the number of notifications sent in the backlog frame
// when a stream opens.
const BacklogLimit = 75

// Streams locates open notification streams for a set of users.
// Satisfied by *sse.Registry.
type Streams interface {
	FindOpen(userIDs []uuid.UUID) []sse.Entry
}

// Service persists notifications and pushes them to connected recipients.
type Service struct {
	store   portnotif.Store
	streams Streams
}

func NewService(store portnotif.Store, streams Streams) *Service {
	return &Service{store: store, streams: streams}
}

// Dispatch renders the event, records the notification for every unique
// recipient, then pushes one frame to each recipient with an open stream.
// An empty recipient list is a deliberate no-op: nothing is persisted and
// nothing is pushed. A push failure on one stream never affects the others.
func (s *Service) Dispatch(ctx context.Context, recipientIDs []uuid.UUID, ev domainnotif.Event) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	title, description, err := domainnotif.Render(ev)
	if err != nil {
		return err
	}

	recipients := domainnotif.Recipients(recipientIDs)
	created, err := s.store.Create(ctx, title, description, recipients)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	metrics.NotificationsDispatched.Inc()

	payload, err := json.Marshal(domainnotif.Item{
		Title:       created.Title,
		Description: created.Description,
		CreatedAt:   created.CreatedAt,
		Seen:        false,
	})
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	for _, entry := range s.streams.FindOpen(recipients) {
		if err := entry.Send(payload); err != nil {
			metrics.NotificationPushFailures.Inc()
			slog.WarnContext(ctx, "notification push failed", "user_id", entry.UserID, "error", err)
		}
	}
	return nil
}

// Backlog loads the user's most recent notifications, newest first.
// The result is never nil so an empty backlog serialises as [].
func (s *Service) Backlog(ctx context.Context, userID uuid.UUID) ([]domainnotif.Item, error) {
	items, err := s.store.ListRecent(ctx, userID, BacklogLimit)
	if err != nil {
		return nil, fmt.Errorf("load notification backlog: %w", err)
	}
	if items == nil {
		items = []domainnotif.Item{}
	}
	return items, nil
}

// MarkAllSeen flips every unseen notification for the user in one batch.
func (s *Service) MarkAllSeen(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.MarkAllSeen(ctx, userID); err != nil {
		return fmt.Errorf("mark notifications seen: %w", err)
	}
	return nil
}
