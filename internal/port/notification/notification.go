package notification

import (
	"context"

	"github.com/google/uuid"

	domainnotif "github.com/avelar/taskhub/internal/domain/notification"
)

// Store persists notifications and their per-recipient seen state.
type Store interface {
	// Create inserts one notification row plus one join row per unique
	// recipient, atomically. Duplicate recipient IDs must not produce
	// duplicate join rows.
	Create(ctx context.Context, title, description string, recipientIDs []uuid.UUID) (domainnotif.Record, error)

	// ListRecent returns the user's most recent notifications, newest first,
	// each annotated with that user's seen flag.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domainnotif.Item, error)

	// MarkAllSeen flips seen to true for all of the user's unseen rows in one batch.
	MarkAllSeen(ctx context.Context, userID uuid.UUID) error
}
