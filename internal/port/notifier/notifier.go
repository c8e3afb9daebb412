package notifier

import (
	"context"

	"github.com/google/uuid"

	domainnotif "github.com/avelar/taskhub/internal/domain/notification"
)

// Dispatcher records a notification for a set of recipients and pushes it to
// whichever of them hold an open stream. Project and task services depend on
// this abstraction, not on the concrete dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, recipientIDs []uuid.UUID, ev domainnotif.Event) error
}
