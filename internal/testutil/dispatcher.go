//go:build integration

package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domainnotif "github.com/avelar/taskhub/internal/domain/notification"
)

// DispatchCall records a single event delivered through CaptureDispatcher.
type DispatchCall struct {
	Recipients []uuid.UUID
	Event      domainnotif.Event
}

// CaptureDispatcher is a test double for the notification dispatcher. It
// records every call with a mutex so it is safe for concurrent use.
type CaptureDispatcher struct {
	mu    sync.Mutex
	Calls []DispatchCall
}

func (c *CaptureDispatcher) Dispatch(_ context.Context, recipientIDs []uuid.UUID, ev domainnotif.Event) error {
	c.mu.Lock()
	c.Calls = append(c.Calls, DispatchCall{Recipients: recipientIDs, Event: ev})
	c.mu.Unlock()
	return nil
}

// For returns all calls that include the given recipient.
func (c *CaptureDispatcher) For(userID uuid.UUID) []DispatchCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []DispatchCall
	for _, call := range c.Calls {
		for _, id := range call.Recipients {
			if id == userID {
				out = append(out, call)
				break
			}
		}
	}
	return out
}

// Reset clears all recorded calls.
func (c *CaptureDispatcher) Reset() {
	c.mu.Lock()
	c.Calls = nil
	c.mu.Unlock()
}
