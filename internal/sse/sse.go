// Package sse holds the in-process registry of open notification streams and
// the event-stream frame writer. It is a leaf package: the dispatcher and the
// HTTP transport both receive the registry by handle from the composition root.
package sse

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// Sender writes one already-serialised JSON payload as a single
// `data: <json>\n\n` frame and flushes it to the client.
type Sender interface {
	Send(payload []byte) error
}

// Stream adapts an http.ResponseWriter into a Sender. The mutex serialises the
// backlog write from the stream handler with live pushes from the dispatcher.
type Stream struct {
	mu sync.Mutex
	w  io.Writer
	f  http.Flusher
}

var errNoFlush = errors.New("response writer does not support flushing")

func NewStream(w http.ResponseWriter) (*Stream, error) {
	f, ok := w.(http.Flusher)
	if !ok {
		return nil, errNoFlush
	}
	return &Stream{w: w, f: f}, nil
}

func (s *Stream) Send(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		return err
	}
	s.f.Flush()
	return nil
}

// Entry pairs a registered user with their open stream.
type Entry struct {
	UserID uuid.UUID
	Sender
}

// Registry tracks which users currently hold an open notification stream,
// at most one per user. All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	streams map[uuid.UUID]Sender
}

func NewRegistry() *Registry {
	return &Registry{streams: make(map[uuid.UUID]Sender)}
}

// Register tracks s as the user's open stream. If the user already has one,
// the call is a silent no-op and the existing stream stays registered.
func (r *Registry) Register(userID uuid.UUID, s Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.streams[userID]; ok {
		return
	}
	r.streams[userID] = s
}

// Deregister removes the user's entry. Removing an absent entry is a no-op.
func (r *Registry) Deregister(userID uuid.UUID) {
	r.mu.Lock()
	delete(r.streams, userID)
	r.mu.Unlock()
}

// FindOpen returns the registered streams for the subset of userIDs that are
// currently connected. It never mutates the registry.
func (r *Registry) FindOpen(userIDs []uuid.UUID) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(userIDs))
	for _, id := range userIDs {
		if s, ok := r.streams[id]; ok {
			out = append(out, Entry{UserID: id, Sender: s})
		}
	}
	return out
}

// Len returns the number of open streams.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.streams)
}
