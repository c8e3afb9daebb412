package sse_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelar/taskhub/internal/sse"
)

type fakeSender struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (f *fakeSender) Send(p []byte) error {
	f.mu.Lock()
	f.payloads = append(f.payloads, p)
	f.mu.Unlock()
	return nil
}

func TestRegister_FirstConnectionWins(t *testing.T) {
	reg := sse.NewRegistry()
	userID := uuid.New()
	first, second := &fakeSender{}, &fakeSender{}

	reg.Register(userID, first)
	reg.Register(userID, second)

	assert.Equal(t, 1, reg.Len())

	open := reg.FindOpen([]uuid.UUID{userID})
	require.Len(t, open, 1)
	require.NoError(t, open[0].Send([]byte(`{}`)))
	assert.Len(t, first.payloads, 1)
	assert.Empty(t, second.payloads)
}

func TestDeregister_AbsentIsNoOp(t *testing.T) {
	reg := sse.NewRegistry()
	reg.Register(uuid.New(), &fakeSender{})

	reg.Deregister(uuid.New())
	assert.Equal(t, 1, reg.Len())
}

func TestDeregister_Idempotent(t *testing.T) {
	reg := sse.NewRegistry()
	userID := uuid.New()
	reg.Register(userID, &fakeSender{})

	reg.Deregister(userID)
	reg.Deregister(userID)
	assert.Equal(t, 0, reg.Len())
}

func TestFindOpen_ReturnsConnectedSubset(t *testing.T) {
	reg := sse.NewRegistry()
	connected, absent := uuid.New(), uuid.New()
	reg.Register(connected, &fakeSender{})

	open := reg.FindOpen([]uuid.UUID{connected, absent})
	require.Len(t, open, 1)
	assert.Equal(t, connected, open[0].UserID)
}

func TestFindOpen_DoesNotMutate(t *testing.T) {
	reg := sse.NewRegistry()
	userID := uuid.New()
	reg.Register(userID, &fakeSender{})

	reg.FindOpen([]uuid.UUID{userID})
	reg.FindOpen([]uuid.UUID{userID})
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := sse.NewRegistry()
	ids := make([]uuid.UUID, 32)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			reg.Register(id, &fakeSender{})
			reg.FindOpen(ids)
			reg.Deregister(id)
		}(id)
	}
	wg.Wait()
	assert.Equal(t, 0, reg.Len())
}

func TestStream_WritesFrameAndFlushes(t *testing.T) {
	rec := httptest.NewRecorder()
	stream, err := sse.NewStream(rec)
	require.NoError(t, err)

	require.NoError(t, stream.Send([]byte(`{"title":"P"}`)))

	assert.Equal(t, "data: {\"title\":\"P\"}\n\n", rec.Body.String())
	assert.True(t, rec.Flushed)
}

func TestNewStream_RequiresFlusher(t *testing.T) {
	_, err := sse.NewStream(nonFlushingWriter{})
	require.Error(t, err)
}

// nonFlushingWriter implements http.ResponseWriter but not http.Flusher.
type nonFlushingWriter struct{}

func (nonFlushingWriter) Header() http.Header         { return http.Header{} }
func (nonFlushingWriter) Write(b []byte) (int, error) { return len(b), nil }
func (nonFlushingWriter) WriteHeader(int)             {}
