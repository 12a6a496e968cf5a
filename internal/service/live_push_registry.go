package service

import (
	"sync"

	"github.com/google/uuid"
)

// PushEvent is one server-push message: an SSE "event: <Event>" line
// followed by "data: <json(Data)>". An empty Event renders as a bare
// "data:" line (the default unnamed data event).
type PushEvent struct {
	Event string
	Data  interface{}
}

type pushSubscriber struct {
	ch   chan PushEvent
	done chan struct{}
}

// pushRegistry is the in-memory live-session subscriber registry: a
// mutex-guarded map from session id to at most one subscriber handle. It
// is the only shared mutable state outside the store.
type pushRegistry struct {
	mu          sync.Mutex
	subscribers map[uuid.UUID]*pushSubscriber
}

func newPushRegistry() *pushRegistry {
	return &pushRegistry{
		subscribers: make(map[uuid.UUID]*pushSubscriber),
	}
}

// Subscribe registers the caller as the session's sole subscriber. A
// pre-existing subscriber for the same session is torn down first: its
// channel is closed and its done signal fired, so the earlier HTTP
// handler's goroutine unwinds.
func (r *pushRegistry) Subscribe(sessionId uuid.UUID) (*pushSubscriber, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.subscribers[sessionId]; ok {
		close(existing.done)
		close(existing.ch)
	}

	sub := &pushSubscriber{
		ch:   make(chan PushEvent, 16),
		done: make(chan struct{}),
	}
	r.subscribers[sessionId] = sub

	unsubscribe := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.subscribers[sessionId] == sub {
			delete(r.subscribers, sessionId)
		}
	}
	return sub, unsubscribe
}

// Publish delivers an event to the session's current subscriber, if any.
// A full buffer drops the event rather than blocking the writer — chunk
// ingestion must never stall waiting on a slow push reader.
func (r *pushRegistry) Publish(sessionId uuid.UUID, event PushEvent) {
	r.mu.Lock()
	sub, ok := r.subscribers[sessionId]
	r.mu.Unlock()
	if !ok {
		return
	}
	select {
	case sub.ch <- event:
	default:
	}
}

// CloseSession publishes a final event and tears down the subscriber.
func (r *pushRegistry) CloseSession(sessionId uuid.UUID, event PushEvent) {
	r.mu.Lock()
	sub, ok := r.subscribers[sessionId]
	if ok {
		delete(r.subscribers, sessionId)
	}
	r.mu.Unlock()
	if !ok {
		return
	}
	select {
	case sub.ch <- event:
	default:
	}
	close(sub.done)
	close(sub.ch)
}
