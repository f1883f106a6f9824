package chat

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hub is the realtime session registry. It tracks which live connections are
// listening to which circle ids, independent of persisted membership. The hub
// is the only concurrently-mutated structure in the chat subsystem; every
// broadcast iterates over a snapshot so sessions added or removed mid-send are
// never observed in an inconsistent state.
type Hub struct {
	mu       sync.RWMutex
	sessions map[*Session]struct{}
}

// NewHub creates an empty session registry. The hub is injected into the
// websocket handler and the broadcaster; its lifecycle is tied to the server.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[*Session]struct{}),
	}
}

// Connect registers a new session for the given connection. userID may be
// empty when the client did not present an identity at connect time.
func (h *Hub) Connect(conn Conn, userID string) *Session {
	s := &Session{
		ID:     uuid.New().String(),
		UserID: userID,
		conn:   conn,
		joined: make(map[string]struct{}),
	}

	h.mu.Lock()
	h.sessions[s] = struct{}{}
	h.mu.Unlock()

	zap.S().Debugw("session connected", "sessionId", s.ID, "userId", userID)
	return s
}

// Subscribe adds circleID to the session's joined set. This is purely a
// broadcast-routing operation; no membership check is performed. Subscribing
// twice has the same effect as subscribing once, and subscribing a
// disconnected session is a no-op.
func (h *Hub) Subscribe(s *Session, circleID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s.closed {
		return
	}
	s.joined[circleID] = struct{}{}
}

// Unsubscribe removes circleID from the session's joined set. Unsubscribing
// from a circle the session never joined is a no-op.
func (h *Hub) Unsubscribe(s *Session, circleID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(s.joined, circleID)
}

// Disconnect removes the session and all its subscriptions and closes the
// underlying connection. Disconnect is terminal and idempotent; there are no
// persisted side effects.
func (h *Hub) Disconnect(s *Session) {
	h.mu.Lock()
	if s.closed {
		h.mu.Unlock()
		return
	}
	s.closed = true
	s.joined = make(map[string]struct{})
	delete(h.sessions, s)
	h.mu.Unlock()

	s.conn.Close()
	zap.S().Debugw("session disconnected", "sessionId", s.ID)
}

// Subscribers returns a snapshot of the sessions currently subscribed to
// circleID. The caller may iterate and write without holding the hub lock.
func (h *Hub) Subscribers(circleID string) []*Session {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var subs []*Session
	for s := range h.sessions {
		if s.subscribedTo(circleID) {
			subs = append(subs, s)
		}
	}
	return subs
}

// Joined returns the circle ids the session is currently subscribed to.
func (h *Hub) Joined(s *Session) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	circles := make([]string, 0, len(s.joined))
	for id := range s.joined {
		circles = append(circles, id)
	}
	return circles
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
