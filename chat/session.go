package chat

// Conn is the transport side of a realtime session. The websocket handler
// provides an implementation that serializes writes; tests provide fakes.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Session is one live realtime connection and its current circle
// subscriptions. Sessions are ephemeral: created on connect, destroyed on
// disconnect, never persisted. All mutable state is owned by the Hub and
// guarded by its lock.
type Session struct {
	ID     string
	UserID string

	conn   Conn
	joined map[string]struct{}
	closed bool
}

// subscribedTo reports whether the session is currently subscribed to the
// circle. Only safe to call while holding the hub lock.
func (s *Session) subscribedTo(circleID string) bool {
	_, ok := s.joined[circleID]
	return ok
}
