package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/mindspacehq/mindspace-api/api"
	"github.com/mindspacehq/mindspace-api/chat"
	"github.com/mindspacehq/mindspace-api/databases"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust CORS as needed, e.g., check r.Header.Get("Origin")
	},
}

// Chat holds the realtime collaborators for the websocket endpoint
type Chat struct {
	Hub         *chat.Hub
	Broadcaster *chat.Broadcaster
}

// HandleChatWebSocket upgrades the connection and runs the session event loop
// until the client disconnects
func (h Chat) HandleChatWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}

	// identity rides on the login token as a query param; a session without
	// one stays unauthenticated until redesigned otherwise
	var userID string
	if token := r.URL.Query().Get("token"); token != "" {
		userID, err = api.UserIDFromToken(token)
		if err != nil {
			zap.S().Warnw("rejected websocket token", "error", err)
			conn.Close()
			return
		}
	}

	session := h.Hub.Connect(&wsConn{conn: conn}, userID)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}

		event, err := chat.ParseClientEvent(raw)
		if err != nil {
			zap.S().Debugw("dropping client event", "sessionId", session.ID, "error", err)
			continue
		}

		switch ev := event.(type) {
		case chat.JoinCircle:
			h.Hub.Subscribe(session, ev.CircleID)
		case chat.LeaveCircle:
			h.Hub.Unsubscribe(session, ev.CircleID)
		case chat.CircleMessage:
			h.Broadcaster.Send(r.Context(), ev.CircleID, ev.SenderID, ev.Text)
		}
	}

	h.Hub.Disconnect(session)
}

// wsConn adapts a gorilla connection to chat.Conn. Writes are serialized
// because broadcasts for different circles may target the same session
// concurrently.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// userNameResolver resolves sender display names against the user collection
type userNameResolver struct {
	DB databases.UserDatabase
}

func (u *userNameResolver) DisplayName(ctx context.Context, userID string) (string, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", chat.ErrUnknownUser
	}

	user, err := u.DB.FindOne(ctx, bson.M{"_id": uID})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", chat.ErrUnknownUser
	}
	if err != nil {
		return "", err
	}
	return user.DisplayName(), nil
}
