package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mindspacehq/mindspace-api/models"
)

// ErrUnknownUser is returned by a NameResolver when no user exists for the
// given id. The broadcaster substitutes a placeholder name instead of
// dropping the message.
var ErrUnknownUser = errors.New("chat: unknown user")

// UnknownSenderName is the display name used when the sender cannot be resolved
const UnknownSenderName = "Unknown User"

// NameResolver resolves a user id to a display name. Implementations should
// return ErrUnknownUser when the user does not exist; any other error aborts
// the in-flight send.
type NameResolver interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// CircleStore is the slice of the circle store the broadcaster needs: message
// persistence and the optional membership gate.
type CircleStore interface {
	AppendMessage(ctx context.Context, circleID string, msg models.Message) error
	IsMember(ctx context.Context, circleID string, userID string) (bool, error)
}

// BroadcasterConfig makes the two historically ambiguous behaviors explicit
// policy instead of accidents: whether chat history is durable, and whether
// senders must be circle members.
type BroadcasterConfig struct {
	// Persist appends each broadcast message to the circle document. An
	// append failure is logged and does not stop the broadcast.
	Persist bool
	// RequireMembership drops sends from users not in the circle's member
	// list. Off by default to match observed behavior.
	RequireMembership bool
}

// Broadcaster validates, timestamps, enriches and fans out chat messages to
// every session subscribed to a circle. Delivery is fire-and-forget: the
// sender gets no acknowledgment and failed deliveries only evict the broken
// session.
type Broadcaster struct {
	hub   *Hub
	names NameResolver
	store CircleStore
	cfg   BroadcasterConfig
	now   func() time.Time
}

// NewBroadcaster wires the broadcaster to the session registry and its
// collaborators.
func NewBroadcaster(hub *Hub, names NameResolver, store CircleStore, cfg BroadcasterConfig) *Broadcaster {
	return &Broadcaster{
		hub:   hub,
		names: names,
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Send broadcasts one message to every session currently subscribed to
// circleID. Empty or whitespace-only text is rejected silently. The
// timestamp is assigned here, on the server, so ordering does not depend on
// per-client clocks. Sessions that subscribe after this call returns do not
// receive the message.
func (b *Broadcaster) Send(ctx context.Context, circleID, senderID, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	if b.cfg.RequireMembership {
		ok, err := b.store.IsMember(ctx, circleID, senderID)
		if err != nil {
			zap.S().Errorw("membership check failed, dropping message",
				"circleId", circleID, "senderId", senderID, "error", err)
			return
		}
		if !ok {
			zap.S().Debugw("sender is not a member, dropping message",
				"circleId", circleID, "senderId", senderID)
			return
		}
	}

	senderName, err := b.names.DisplayName(ctx, senderID)
	if errors.Is(err, ErrUnknownUser) {
		senderName = UnknownSenderName
	} else if err != nil {
		zap.S().Errorw("display name lookup failed, abandoning broadcast",
			"circleId", circleID, "senderId", senderID, "error", err)
		return
	}

	createdAt := b.now().UTC()

	if b.cfg.Persist {
		msg := models.Message{
			SenderID:  senderID,
			Text:      text,
			CreatedAt: primitive.NewDateTimeFromTime(createdAt),
		}
		if err := b.store.AppendMessage(ctx, circleID, msg); err != nil {
			// history is best effort, delivery is not
			zap.S().Errorw("failed to persist message",
				"circleId", circleID, "error", err)
		}
	}

	payload := ServerEvent{
		Event: EventNewMessage,
		Data: NewMessage{
			SenderID:   senderID,
			SenderName: senderName,
			Text:       text,
			CreatedAt:  createdAt,
		},
	}

	for _, s := range b.hub.Subscribers(circleID) {
		if err := s.conn.WriteJSON(payload); err != nil {
			zap.S().Warnw("failed to deliver message, evicting session",
				"sessionId", s.ID, "error", err)
			b.hub.Disconnect(s)
		}
	}
}
