package chat

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Wire event names. Client events arrive as {"event": <name>, "data": {...}};
// the server emits the same envelope shape back.
const (
	EventJoinCircle    = "joinCircle"
	EventLeaveCircle   = "leaveCircle"
	EventCircleMessage = "supportCircleMessage"
	EventNewMessage    = "newMessage"
)

var validate = validator.New()

// ClientEvent is a tagged client-to-server event, validated at the boundary
// before it reaches the hub or broadcaster.
type ClientEvent interface {
	clientEvent()
}

// JoinCircle subscribes the session to a circle's broadcasts
type JoinCircle struct {
	CircleID string `json:"circleId" validate:"required"`
}

// LeaveCircle removes the session's subscription to a circle
type LeaveCircle struct {
	CircleID string `json:"circleId" validate:"required"`
}

// CircleMessage asks the server to broadcast a message into a circle
type CircleMessage struct {
	CircleID string `json:"circleId" validate:"required"`
	SenderID string `json:"senderId" validate:"required"`
	Text     string `json:"text"`
}

func (JoinCircle) clientEvent()    {}
func (LeaveCircle) clientEvent()   {}
func (CircleMessage) clientEvent() {}

// ServerEvent is the envelope for server-to-client events
type ServerEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// NewMessage is the outbound chat message envelope delivered to every
// subscribed session of a circle
type NewMessage struct {
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ParseClientEvent decodes and validates a raw client frame into its tagged
// variant. Unknown event names and frames missing required fields are
// rejected so loosely-shaped payloads never reach the core.
func ParseClientEvent(raw []byte) (ClientEvent, error) {
	var envelope struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("malformed client event: %w", err)
	}

	switch envelope.Event {
	case EventJoinCircle:
		var ev JoinCircle
		if err := decodeEventData(envelope.Data, &ev); err != nil {
			return nil, err
		}
		return ev, nil
	case EventLeaveCircle:
		var ev LeaveCircle
		if err := decodeEventData(envelope.Data, &ev); err != nil {
			return nil, err
		}
		return ev, nil
	case EventCircleMessage:
		var ev CircleMessage
		if err := decodeEventData(envelope.Data, &ev); err != nil {
			return nil, err
		}
		return ev, nil
	default:
		return nil, fmt.Errorf("unknown client event %q", envelope.Event)
	}
}

func decodeEventData(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return fmt.Errorf("client event has no data")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("malformed client event data: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid client event data: %w", err)
	}
	return nil
}
