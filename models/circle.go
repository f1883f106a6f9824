package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupportCircle holds the structure for the supportCircles collection in mongo
type SupportCircle struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Members   []string           `json:"members" bson:"members"`
	Messages  []Message          `json:"messages" bson:"messages"`
	IsPrivate bool               `json:"isPrivate" bson:"isPrivate"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// Message is a single chat message persisted inside a support circle document.
// Messages are append-only; ordering is the position in the slice, timestamps
// are assigned by the server at broadcast time.
type Message struct {
	SenderID  string             `json:"senderId" bson:"senderId"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// CircleSummary is the discovery view of a circle returned by the list endpoint
type CircleSummary struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
	IsPrivate   bool   `json:"isPrivate"`
}

// CreateCircleRequest holds the request body for creating a support circle
type CreateCircleRequest struct {
	Name      string `json:"name" validate:"required"`
	CreatorID string `json:"creatorId" validate:"required"`
	IsPrivate *bool  `json:"isPrivate"`
}

// CircleMemberRequest holds the request body for join/leave operations
type CircleMemberRequest struct {
	UserID string `json:"userId" validate:"required"`
}
