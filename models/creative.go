package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreativeContent holds the structure for the creativeContents collection in mongo
type CreativeContent struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id"`
	UserID           string             `json:"userId" bson:"userId"`
	ContentType      string             `json:"contentType" bson:"contentType"`
	ContentData      string             `json:"contentData" bson:"contentData"`
	MoodAtSubmission string             `json:"moodAtSubmission,omitempty" bson:"moodAtSubmission,omitempty"`
	CreatedAt        primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// CreativeContentRequest holds the request body for submitting creative content
type CreativeContentRequest struct {
	UserID      string `json:"userId" validate:"required"`
	ContentType string `json:"contentType" validate:"required,oneof=poetry art music"`
	ContentData string `json:"contentData" validate:"required"`
	Mood        string `json:"mood"`
}

// PromptResponse is returned by the creative prompt endpoint
type PromptResponse struct {
	Prompt string `json:"prompt"`
}
