package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood holds the structure for the moods collection in mongo
type Mood struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id"`
	UserID string             `json:"userId" bson:"userId"`
	Mood   int                `json:"mood" bson:"mood"`
	Date   primitive.DateTime `json:"date" bson:"date"`
}

// MoodRequest holds the request body for logging a mood. Mood accepts either a
// numeric value or one of the named moods (happy, calm, neutral, angry,
// anxious, sad).
type MoodRequest struct {
	UserID string      `json:"userId" validate:"required"`
	Mood   interface{} `json:"mood" validate:"required"`
	Date   string      `json:"date"`
}
