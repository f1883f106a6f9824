package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InsightReport is the 7-day mood report returned to the client. AverageMood
// comes from the latest nightly snapshot and is omitted when none exists yet.
type InsightReport struct {
	Summary        string   `json:"summary"`
	Suggestions    []string `json:"suggestions"`
	MoodGraphData  []int    `json:"moodGraphData"`
	MoodGraphDates []string `json:"moodGraphDates"`
	AverageMood    *float64 `json:"averageMood,omitempty"`
}

// MoodInsight holds a precomputed per-user mood aggregate in the moodInsights
// collection, written by the nightly scheduler job
type MoodInsight struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	UserID      string             `json:"userId" bson:"userId"`
	AverageMood float64            `json:"averageMood" bson:"averageMood"`
	EntryCount  int                `json:"entryCount" bson:"entryCount"`
	WindowDays  int                `json:"windowDays" bson:"windowDays"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
