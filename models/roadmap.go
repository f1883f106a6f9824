package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoadmapStep holds the structure for the roadmapSteps collection in mongo.
// Steps are global; completion state lives on the user document so that one
// user finishing a step never leaks into another user's roadmap.
type RoadmapStep struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id"`
	Step string             `json:"step" bson:"step"`
}

// RoadmapStepView is a roadmap step merged with the requesting user's
// completion status
type RoadmapStepView struct {
	ID        string `json:"_id"`
	Step      string `json:"step"`
	Completed bool   `json:"completed"`
}

// RoadmapUpdateRequest holds the request body for updating step completion
type RoadmapUpdateRequest struct {
	Completed bool `json:"completed"`
}
