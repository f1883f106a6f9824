package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User holds the structure for the user collection in mongo
type User struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	Username        string             `json:"username" bson:"username"`
	Name            string             `json:"name,omitempty" bson:"name,omitempty"`
	Password        string             `json:"-" bson:"password"`
	RoadmapProgress []RoadmapProgress  `json:"roadmapProgress" bson:"roadmapProgress"`
	CreatedAt       primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// DisplayName returns the optional display name and falls back to the handle
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// RoadmapProgress holds a single per-user roadmap completion entry
type RoadmapProgress struct {
	StepID    primitive.ObjectID `json:"stepId" bson:"stepId"`
	Completed bool               `json:"completed" bson:"completed"`
}

// RegisterRequest holds the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful registration or token creation
type AuthResponse struct {
	Token    string `json:"token"`
	ID       string `json:"_id"`
	Username string `json:"username"`
}
