package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindspacehq/mindspace-api/config"
	"github.com/mindspacehq/mindspace-api/databases"
	"github.com/mindspacehq/mindspace-api/models"
)

// defaultRoadmapSteps is the fixed self-care roadmap seeded on first start
var defaultRoadmapSteps = []string{
	"Daily mindfulness meditation",
	"Reflect weekly in journal",
	"Join Support Circle group",
	"Attend local wellness event",
	"Practice deep breathing",
	"Read a mental health article",
	"Talk to a supportive friend",
	"Try a creative therapy activity",
	"Set one self-care goal",
	"Track your mood for a week",
}

// Roadmap struct mostly used for mocking tests
type Roadmap struct {
	DB  databases.RoadmapStepDatabase
	UDB databases.UserDatabase
}

// SeedRoadmapSteps inserts the fixed roadmap steps if the collection is empty
func SeedRoadmapSteps(ctx context.Context, db databases.RoadmapStepDatabase) error {
	count, err := db.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	steps := lo.Map(defaultRoadmapSteps, func(step string, _ int) interface{} {
		return models.RoadmapStep{ID: primitive.NewObjectID(), Step: step}
	})
	return db.InsertMany(ctx, steps)
}

// RoadmapHandler returns all roadmap steps merged with the user's completion
// status. Completion lives on the user document, never on the shared steps.
func (rm Roadmap) RoadmapHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	steps, err := rm.DB.Find(context.Background(), bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get roadmap steps", http.StatusInternalServerError, w, err)
		return
	}

	user, err := rm.UDB.FindOne(context.Background(), bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user by ID", http.StatusNotFound, w, err)
		return
	}

	merged := lo.Map(steps, func(step models.RoadmapStep, _ int) models.RoadmapStepView {
		progress, ok := lo.Find(user.RoadmapProgress, func(p models.RoadmapProgress) bool {
			return p.StepID == step.ID
		})
		return models.RoadmapStepView{
			ID:        step.ID.Hex(),
			Step:      step.Step,
			Completed: ok && progress.Completed,
		}
	})

	b, err := json.Marshal(merged)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateRoadmapStepHandler sets the completion flag for one roadmap step on
// the user's progress list, adding the entry if it does not exist yet
func (rm Roadmap) UpdateRoadmapStepHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	uID, err := primitive.ObjectIDFromHex(vars["user_id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}
	stepID, err := primitive.ObjectIDFromHex(vars["step_id"])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req models.RoadmapUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	user, err := rm.UDB.FindOne(context.Background(), bson.M{"_id": uID})
	if err != nil {
		config.ErrorStatus("failed to get user by ID", http.StatusNotFound, w, err)
		return
	}

	found := false
	for i := range user.RoadmapProgress {
		if user.RoadmapProgress[i].StepID == stepID {
			user.RoadmapProgress[i].Completed = req.Completed
			found = true
			break
		}
	}
	if !found {
		user.RoadmapProgress = append(user.RoadmapProgress, models.RoadmapProgress{
			StepID:    stepID,
			Completed: req.Completed,
		})
	}

	_, err = rm.UDB.UpdateOne(context.Background(),
		bson.M{"_id": uID},
		bson.M{"$set": bson.M{"roadmapProgress": user.RoadmapProgress}},
	)
	if err != nil {
		config.ErrorStatus("failed to update roadmap step", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]interface{}{
		"stepId":    stepID.Hex(),
		"completed": req.Completed,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
