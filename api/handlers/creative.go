package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindspacehq/mindspace-api/config"
	"github.com/mindspacehq/mindspace-api/databases"
	"github.com/mindspacehq/mindspace-api/models"
)

// creativePrompts is the static prompt table keyed by mood
var creativePrompts = map[string]string{
	"happy":   "Write a joyful poem about your day.",
	"sad":     "Create comforting lyrics reflecting calmness.",
	"neutral": "Draw a simple sketch representing balance.",
}

// Creative struct mostly used for mocking tests
type Creative struct {
	DB databases.CreativeDatabase
}

// CreateCreativeContentHandler stores a creative therapy entry (text or link)
func (c Creative) CreateCreativeContentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CreativeContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		config.ErrorStatus("invalid creative content", http.StatusBadRequest, w, err)
		return
	}

	content := models.CreativeContent{
		ID:               primitive.NewObjectID(),
		UserID:           req.UserID,
		ContentType:      req.ContentType,
		ContentData:      req.ContentData,
		MoodAtSubmission: req.Mood,
		CreatedAt:        primitive.NewDateTimeFromTime(time.Now()),
	}

	if _, err := c.DB.InsertOne(context.Background(), content); err != nil {
		config.ErrorStatus("failed to save creative content", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(content)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// CreativeContentByUserIDHandler returns the user's creative entries, newest first
func (c Creative) CreativeContentByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	dbResp, err := c.DB.Find(context.Background(), bson.M{"userId": userID}, opts)
	if err != nil {
		config.ErrorStatus("failed to fetch creative content", http.StatusInternalServerError, w, err)
		return
	}
	if dbResp == nil {
		dbResp = []models.CreativeContent{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// PromptHandler returns a creative prompt for the given mood from the static
// table, falling back to the neutral prompt
func (c Creative) PromptHandler(w http.ResponseWriter, r *http.Request) {
	mood := r.URL.Query().Get("mood")
	prompt, ok := creativePrompts[mood]
	if !ok {
		prompt = creativePrompts["neutral"]
	}

	b, err := json.Marshal(models.PromptResponse{Prompt: prompt})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
