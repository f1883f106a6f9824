package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindspacehq/mindspace-api/config"
	"github.com/mindspacehq/mindspace-api/databases"
	"github.com/mindspacehq/mindspace-api/models"
)

// moodValues maps the named moods to their numeric scale
var moodValues = map[string]int{
	"happy":   5,
	"calm":    4,
	"neutral": 3,
	"angry":   2,
	"anxious": 2,
	"sad":     1,
}

// Mood struct mostly used for mocking tests
type Mood struct {
	DB databases.MoodDatabase
}

// CreateMoodHandler logs a mood entry, converting named moods to their
// numeric value. Unknown names log as zero.
func (m Mood) CreateMoodHandler(w http.ResponseWriter, r *http.Request) {
	var req models.MoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		config.ErrorStatus("userId and mood are required", http.StatusBadRequest, w, err)
		return
	}

	var moodValue int
	switch v := req.Mood.(type) {
	case string:
		moodValue = moodValues[strings.ToLower(v)]
	case float64:
		moodValue = int(v)
	}

	date := time.Now()
	if req.Date != "" {
		if parsed, err := time.Parse(time.RFC3339, req.Date); err == nil {
			date = parsed
		}
	}

	newMood := models.Mood{
		ID:     primitive.NewObjectID(),
		UserID: req.UserID,
		Mood:   moodValue,
		Date:   primitive.NewDateTimeFromTime(date),
	}

	if _, err := m.DB.InsertOne(context.Background(), newMood); err != nil {
		config.ErrorStatus("failed to add mood", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(newMood)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// MoodsByUserIDHandler returns the user's last 30 mood entries, newest first
func (m Mood) MoodsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	limit := int64(30)
	opts := options.Find().SetSort(bson.M{"date": -1}).SetLimit(limit)

	dbResp, err := m.DB.Find(context.Background(), bson.M{"userId": userID}, opts)
	if err != nil {
		config.ErrorStatus("failed to fetch moods", http.StatusInternalServerError, w, err)
		return
	}
	if dbResp == nil {
		dbResp = []models.Mood{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteMoodsByUserIDHandler deletes every mood entry for the user
func (m Mood) DeleteMoodsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	if err := m.DB.DeleteMany(context.Background(), bson.M{"userId": userID}); err != nil {
		config.ErrorStatus("failed to delete moods", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "All moods deleted"}`))
}
