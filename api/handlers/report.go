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
	"go.uber.org/zap"

	"github.com/mindspacehq/mindspace-api/config"
	"github.com/mindspacehq/mindspace-api/databases"
	"github.com/mindspacehq/mindspace-api/models"
)

// Report struct mostly used for mocking tests
type Report struct {
	DB  databases.MoodDatabase
	IDB databases.InsightDatabase
}

// InsightReportHandler builds the 7-day mood report for a user. Days without
// an entry chart as zero.
func (rep Report) InsightReportHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	// start of the 7-day window at UTC midnight
	now := time.Now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -6)

	dbResp, err := rep.DB.Find(context.Background(), bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": primitive.NewDateTimeFromTime(windowStart)},
	})
	if err != nil {
		config.ErrorStatus("failed to fetch moods for report", http.StatusInternalServerError, w, err)
		return
	}

	moodByDate := make(map[string]int)
	for _, m := range dbResp {
		key := m.Date.Time().UTC().Format("2006-01-02")
		moodByDate[key] = m.Mood
	}

	graphData := make([]int, 0, 7)
	graphDates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		key := windowStart.AddDate(0, 0, i).Format("2006-01-02")
		graphDates = append(graphDates, key)
		graphData = append(graphData, moodByDate[key])
	}

	// the nightly job precomputes the weekly average; a missing snapshot just
	// leaves the field out of the report
	var avg *float64
	insight, err := rep.IDB.FindOne(context.Background(),
		bson.M{"userId": userID},
		options.FindOne().SetSort(bson.M{"createdAt": -1}),
	)
	if err == nil {
		avg = &insight.AverageMood
	} else {
		zap.S().Debugw("no mood insight snapshot for report", "userId", userID, "error", err)
	}

	report := models.InsightReport{
		Summary: "Your mood has been generally stable with occasional highs and lows.",
		Suggestions: []string{
			"Practice deep breathing exercises during anxious moments.",
			"Maintain gratitude journal daily.",
			"Continue attending support group chats.",
		},
		MoodGraphData:  graphData,
		MoodGraphDates: graphDates,
		AverageMood:    avg,
	}

	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
