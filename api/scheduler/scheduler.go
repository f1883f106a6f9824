package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mindspacehq/mindspace-api/databases"
	"github.com/mindspacehq/mindspace-api/models"
)

const insightWindowDays = 7

// Scheduler handles periodic background jobs for mood insights
type Scheduler struct {
	cron      *cron.Cron
	MoodDB    databases.MoodDatabase
	InsightDB databases.InsightDatabase
}

// New creates a new scheduler instance
func New(moodDB databases.MoodDatabase, insightDB databases.InsightDatabase) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		MoodDB:    moodDB,
		InsightDB: insightDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// snapshot per-user mood averages daily at 2 AM UTC
	_, err := s.cron.AddFunc("0 2 * * *", s.snapshotMoodInsights)
	if err != nil {
		zap.S().Errorw("failed to register mood insight job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("mood insight scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("mood insight scheduler stopped")
}

// snapshotMoodInsights aggregates each user's average mood over the insight
// window and stores one snapshot row per user
func (s *Scheduler) snapshotMoodInsights() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	windowStart := time.Now().UTC().AddDate(0, 0, -insightWindowDays)

	pipeline := []bson.M{
		{"$match": bson.M{"date": bson.M{"$gte": primitive.NewDateTimeFromTime(windowStart)}}},
		{"$group": bson.M{
			"_id":         "$userId",
			"averageMood": bson.M{"$avg": "$mood"},
			"entryCount":  bson.M{"$sum": 1},
		}},
	}

	cursor, err := s.MoodDB.Aggregate(ctx, pipeline)
	if err != nil {
		zap.S().Errorw("failed to aggregate moods", "error", err)
		return
	}

	var rows []struct {
		UserID      string  `bson:"_id"`
		AverageMood float64 `bson:"averageMood"`
		EntryCount  int     `bson:"entryCount"`
	}
	if err := cursor.Decode(&rows); err != nil {
		zap.S().Errorw("failed to decode mood aggregates", "error", err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now().UTC())
	for _, row := range rows {
		insight := models.MoodInsight{
			ID:          primitive.NewObjectID(),
			UserID:      row.UserID,
			AverageMood: row.AverageMood,
			EntryCount:  row.EntryCount,
			WindowDays:  insightWindowDays,
			CreatedAt:   now,
		}
		if _, err := s.InsightDB.InsertOne(ctx, insight); err != nil {
			zap.S().Errorw("failed to store mood insight", "userId", row.UserID, "error", err)
		}
	}

	zap.S().Infow("mood insight snapshot complete", "users", len(rows))
}
