package databases

// go generate: mockery --name InsightDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindspacehq/mindspace-api/models"
)

const insightCollectionName = "moodInsights"

// InsightDatabase contains the methods to use with the mood insight database
type InsightDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.MoodInsight, error)
	InsertOne(ctx context.Context, insight models.MoodInsight) (InsertOneResultHelper, error)
}

type insightDatabase struct {
	db DatabaseHelper
}

// NewInsightDatabase initializes a new instance of insight database with the provided db connection
func NewInsightDatabase(db DatabaseHelper) InsightDatabase {
	return &insightDatabase{
		db: db,
	}
}

func (i *insightDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.MoodInsight, error) {
	insight := &models.MoodInsight{}
	err := i.db.Collection(insightCollectionName).FindOne(ctx, filter, opts...).Decode(&insight)
	if err != nil {
		return nil, err
	}
	return insight, nil
}

func (i *insightDatabase) InsertOne(ctx context.Context, insight models.MoodInsight) (InsertOneResultHelper, error) {
	return i.db.Collection(insightCollectionName).InsertOne(ctx, insight)
}
