package databases

// go generate: mockery --name RoadmapStepDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindspacehq/mindspace-api/models"
)

const roadmapStepCollectionName = "roadmapSteps"

// RoadmapStepDatabase contains the methods to use with the roadmap step database
type RoadmapStepDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.RoadmapStep, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertMany(ctx context.Context, steps []interface{}) error
}

type roadmapStepDatabase struct {
	db DatabaseHelper
}

// NewRoadmapStepDatabase initializes a new instance of roadmap step database with the provided db connection
func NewRoadmapStepDatabase(db DatabaseHelper) RoadmapStepDatabase {
	return &roadmapStepDatabase{
		db: db,
	}
}

func (r *roadmapStepDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.RoadmapStep, error) {
	var steps []models.RoadmapStep
	err := r.db.Collection(roadmapStepCollectionName).Find(ctx, filter, opts...).Decode(&steps)
	if err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *roadmapStepDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return r.db.Collection(roadmapStepCollectionName).CountDocuments(ctx, filter, opts...)
}

func (r *roadmapStepDatabase) InsertMany(ctx context.Context, steps []interface{}) error {
	return r.db.Collection(roadmapStepCollectionName).InsertMany(ctx, steps)
}
