package databases

// go generate: mockery --name MoodDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindspacehq/mindspace-api/models"
)

const moodCollectionName = "moods"

// MoodDatabase contains the methods to use with the mood database
type MoodDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Mood, error)
	InsertOne(ctx context.Context, mood models.Mood) (InsertOneResultHelper, error)
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
	Aggregate(ctx context.Context, pipeline interface{}) (CursorHelper, error)
}

type moodDatabase struct {
	db DatabaseHelper
}

// NewMoodDatabase initializes a new instance of mood database with the provided db connection
func NewMoodDatabase(db DatabaseHelper) MoodDatabase {
	return &moodDatabase{
		db: db,
	}
}

func (m *moodDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Mood, error) {
	var moods []models.Mood
	err := m.db.Collection(moodCollectionName).Find(ctx, filter, opts...).Decode(&moods)
	if err != nil {
		return nil, err
	}
	return moods, nil
}

func (m *moodDatabase) InsertOne(ctx context.Context, mood models.Mood) (InsertOneResultHelper, error) {
	return m.db.Collection(moodCollectionName).InsertOne(ctx, mood)
}

func (m *moodDatabase) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return m.db.Collection(moodCollectionName).DeleteMany(ctx, filter, opts...)
}

func (m *moodDatabase) Aggregate(ctx context.Context, pipeline interface{}) (CursorHelper, error) {
	return m.db.Collection(moodCollectionName).Aggregate(ctx, pipeline)
}
