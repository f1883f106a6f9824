package databases

// go generate: mockery --name CreativeDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindspacehq/mindspace-api/models"
)

const creativeCollectionName = "creativeContents"

// CreativeDatabase contains the methods to use with the creative content database
type CreativeDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.CreativeContent, error)
	InsertOne(ctx context.Context, content models.CreativeContent) (InsertOneResultHelper, error)
}

type creativeDatabase struct {
	db DatabaseHelper
}

// NewCreativeDatabase initializes a new instance of creative database with the provided db connection
func NewCreativeDatabase(db DatabaseHelper) CreativeDatabase {
	return &creativeDatabase{
		db: db,
	}
}

func (c *creativeDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.CreativeContent, error) {
	var contents []models.CreativeContent
	err := c.db.Collection(creativeCollectionName).Find(ctx, filter, opts...).Decode(&contents)
	if err != nil {
		return nil, err
	}
	return contents, nil
}

func (c *creativeDatabase) InsertOne(ctx context.Context, content models.CreativeContent) (InsertOneResultHelper, error) {
	return c.db.Collection(creativeCollectionName).InsertOne(ctx, content)
}
