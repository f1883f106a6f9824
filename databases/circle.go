package databases

// go generate: mockery --name CircleDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindspacehq/mindspace-api/models"
)

const circleCollectionName = "supportCircles"

// CircleDatabase contains the methods to use with the support circle database
type CircleDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.SupportCircle, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.SupportCircle, error)
	InsertOne(ctx context.Context, circle models.SupportCircle) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	AppendMessage(ctx context.Context, circleID string, msg models.Message) error
	IsMember(ctx context.Context, circleID string, userID string) (bool, error)
}

type circleDatabase struct {
	db DatabaseHelper
}

// NewCircleDatabase initializes a new instance of circle database with the provided db connection
func NewCircleDatabase(db DatabaseHelper) CircleDatabase {
	return &circleDatabase{
		db: db,
	}
}

func (c *circleDatabase) FindOne(ctx context.Context, filter interface{}) (*models.SupportCircle, error) {
	circle := &models.SupportCircle{}
	err := c.db.Collection(circleCollectionName).FindOne(ctx, filter).Decode(&circle)
	if err != nil {
		return nil, err
	}
	return circle, nil
}

func (c *circleDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.SupportCircle, error) {
	var circles []models.SupportCircle
	err := c.db.Collection(circleCollectionName).Find(ctx, filter, opts...).Decode(&circles)
	if err != nil {
		return nil, err
	}
	return circles, nil
}

func (c *circleDatabase) InsertOne(ctx context.Context, circle models.SupportCircle) (InsertOneResultHelper, error) {
	return c.db.Collection(circleCollectionName).InsertOne(ctx, circle)
}

func (c *circleDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.db.Collection(circleCollectionName).UpdateOne(ctx, filter, update, opts...)
}

// AppendMessage pushes a message onto the circle's message list
func (c *circleDatabase) AppendMessage(ctx context.Context, circleID string, msg models.Message) error {
	cID, err := primitive.ObjectIDFromHex(circleID)
	if err != nil {
		return err
	}
	_, err = c.db.Collection(circleCollectionName).UpdateOne(ctx,
		bson.M{"_id": cID},
		bson.M{"$push": bson.M{"messages": msg}},
	)
	return err
}

// IsMember reports whether userID is in the circle's member list
func (c *circleDatabase) IsMember(ctx context.Context, circleID string, userID string) (bool, error) {
	cID, err := primitive.ObjectIDFromHex(circleID)
	if err != nil {
		return false, err
	}
	count, err := c.db.Collection(circleCollectionName).CountDocuments(ctx,
		bson.M{"_id": cID, "members": userID},
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
