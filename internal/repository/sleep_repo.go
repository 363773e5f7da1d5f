package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindcare/internal/model"
)

// SleepRepo is the append-only sleep log.
type SleepRepo interface {
	Append(ctx context.Context, entry *model.SleepEntry) error
	Recent(ctx context.Context, studentID string, limit int64) ([]*model.SleepEntry, error)
}

type sleepRepo struct {
	collection *mongo.Collection
}

// NewSleepRepo creates a new sleep repository.
func NewSleepRepo(db *mongo.Database) SleepRepo {
	return &sleepRepo{
		collection: db.Collection("sleep"),
	}
}

func (r *sleepRepo) Append(ctx context.Context, entry *model.SleepEntry) error {
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid.Hex()
	}
	return nil
}

func (r *sleepRepo) Recent(ctx context.Context, studentID string, limit int64) ([]*model.SleepEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "loggedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"studentId": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.SleepEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
