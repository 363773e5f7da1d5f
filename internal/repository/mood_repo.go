package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindcare/internal/model"
)

// MoodRepo is the append-only mood journal. Recent returns entries
// most-recent-first.
type MoodRepo interface {
	Append(ctx context.Context, entry *model.MoodEntry) error
	Recent(ctx context.Context, studentID string, limit int64) ([]*model.MoodEntry, error)
}

type moodRepo struct {
	collection *mongo.Collection
}

// NewMoodRepo creates a new mood repository.
func NewMoodRepo(db *mongo.Database) MoodRepo {
	return &moodRepo{
		collection: db.Collection("moods"),
	}
}

func (r *moodRepo) Append(ctx context.Context, entry *model.MoodEntry) error {
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid.Hex()
	}
	return nil
}

func (r *moodRepo) Recent(ctx context.Context, studentID string, limit int64) ([]*model.MoodEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "loggedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"studentId": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.MoodEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
