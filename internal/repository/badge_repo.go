package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindcare/internal/model"
)

// BadgeRepo is the append-only badge log.
type BadgeRepo interface {
	Append(ctx context.Context, badge *model.Badge) error
	Recent(ctx context.Context, studentID string, limit int64) ([]*model.Badge, error)
}

type badgeRepo struct {
	collection *mongo.Collection
}

// NewBadgeRepo creates a new badge repository.
func NewBadgeRepo(db *mongo.Database) BadgeRepo {
	return &badgeRepo{
		collection: db.Collection("badges"),
	}
}

func (r *badgeRepo) Append(ctx context.Context, badge *model.Badge) error {
	_, err := r.collection.InsertOne(ctx, badge)
	return err
}

func (r *badgeRepo) Recent(ctx context.Context, studentID string, limit int64) ([]*model.Badge, error) {
	opts := options.Find().SetSort(bson.D{{Key: "earnedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"studentId": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var badges []*model.Badge
	if err := cursor.All(ctx, &badges); err != nil {
		return nil, err
	}
	return badges, nil
}
