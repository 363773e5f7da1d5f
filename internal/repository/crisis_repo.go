package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindcare/internal/model"
)

// CrisisAlertRepo is the SOS and crisis alert log reviewed by counselors.
type CrisisAlertRepo interface {
	Append(ctx context.Context, alert *model.CrisisAlert) error
	Recent(ctx context.Context, limit int64) ([]*model.CrisisAlert, error)
}

type crisisAlertRepo struct {
	collection *mongo.Collection
}

// NewCrisisAlertRepo creates a new crisis alert repository.
func NewCrisisAlertRepo(db *mongo.Database) CrisisAlertRepo {
	return &crisisAlertRepo{
		collection: db.Collection("crisis_alerts"),
	}
}

func (r *crisisAlertRepo) Append(ctx context.Context, alert *model.CrisisAlert) error {
	_, err := r.collection.InsertOne(ctx, alert)
	return err
}

func (r *crisisAlertRepo) Recent(ctx context.Context, limit int64) ([]*model.CrisisAlert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "raisedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var alerts []*model.CrisisAlert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
