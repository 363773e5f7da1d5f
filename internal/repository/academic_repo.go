package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindcare/internal/model"
)

// AcademicRepo stores academic stress analyses for history charts.
type AcademicRepo interface {
	Append(ctx context.Context, result *model.AcademicRiskResult) error
	Recent(ctx context.Context, studentID string, limit int64) ([]*model.AcademicRiskResult, error)
}

type academicRepo struct {
	collection *mongo.Collection
}

// NewAcademicRepo creates a new academic analysis repository.
func NewAcademicRepo(db *mongo.Database) AcademicRepo {
	return &academicRepo{
		collection: db.Collection("academic"),
	}
}

func (r *academicRepo) Append(ctx context.Context, result *model.AcademicRiskResult) error {
	res, err := r.collection.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid.Hex()
	}
	return nil
}

func (r *academicRepo) Recent(ctx context.Context, studentID string, limit int64) ([]*model.AcademicRiskResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "analyzedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"studentId": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.AcademicRiskResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
