package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindcare/internal/model"
)

// AssessmentRepo is the append-only assessment response log. Recent returns
// entries most-recent-first. Appends are single inserts, so concurrent
// writers cannot lose updates.
type AssessmentRepo interface {
	Append(ctx context.Context, resp *model.AssessmentResponse) error
	Recent(ctx context.Context, studentID, instrumentID string, limit int64) ([]*model.AssessmentResponse, error)
	Latest(ctx context.Context, studentID, instrumentID string) (*model.AssessmentResponse, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository.
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Append(ctx context.Context, resp *model.AssessmentResponse) error {
	result, err := r.collection.InsertOne(ctx, resp)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		resp.ID = oid.Hex()
	}
	return nil
}

func (r *assessmentRepo) Recent(ctx context.Context, studentID, instrumentID string, limit int64) ([]*model.AssessmentResponse, error) {
	filter := bson.M{"studentId": studentID}
	if instrumentID != "" {
		filter["instrumentId"] = instrumentID
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.AssessmentResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *assessmentRepo) Latest(ctx context.Context, studentID, instrumentID string) (*model.AssessmentResponse, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	var resp model.AssessmentResponse
	err := r.collection.FindOne(ctx, bson.M{"studentId": studentID, "instrumentId": instrumentID}, opts).Decode(&resp)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
