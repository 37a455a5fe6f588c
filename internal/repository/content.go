package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/primelab-api/internal/models"
)

type contentRepo struct {
	recommendations *mongo.Collection
	doctors         *mongo.Collection
	feedback        *mongo.Collection
}

func (r *contentRepo) Recommendations(ctx context.Context) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.recommendations, bson.M{})
}

func (r *contentRepo) Doctors(ctx context.Context) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.doctors, bson.M{})
}

func (r *contentRepo) CreateFeedback(ctx context.Context, f models.Document) (models.InsertResult, error) {
	res, err := r.feedback.InsertOne(ctx, f)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert feedback: %w", err)
	}
	return insertResult(res), nil
}
