package repository

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/primelab-api/internal/models"
)

type bannerRepo struct {
	coll *mongo.Collection

	// activateMu serializes activations within this process.
	activateMu sync.Mutex
}

func (r *bannerRepo) List(ctx context.Context) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.coll, bson.M{})
}

func (r *bannerRepo) Create(ctx context.Context, b models.Document) (models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert banner: %w", err)
	}
	return insertResult(res), nil
}

func (r *bannerRepo) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete banner %s: %w", id, err)
	}
	return deleteResult(res), nil
}

// Activate sets isActive to (_id == id) on every banner in one pipeline update.
func (r *bannerRepo) Activate(ctx context.Context, id string) (models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	r.activateMu.Lock()
	defer r.activateMu.Unlock()

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("check banner %s: %w", id, err)
	}
	if n == 0 {
		return models.UpdateResult{}, ErrNotFound
	}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "isActive", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", oid}}}},
		}}},
	}
	res, err := r.coll.UpdateMany(ctx, bson.M{}, pipeline)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("activate banner %s: %w", id, err)
	}
	return updateResult(res), nil
}
