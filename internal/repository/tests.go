package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/primelab-api/internal/models"
)

type testRepo struct {
	coll *mongo.Collection
}

func (r *testRepo) List(ctx context.Context) ([]models.LabTest, error) {
	return findAll[models.LabTest](ctx, r.coll, bson.M{})
}

// Page returns the page-th (1-based) run of size tests in natural order.
func (r *testRepo) Page(ctx context.Context, page, size int64) ([]models.LabTest, error) {
	if page < 1 || size < 1 || page-1 > math.MaxInt64/size {
		return []models.LabTest{}, nil
	}
	opts := options.Find().SetSkip((page - 1) * size).SetLimit(size)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find tests page %d: %w", page, err)
	}
	defer cursor.Close(ctx)

	tests := make([]models.LabTest, 0, size)
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, fmt.Errorf("decode tests page %d: %w", page, err)
	}
	return tests, nil
}

func (r *testRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count tests: %w", err)
	}
	return n, nil
}

func (r *testRepo) Get(ctx context.Context, id string) (*models.LabTest, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var test models.LabTest
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&test)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find test %s: %w", id, err)
	}
	return &test, nil
}

func (r *testRepo) Create(ctx context.Context, t *models.LabTest) (models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert test: %w", err)
	}
	return insertResult(res), nil
}

func (r *testRepo) Update(ctx context.Context, id string, t *models.LabTest) (models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	update := bson.M{"$set": bson.M{
		"title":            t.Title,
		"category":         t.Category,
		"shortDescription": t.ShortDescription,
		"details":          t.Details,
		"date":             t.Date,
		"slots":            t.Slots,
		"price":            t.Price,
		"image":            t.Image,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update test %s: %w", id, err)
	}
	return updateResult(res), nil
}

func (r *testRepo) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete test %s: %w", id, err)
	}
	return deleteResult(res), nil
}

// ReserveSlot decrements slots only while it is positive, in a single update,
// so concurrent bookings cannot oversell.
func (r *testRepo) ReserveSlot(ctx context.Context, id string) (models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "slots": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"slots": -1}},
	)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("reserve slot on test %s: %w", id, err)
	}
	if res.MatchedCount > 0 {
		return updateResult(res), nil
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("check test %s: %w", id, err)
	}
	if n == 0 {
		return models.UpdateResult{}, ErrNotFound
	}
	return models.UpdateResult{}, ErrSoldOut
}

func (r *testRepo) ReleaseSlot(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"slots": 1}})
	if err != nil {
		return fmt.Errorf("release slot on test %s: %w", id, err)
	}
	return nil
}
