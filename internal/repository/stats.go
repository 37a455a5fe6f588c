package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/primelab-api/internal/models"
)

type statsRepo struct {
	db *mongo.Database
}

func (r *statsRepo) AdminStats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	counts := []struct {
		coll string
		dst  *int64
	}{
		{usersCollection, &stats.Users},
		{testsCollection, &stats.TestItems},
		{reservationsCollection, &stats.Reservations},
	}
	for _, c := range counts {
		n, err := r.db.Collection(c.coll).EstimatedDocumentCount(ctx)
		if err != nil {
			return models.AdminStats{}, fmt.Errorf("count %s: %w", c.coll, err)
		}
		*c.dst = n
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := r.aggregate(ctx, reservationsCollection, pipeline, &rows); err != nil {
		return models.AdminStats{}, err
	}
	if len(rows) > 0 {
		stats.Revenue = rows[0].TotalRevenue
	}
	return stats, nil
}

func (r *statsRepo) BookedStats(ctx context.Context) (models.BookedStats, error) {
	stats := models.BookedStats{TestStats: []models.NameCount{}, ReportStats: []models.NameCount{}}
	if err := r.aggregate(ctx, reservationsCollection, countBy("$testName"), &stats.TestStats); err != nil {
		return models.BookedStats{}, err
	}
	if err := r.aggregate(ctx, reservationsCollection, countBy("$reportStatus"), &stats.ReportStats); err != nil {
		return models.BookedStats{}, err
	}
	return stats, nil
}

// countBy groups reservations by field and projects {name, count}.
func countBy(field string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "name", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
}

func (r *statsRepo) MostBookedTests(ctx context.Context, limit int) ([]models.BookedTest, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$testId"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "testId", Value: bson.D{{Key: "$toString", Value: "$_id"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: testsCollection},
			{Key: "let", Value: bson.D{{Key: "testId", Value: "$testId"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{"$_id", bson.D{{Key: "$toObjectId", Value: "$$testId"}}}},
				}}}}},
			}},
			{Key: "as", Value: "testDetails"},
		}}},
		{{Key: "$unwind", Value: "$testDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "count", Value: 1},
			{Key: "title", Value: "$testDetails.title"},
			{Key: "shortDescription", Value: "$testDetails.shortDescription"},
			{Key: "price", Value: "$testDetails.price"},
			{Key: "image", Value: "$testDetails.image"},
			{Key: "category", Value: "$testDetails.category"},
			{Key: "date", Value: "$testDetails.date"},
			{Key: "slots", Value: "$testDetails.slots"},
		}}},
	}

	tests := make([]models.BookedTest, 0, limit)
	if err := r.aggregate(ctx, reservationsCollection, pipeline, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *statsRepo) aggregate(ctx context.Context, coll string, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.db.Collection(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", coll, err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s aggregate: %w", coll, err)
	}
	return nil
}
