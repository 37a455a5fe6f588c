package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/primelab-api/internal/models"
)

type reservationRepo struct {
	coll *mongo.Collection
}

func (r *reservationRepo) Create(ctx context.Context, res *models.Reservation) (models.InsertResult, error) {
	out, err := r.coll.InsertOne(ctx, res)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert reservation for test %s: %w", res.TestID, err)
	}
	return insertResult(out), nil
}

func (r *reservationRepo) List(ctx context.Context) ([]models.Reservation, error) {
	return findAll[models.Reservation](ctx, r.coll, bson.M{})
}

func (r *reservationRepo) ListByEmail(ctx context.Context, email, reportStatus string) ([]models.Reservation, error) {
	return findAll[models.Reservation](ctx, r.coll, bson.M{"email": email, "reportStatus": reportStatus})
}

// Delete removes reservation id. A non-empty owner restricts the delete to
// that owner's reservations.
func (r *reservationRepo) Delete(ctx context.Context, id, owner string) (models.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	filter := bson.M{"_id": oid}
	if owner != "" {
		filter["email"] = owner
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete reservation %s: %w", id, err)
	}
	return deleteResult(res), nil
}

func (r *reservationRepo) UpdateReport(ctx context.Context, id string, u models.ReportUpdate) (models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	update := bson.M{"$set": bson.M{"pdfLink": u.PdfLink, "reportStatus": u.ReportStatus}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update report %s: %w", id, err)
	}
	return updateResult(res), nil
}
