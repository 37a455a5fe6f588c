// Package repository holds the MongoDB access for every PrimeLab collection.
// Handlers depend on the interfaces declared here so tests can swap the store.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harentsoaR/primelab-api/internal/models"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid object id")
	ErrSoldOut   = errors.New("no slots available")
)

const (
	usersCollection           = "users"
	testsCollection           = "tests"
	bannerCollection          = "banner"
	doctorsCollection         = "doctors"
	feedbackCollection        = "feedback"
	recommendationsCollection = "recommendations"
	reservationsCollection    = "reservations"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Create inserts u unless a user with the same email exists; created is false in that case.
	Create(ctx context.Context, u *models.User) (result models.InsertResult, created bool, err error)
	UpdateProfile(ctx context.Context, email string, p models.ProfileUpdate) (models.UpdateResult, error)
	ApplyAction(ctx context.Context, id string, action models.AdminAction) (models.UpdateResult, error)
}

type TestRepository interface {
	List(ctx context.Context) ([]models.LabTest, error)
	Page(ctx context.Context, page, size int64) ([]models.LabTest, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id string) (*models.LabTest, error)
	Create(ctx context.Context, t *models.LabTest) (models.InsertResult, error)
	Update(ctx context.Context, id string, t *models.LabTest) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
	// ReserveSlot takes one slot from the test, failing with ErrSoldOut at zero.
	ReserveSlot(ctx context.Context, id string) (models.UpdateResult, error)
	ReleaseSlot(ctx context.Context, id string) error
}

type BannerRepository interface {
	List(ctx context.Context) ([]models.Document, error)
	Create(ctx context.Context, b models.Document) (models.InsertResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
	// Activate makes id the only active banner.
	Activate(ctx context.Context, id string) (models.UpdateResult, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *models.Reservation) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Reservation, error)
	ListByEmail(ctx context.Context, email, reportStatus string) ([]models.Reservation, error)
	// Delete removes id; a non-empty owner must match the reservation's email.
	Delete(ctx context.Context, id, owner string) (models.DeleteResult, error)
	UpdateReport(ctx context.Context, id string, u models.ReportUpdate) (models.UpdateResult, error)
}

type ContentRepository interface {
	Recommendations(ctx context.Context) ([]models.Document, error)
	Doctors(ctx context.Context) ([]models.Document, error)
	CreateFeedback(ctx context.Context, f models.Document) (models.InsertResult, error)
}

type StatsRepository interface {
	AdminStats(ctx context.Context) (models.AdminStats, error)
	BookedStats(ctx context.Context) (models.BookedStats, error)
	MostBookedTests(ctx context.Context, limit int) ([]models.BookedTest, error)
}

// Repositories bundles every store the HTTP layer needs.
type Repositories struct {
	Users        UserRepository
	Tests        TestRepository
	Banners      BannerRepository
	Reservations ReservationRepository
	Content      ContentRepository
	Stats        StatsRepository
}

// NewMongo wires every repository to db. db is shared; it is not closed here.
func NewMongo(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:        &userRepo{coll: db.Collection(usersCollection)},
		Tests:        &testRepo{coll: db.Collection(testsCollection)},
		Banners:      &bannerRepo{coll: db.Collection(bannerCollection)},
		Reservations: &reservationRepo{coll: db.Collection(reservationsCollection)},
		Content: &contentRepo{
			recommendations: db.Collection(recommendationsCollection),
			doctors:         db.Collection(doctorsCollection),
			feedback:        db.Collection(feedbackCollection),
		},
		Stats: &statsRepo{db: db},
	}
}

func objectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, hex)
	}
	return id, nil
}

func insertResult(res *mongo.InsertOneResult) models.InsertResult {
	return models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateResult(res *mongo.UpdateResult) models.UpdateResult {
	return models.UpdateResult{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
}

func deleteResult(res *mongo.DeleteResult) models.DeleteResult {
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// findAll decodes every document matched by filter into a non-nil slice.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}
