package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/primelab-api/internal/models"
)

type userRepo struct {
	coll *mongo.Collection
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", email, err)
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, r.coll, bson.M{})
}

func (r *userRepo) Create(ctx context.Context, u *models.User) (models.InsertResult, bool, error) {
	exists := models.InsertResult{Message: "user already exists", InsertedID: nil}

	_, err := r.FindByEmail(ctx, u.Email)
	if err == nil {
		return exists, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.InsertResult{}, false, err
	}

	if u.Status == "" {
		u.Status = models.StatusActive
	}
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		// Lost a race with a concurrent sign-in for the same email.
		if mongo.IsDuplicateKeyError(err) {
			return exists, false, nil
		}
		return models.InsertResult{}, false, fmt.Errorf("insert user %s: %w", u.Email, err)
	}
	return insertResult(res), true, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, email string, p models.ProfileUpdate) (models.UpdateResult, error) {
	set := bson.M{}
	for field, value := range map[string]string{
		"name":       p.Name,
		"bloodGroup": p.BloodGroup,
		"district":   p.District,
		"upazila":    p.Upazila,
		"photoURL":   p.PhotoURL,
	} {
		if value != "" {
			set[field] = value
		}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update profile %s: %w", email, err)
	}
	return updateResult(res), nil
}

func (r *userRepo) ApplyAction(ctx context.Context, id string, action models.AdminAction) (models.UpdateResult, error) {
	update, err := action.Update()
	if err != nil {
		return models.UpdateResult{}, err
	}
	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("apply %s to user %s: %w", action, id, err)
	}
	return updateResult(res), nil
}

// EnsureIndexes creates the unique email index that backs idempotent sign-up.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users.email index: %w", err)
	}
	return nil
}
