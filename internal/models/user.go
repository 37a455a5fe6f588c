package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin = "admin"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Email      string             `bson:"email" json:"email" binding:"required,email"`
	PhotoURL   string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	BloodGroup string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`     // "admin" or unset
	Status     string             `bson:"status,omitempty" json:"status,omitempty"` // "active" or "blocked"
}

// IsAdmin reports whether u carries the admin role. A nil user is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ProfileUpdate holds the self-service fields of PATCH /users/:email.
type ProfileUpdate struct {
	Name       string `json:"name"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	PhotoURL   string `json:"photoURL"`
}

var ErrInvalidAction = errors.New("invalid action")

// AdminAction is one of the closed set of mutations an admin can apply to a user.
type AdminAction int

const (
	ActionPromote AdminAction = iota + 1
	ActionBlock
)

func ParseAdminAction(s string) (AdminAction, error) {
	switch s {
	case "admin":
		return ActionPromote, nil
	case "block":
		return ActionBlock, nil
	default:
		return 0, ErrInvalidAction
	}
}

func (a AdminAction) String() string {
	switch a {
	case ActionPromote:
		return "admin"
	case ActionBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Update returns the $set document the action applies.
func (a AdminAction) Update() (bson.M, error) {
	switch a {
	case ActionPromote:
		return bson.M{"$set": bson.M{"role": RoleAdmin}}, nil
	case ActionBlock:
		return bson.M{"$set": bson.M{"status": StatusBlocked}}, nil
	default:
		return nil, ErrInvalidAction
	}
}
