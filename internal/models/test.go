package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LabTest is a bookable diagnostic test. Slots counts the remaining bookings.
type LabTest struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title            string             `bson:"title" json:"title"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	ShortDescription string             `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Details          string             `bson:"details,omitempty" json:"details,omitempty"`
	Date             string             `bson:"date,omitempty" json:"date,omitempty"`
	Slots            int                `bson:"slots" json:"slots"`
	Price            float64            `bson:"price" json:"price"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
}
