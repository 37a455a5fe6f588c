package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportPending   = "pending"
	ReportDelivered = "delivered"
)

type Reservation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	TestID        string             `bson:"testId" json:"testId" binding:"required"`
	TestName      string             `bson:"testName" json:"testName"`
	Price         float64            `bson:"price" json:"price"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	ReportStatus  string             `bson:"reportStatus" json:"reportStatus"`
	PdfLink       string             `bson:"pdfLink,omitempty" json:"pdfLink,omitempty"`
}

// ReportUpdate is the admin-side report delivery patch.
type ReportUpdate struct {
	PdfLink      string `json:"pdfLink"`
	ReportStatus string `json:"reportStatus"`
}
