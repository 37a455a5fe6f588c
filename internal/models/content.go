package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldID       = "_id"
	FieldIsActive = "isActive"
)

// Document is a record from a collection with no enforced schema (banners,
// feedback, recommendations, doctors). It is stored and returned as sent.
type Document map[string]interface{}

// ClearID drops a client-supplied _id so the store assigns one.
func (d Document) ClearID() {
	delete(d, FieldID)
}

// ID returns the stored ObjectID, if the document has one.
func (d Document) ID() (primitive.ObjectID, bool) {
	id, ok := d[FieldID].(primitive.ObjectID)
	return id, ok
}

// IsActive reports a banner's isActive flag; absent counts as false.
func (d Document) IsActive() bool {
	active, _ := d[FieldIsActive].(bool)
	return active
}
