package models

// Write results keep the field names the web client already reads from the
// driver's insert/update/delete acknowledgements.

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
	Message      string      `json:"message,omitempty"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type AdminStats struct {
	Users        int64   `json:"users"`
	TestItems    int64   `json:"testItems"`
	Reservations int64   `json:"reservations"`
	Revenue      float64 `json:"revenue"`
}

type NameCount struct {
	Name  string `bson:"name" json:"name"`
	Count int64  `bson:"count" json:"count"`
}

type BookedStats struct {
	TestStats   []NameCount `json:"testStats"`
	ReportStats []NameCount `json:"reportStats"`
}

// BookedTest is one row of the most-booked ranking: the test's details plus its reservation count.
type BookedTest struct {
	ID               string  `bson:"_id" json:"_id"`
	Count            int64   `bson:"count" json:"count"`
	Title            string  `bson:"title" json:"title"`
	ShortDescription string  `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Price            float64 `bson:"price" json:"price"`
	Image            string  `bson:"image,omitempty" json:"image,omitempty"`
	Category         string  `bson:"category,omitempty" json:"category,omitempty"`
	Date             string  `bson:"date,omitempty" json:"date,omitempty"`
	Slots            int     `bson:"slots" json:"slots"`
}
