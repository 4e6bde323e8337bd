package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offering. Name doubles as the join key against
// Booking.Treatment, and Slots is the full set of bookable time labels
// for any given day.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
}
