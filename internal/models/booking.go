package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a reservation of one slot of one treatment on one day.
// Date is an opaque day label, compared with exact string equality.
type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Treatment    string             `bson:"treatment" json:"treatment"`
	Date         string             `bson:"date" json:"date"`
	Slot         string             `bson:"slot" json:"slot"`
	PatientName  string             `bson:"patientName" json:"patientName"`
	PatientEmail string             `bson:"patientEmail" json:"patientEmail"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
