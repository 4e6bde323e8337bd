package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctors-portal/api/internal/models"
)

type bookingStore struct {
	coll *mongo.Collection
}

func NewBookings(db *mongo.Database) Bookings {
	return &bookingStore{coll: db.Collection("bookings")}
}

func (s *bookingStore) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return s.find(ctx, bson.M{"date": date})
}

func (s *bookingStore) FindByPatientEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.find(ctx, bson.M{"patientEmail": email})
}

// FindExisting looks up a booking by the dedup key
// (treatment, date, slot, patientName); nil when there is no conflict.
func (s *bookingStore) FindExisting(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	filter := bson.M{
		"treatment":   booking.Treatment,
		"date":        booking.Date,
		"slot":        booking.Slot,
		"patientName": booking.PatientName,
	}

	var existing models.Booking
	err := s.coll.FindOne(ctx, filter).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	return &existing, nil
}

func (s *bookingStore) Insert(ctx context.Context, booking models.Booking) (primitive.ObjectID, error) {
	booking.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, booking); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert booking: %w", err)
	}
	return booking.ID, nil
}

func (s *bookingStore) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
