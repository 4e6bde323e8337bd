// Package store wraps the portal's MongoDB collections behind small
// per-collection interfaces. Lookups that miss return (nil, nil) rather
// than mongo.ErrNoDocuments so callers handle absence explicitly.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/doctors-portal/api/internal/models"
)

// UpsertResult reports what an upsert-enabled update did.
type UpsertResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type Users interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, email string, fields map[string]interface{}) (*UpsertResult, error)
	SetRole(ctx context.Context, email, role string) (int64, error)
}

type Doctors interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, doctor models.Doctor) (primitive.ObjectID, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type Services interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindSummaries(ctx context.Context) ([]models.Service, error)
}

type Bookings interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByPatientEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindExisting(ctx context.Context, booking models.Booking) (*models.Booking, error)
	Insert(ctx context.Context, booking models.Booking) (primitive.ObjectID, error)
}
