package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/doctors-portal/api/internal/models"
)

// MockServices is a mock implementation of store.Services
type MockServices struct {
	mock.Mock
}

func (m *MockServices) FindAll(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServices) FindSummaries(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Service), args.Error(1)
}

// MockBookings is a mock implementation of store.Bookings
type MockBookings struct {
	mock.Mock
}

func (m *MockBookings) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookings) FindByPatientEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookings) FindExisting(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookings) Insert(ctx context.Context, booking models.Booking) (primitive.ObjectID, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
