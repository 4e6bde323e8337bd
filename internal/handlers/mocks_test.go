package handlers

import (
	"context"
	"io"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/doctors-portal/api/internal/auth"
	"github.com/doctors-portal/api/internal/models"
	"github.com/doctors-portal/api/internal/services"
	"github.com/doctors-portal/api/internal/store"
)

// MockUsers is a mock implementation of store.Users
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUsers) Upsert(ctx context.Context, email string, fields map[string]interface{}) (*store.UpsertResult, error) {
	args := m.Called(ctx, email, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.UpsertResult), args.Error(1)
}

func (m *MockUsers) SetRole(ctx context.Context, email, role string) (int64, error) {
	args := m.Called(ctx, email, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockDoctors is a mock implementation of store.Doctors
type MockDoctors struct {
	mock.Mock
}

func (m *MockDoctors) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctors) Insert(ctx context.Context, doctor models.Doctor) (primitive.ObjectID, error) {
	args := m.Called(ctx, doctor)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockDoctors) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

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

// testEnv bundles a Handler wired to mocks with the token service the
// routes under test share.
type testEnv struct {
	handler  *Handler
	tokens   *auth.TokenService
	users    *MockUsers
	doctors  *MockDoctors
	services *MockServices
	bookings *MockBookings
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenService("test-secret")
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	users := new(MockUsers)
	doctors := new(MockDoctors)
	svcs := new(MockServices)
	bookings := new(MockBookings)

	availability := services.NewAvailabilityService(svcs, bookings)
	bookingSvc := services.NewBookingService(bookings, nil)

	return &testEnv{
		handler:  NewHandler(users, doctors, svcs, bookings, tokens, availability, bookingSvc, log),
		tokens:   tokens,
		users:    users,
		doctors:  doctors,
		services: svcs,
		bookings: bookings,
	}
}
