package services

import (
	"context"

	"github.com/doctors-portal/api/internal/models"
	"github.com/doctors-portal/api/internal/store"
)

// BookingResult reports whether TryCreate inserted a new booking or hit
// an existing one. Booking carries the stored record either way.
type BookingResult struct {
	Created bool
	Booking models.Booking
}

type BookingService struct {
	bookings store.Bookings
	notifier *Notifier
}

func NewBookingService(bookings store.Bookings, notifier *Notifier) *BookingService {
	return &BookingService{bookings: bookings, notifier: notifier}
}

// TryCreate inserts the booking unless one with the same
// (treatment, date, slot, patientName) already exists, in which case the
// existing record is returned untouched. The existence check and the
// insert are separate store calls; two concurrent requests for the same
// key can both insert. The deployment runs at low enough contention that
// this window is accepted rather than guarded.
func (s *BookingService) TryCreate(ctx context.Context, booking models.Booking) (*BookingResult, error) {
	existing, err := s.bookings.FindExisting(ctx, booking)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &BookingResult{Created: false, Booking: *existing}, nil
	}

	id, err := s.bookings.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = id

	if s.notifier != nil {
		s.notifier.SendBookingConfirmationSMS(&booking)
	}

	return &BookingResult{Created: true, Booking: booking}, nil
}
