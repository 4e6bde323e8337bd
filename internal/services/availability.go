package services

import (
	"context"

	"github.com/doctors-portal/api/internal/models"
	"github.com/doctors-portal/api/internal/store"
)

// DefaultAvailabilityDate is returned availability's day when the caller
// supplies none. Kept for compatibility with the clients this API serves.
const DefaultAvailabilityDate = "May 20, 2022"

// AvailabilityService computes per-service open slots for a day by
// subtracting booked slots from each service's full slot list. Stored
// documents are never touched; the subtraction happens on the copies
// the stores hand back.
type AvailabilityService struct {
	services store.Services
	bookings store.Bookings
}

func NewAvailabilityService(services store.Services, bookings store.Bookings) *AvailabilityService {
	return &AvailabilityService{services: services, bookings: bookings}
}

// Compute returns every service with its slots reduced to the ones not
// yet booked on the given date, original order preserved. Services with
// no bookings pass through unchanged.
func (s *AvailabilityService) Compute(ctx context.Context, date string) ([]models.Service, error) {
	if date == "" {
		date = DefaultAvailabilityDate
	}

	services, err := s.services.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	// Booked slots keyed by treatment name. Matching is exact string
	// equality on both treatment and slot.
	bookedByTreatment := make(map[string]map[string]struct{})
	for _, booking := range bookings {
		taken, ok := bookedByTreatment[booking.Treatment]
		if !ok {
			taken = make(map[string]struct{})
			bookedByTreatment[booking.Treatment] = taken
		}
		taken[booking.Slot] = struct{}{}
	}

	for i, service := range services {
		taken, ok := bookedByTreatment[service.Name]
		if !ok {
			continue
		}
		available := make([]string, 0, len(service.Slots))
		for _, slot := range service.Slots {
			if _, booked := taken[slot]; !booked {
				available = append(available, slot)
			}
		}
		services[i].Slots = available
	}

	return services, nil
}
