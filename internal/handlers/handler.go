package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/doctors-portal/api/internal/auth"
	"github.com/doctors-portal/api/internal/services"
	"github.com/doctors-portal/api/internal/store"
)

// Handler carries every dependency the route handlers need. All of it is
// injected at construction; there is no package-level state.
type Handler struct {
	Users        store.Users
	Doctors      store.Doctors
	Services     store.Services
	Bookings     store.Bookings
	Tokens       *auth.TokenService
	Availability *services.AvailabilityService
	Booking      *services.BookingService
	Log          *logrus.Logger
}

func NewHandler(
	users store.Users,
	doctors store.Doctors,
	svcs store.Services,
	bookings store.Bookings,
	tokens *auth.TokenService,
	availability *services.AvailabilityService,
	booking *services.BookingService,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		Users:        users,
		Doctors:      doctors,
		Services:     svcs,
		Bookings:     bookings,
		Tokens:       tokens,
		Availability: availability,
		Booking:      booking,
		Log:          log,
	}
}

// Home is the liveness endpoint.
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": true})
}
