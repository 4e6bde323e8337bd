package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doctors-portal/api/internal/middleware"
	"github.com/doctors-portal/api/internal/models"
)

// GetBookings lists the bookings for the patientEmail query parameter.
// Patients may only read their own bookings: the parameter must match
// the authenticated identity.
func (h *Handler) GetBookings(c *gin.Context) {
	patientEmail := c.Query("patientEmail")
	decodedEmail := c.GetString(middleware.ContextUserEmail)

	if patientEmail != decodedEmail {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Bookings.FindByPatientEmail(c.Request.Context(), patientEmail)
	if err != nil {
		h.Log.WithError(err).Error("failed to list bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookings"})
		return
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking inserts a booking unless an identical one already
// exists, in which case the existing record comes back with
// success=false and nothing is written.
func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.Booking.TryCreate(c.Request.Context(), booking)
	if err != nil {
		h.Log.WithError(err).Error("failed to create booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": result.Booking})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": result.Booking})
}
