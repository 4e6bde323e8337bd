package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doctors-portal/api/internal/models"
)

// GetServices lists all treatment offerings, name and slots only.
func (h *Handler) GetServices(c *gin.Context) {
	svcs, err := h.Services.FindSummaries(c.Request.Context())
	if err != nil {
		h.Log.WithError(err).Error("failed to list services")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve services"})
		return
	}
	if svcs == nil {
		svcs = make([]models.Service, 0)
	}
	c.JSON(http.StatusOK, svcs)
}

// GetAvailable returns each service with the slots still open on the
// requested date.
func (h *Handler) GetAvailable(c *gin.Context) {
	date := c.Query("date")

	svcs, err := h.Availability.Compute(c.Request.Context(), date)
	if err != nil {
		h.Log.WithError(err).Error("failed to compute availability")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		return
	}
	if svcs == nil {
		svcs = make([]models.Service, 0)
	}
	c.JSON(http.StatusOK, svcs)
}
