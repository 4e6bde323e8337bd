package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doctors-portal/api/internal/models"
)

// CreateDoctor adds a doctor record. Admin-gated upstream.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.Doctors.Insert(c.Request.Context(), doctor)
	if err != nil {
		h.Log.WithError(err).Error("failed to insert doctor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create doctor"})
		return
	}
	doctor.ID = id

	c.JSON(http.StatusCreated, doctor)
}

// GetDoctors lists all doctors. Admin-gated upstream.
func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.FindAll(c.Request.Context())
	if err != nil {
		h.Log.WithError(err).Error("failed to list doctors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve doctors"})
		return
	}
	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}
	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctor removes a doctor by email. Admin-gated upstream.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	email := c.Param("email")

	deleted, err := h.Doctors.DeleteByEmail(c.Request.Context(), email)
	if err != nil {
		h.Log.WithError(err).Error("failed to delete doctor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete doctor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
