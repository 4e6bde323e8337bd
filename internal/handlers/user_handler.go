package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doctors-portal/api/internal/auth"
	"github.com/doctors-portal/api/internal/models"
)

// GetUsers lists every user record. Auth-gated.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Users.FindAll(c.Request.Context())
	if err != nil {
		h.Log.WithError(err).Error("failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether the given email belongs to an admin. An
// unknown email is simply not an admin.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	user, err := h.Users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.Log.WithError(err).Error("failed to look up user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// MakeAdmin promotes an existing user to admin. Admin-gated upstream.
func (h *Handler) MakeAdmin(c *gin.Context) {
	email := c.Param("email")

	matched, err := h.Users.SetRole(c.Request.Context(), email, models.RoleAdmin)
	if err != nil {
		h.Log.WithError(err).Error("failed to promote user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to promote user"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": matched})
}

// UpsertUser merges the posted profile fields into the user record for
// the email in the path, creating it when absent, and issues a bearer
// token for that email. A password field, when present, is hashed before
// it reaches storage.
func (h *Handler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Role changes only happen through the admin-gated promote endpoint;
	// this route is open, so a client-supplied role is dropped.
	delete(fields, "role")

	if password, ok := fields["password"].(string); ok && password != "" {
		hashed, err := auth.HashPassword(password)
		if err != nil {
			h.Log.WithError(err).Error("failed to hash password")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process profile"})
			return
		}
		fields["password"] = hashed
	}

	result, err := h.Users.Upsert(c.Request.Context(), email, fields)
	if err != nil {
		h.Log.WithError(err).Error("failed to upsert user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save user"})
		return
	}

	token, err := h.Tokens.Issue(email)
	if err != nil {
		h.Log.WithError(err).Error("failed to issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "accessToken": token})
}
