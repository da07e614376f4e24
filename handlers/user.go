package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dateplanner/models"
	"dateplanner/services/user"
)

// UserHandler exposes profile and partner endpoints.
type UserHandler struct {
	UserSvc user.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserSvc: svc}
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.UserSvc.GetProfile(userID)
	if err != nil {
		h.respondUserError(c, err, "Failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler applies a partial update to the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.UserSvc.UpdateProfile(userID, req)
	if err != nil {
		h.respondUserError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetPartnerHandler returns the user paired with the caller: the first-found
// user of the opposite role.
func (h *UserHandler) GetPartnerHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	partner, err := h.UserSvc.FindPartner(userID)
	if err != nil {
		h.respondUserError(c, err, "Failed to find partner")
		return
	}

	c.JSON(http.StatusOK, partner)
}

func (h *UserHandler) respondUserError(c *gin.Context, err error, msg string) {
	var notFound user.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}
	getLogger(c).Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
