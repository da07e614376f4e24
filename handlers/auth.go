package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dateplanner/services/user"
)

// AuthHandler exposes sign-in and sign-out endpoints.
type AuthHandler struct {
	UserSvc user.UserService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserSvc: svc}
}

// SessionHandler exchanges a Google ID token for a session token. New users
// must include a role (bf or gf) so they can be paired.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	var input struct {
		IDToken string `json:"idToken" binding:"required"`
		Role    string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserSvc.SignInWithGoogle(input.IDToken, input.Role)
	if err != nil {
		var authErr user.AuthError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
			return
		}
		getLogger(c).Error("Sign-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-in failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SignOutHandler revokes the caller's session token.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.UserSvc.SignOut(userID); err != nil {
		getLogger(c).Error("Sign-out failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-out failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
