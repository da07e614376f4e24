package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dateplanner/services/storage"
	"dateplanner/services/user"
)

// StorageHandler handles media signing and the server-side photo upload path.
type StorageHandler struct {
	StorageSvc storage.StorageService
	UserSvc    user.UserService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(storageSvc storage.StorageService, userSvc user.UserService) *StorageHandler {
	return &StorageHandler{StorageSvc: storageSvc, UserSvc: userSvc}
}

// GetSignatureHandler signs upload parameters so the client can upload
// directly to the media provider.
func (h *StorageHandler) GetSignatureHandler(c *gin.Context) {
	var input struct {
		Folder    string `json:"folder" binding:"required"`
		PublicID  string `json:"public_id" binding:"required"`
		Timestamp int64  `json:"timestamp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters", "details": err.Error()})
		return
	}

	sig, err := h.StorageSvc.SignUploadRequest(input.Folder, input.PublicID, input.Timestamp)
	if err != nil {
		getLogger(c).Error("Failed to sign upload request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign upload request"})
		return
	}

	c.JSON(http.StatusOK, sig)
}

// UploadProfilePhotoHandler uploads a photo server-side and persists the
// resulting URL on the caller's profile.
func (h *StorageHandler) UploadProfilePhotoHandler(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	photoURL, err := h.StorageSvc.UploadFile(c, tempFilePath, "profile_pics")
	if err != nil {
		getLogger(c).Error("Profile photo upload failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}

	if err := h.UserSvc.SetPhotoURL(userID, photoURL); err != nil {
		getLogger(c).Error("Failed to persist photo URL", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "photo uploaded successfully",
		"photoURL": photoURL,
	})
}
