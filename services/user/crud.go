package user

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"dateplanner/models"
	"dateplanner/utils"
)

// GetProfile retrieves a user by ID.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, NotFoundError{Resource: "user", ID: userID}
	}
	return u, nil
}

// UpdateProfile updates non-empty profile fields using a partial update.
func (s *DefaultUserService) UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error) {
	logger := utils.GetLogger()

	updateFields := bson.M{}
	if req.DisplayName != "" {
		updateFields["displayName"] = req.DisplayName
	}
	if req.PhotoURL != "" {
		updateFields["photoURL"] = req.PhotoURL
	}
	if len(updateFields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(userID, updateFields); err != nil {
		logger.Error("Failed to update profile", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetProfile(userID)
}

// SetPhotoURL persists a new profile photo URL after an upload.
func (s *DefaultUserService) SetPhotoURL(userID, photoURL string) error {
	if photoURL == "" {
		return fmt.Errorf("photoURL is required")
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"photoURL": photoURL}); err != nil {
		return fmt.Errorf("failed to set photo URL: %w", err)
	}
	return nil
}
