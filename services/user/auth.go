package user

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"dateplanner/models"
	"dateplanner/services/socialauth"
	"dateplanner/utils"
)

// SignInWithGoogle validates the Google ID token and resolves the local user
// document. First-time users must supply a role so partner pairing works;
// returning users keep their stored role and the supplied one is ignored.
// A fresh session token is issued either way and its hash stored for the
// auth middleware.
func (s *DefaultUserService) SignInWithGoogle(idToken, role string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	info, err := socialauth.ValidateGoogleToken(idToken, s.Audience)
	if err != nil {
		logger.Warn("Google sign-in rejected", zap.Error(err))
		return nil, AuthError{Message: "invalid Google ID token"}
	}

	existing, err := s.Repo.GetByID(info.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	newUser := existing == nil
	if newUser {
		if models.OppositeRole(role) == "" {
			return nil, AuthError{Message: "a role of bf or gf is required on first sign-in"}
		}
		existing = &models.User{
			ID:          info.Subject,
			DisplayName: info.Name,
			Email:       info.Email,
			PhotoURL:    info.Picture,
			Role:        role,
		}
		if err := s.Repo.Create(existing); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		// A new user changes who the opposite role pairs with.
		s.invalidatePartnerCache(existing.Role)
		logger.Info("New user registered",
			zap.String("userID", existing.ID), zap.String("role", existing.Role))
	}

	token, err := utils.GenerateToken(existing.ID, existing.Email, utils.SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(existing.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}
	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + existing.ID
		if err := s.AuthCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
			logger.Warn("Failed to cache session token hash", zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:          existing.ID,
		Token:       token,
		DisplayName: existing.DisplayName,
		Email:       existing.Email,
		PhotoURL:    existing.PhotoURL,
		Role:        existing.Role,
		NewUser:     newUser,
	}, nil
}

// SignOut revokes the user's session token hash in both the cache and the
// user document.
func (s *DefaultUserService) SignOut(userID string) error {
	if s.AuthCache != nil {
		cacheKey := utils.AuthCachePrefix + userID
		_ = s.AuthCache.Del(context.Background(), cacheKey).Err()
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke session token: %w", err)
	}
	return nil
}
