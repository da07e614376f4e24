package user

import (
	"github.com/go-redis/redis/v8"

	userRepo "dateplanner/database/repository/user"
	"dateplanner/models"
)

// UserService manages identities: sign-in, profile access and partner pairing.
type UserService interface {
	// SignInWithGoogle validates the Google ID token, creates the user on
	// first sign-in (role required) and issues a session token.
	SignInWithGoogle(idToken, role string) (*AuthResponse, error)
	// SignOut revokes the user's session token.
	SignOut(userID string) error

	// GetProfile retrieves a user profile by ID.
	GetProfile(userID string) (*models.User, error)
	// UpdateProfile applies a partial profile update and returns the result.
	UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error)
	// SetPhotoURL persists a new profile photo URL.
	SetPhotoURL(userID, photoURL string) error

	// FindPartner returns the first-found user carrying the role opposite to
	// the viewer's. The tie-break under multiple candidates is undefined.
	FindPartner(viewerID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
	Cache     *redis.Client
	// Audience is the Google OAuth client ID expected in ID tokens.
	Audience string
}

// AuthResponse contains the signed-in user and the issued session token.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
	Role        string `json:"role,omitempty"`
	NewUser     bool   `json:"newUser"`
}
