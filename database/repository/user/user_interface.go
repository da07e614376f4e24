package userRepo

import (
	"go.mongodb.org/mongo-driver/bson"

	"dateplanner/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil when absent.
	GetByEmail(email string) (*models.User, error)
	// FindFirstByRole retrieves the first user carrying the given role, or nil
	// when none exists. Under multiple candidates the pick is whichever the
	// store returns first; no ordering is defined.
	FindFirstByRole(role string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateSetDocument applies a partial $set update to the user record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
