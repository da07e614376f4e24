package models

import "time"

// User roles. Each user carries exactly one and is paired with the
// first-found user of the complementary role.
const (
	RoleBoyfriend  = "bf"
	RoleGirlfriend = "gf"
)

// OppositeRole returns the complementary role, or "" for an unknown role.
func OppositeRole(role string) string {
	switch role {
	case RoleBoyfriend:
		return RoleGirlfriend
	case RoleGirlfriend:
		return RoleBoyfriend
	default:
		return ""
	}
}

// User represents a platform user profile.
type User struct {
	ID          string    `bson:"id" json:"id"`
	DisplayName string    `bson:"displayName" json:"displayName"`
	Email       string    `bson:"email" json:"email"`
	PhotoURL    string    `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role        string    `bson:"role" json:"role"`
	TokenHash   string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserUpdateRequest carries the profile fields a user may change.
type UserUpdateRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}
