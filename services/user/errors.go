package user

import "fmt"

// NotFoundError indicates the requested user or partner does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// AuthError indicates sign-in could not resolve a valid identity.
type AuthError struct {
	Message string
}

func (e AuthError) Error() string {
	return e.Message
}
