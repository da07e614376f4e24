package booking

import "fmt"

// NotFoundError indicates the referenced booking or user does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// AuthorizationError indicates the caller is not allowed to act on the booking.
type AuthorizationError struct {
	Message string
}

func (e AuthorizationError) Error() string {
	return e.Message
}

// ValidationError indicates missing or malformed booking input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ConflictError indicates the booking already reached a terminal status and
// cannot transition again.
type ConflictError struct {
	BookingID string
	Status    string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("booking %s is already %s", e.BookingID, e.Status)
}

// WriteFailedError wraps a store write failure. The caller's local state is
// left at its last-known-good value; the action must be re-initiated manually.
type WriteFailedError struct {
	Err error
}

func (e WriteFailedError) Error() string {
	return fmt.Sprintf("store write failed: %v", e.Err)
}

func (e WriteFailedError) Unwrap() error {
	return e.Err
}
