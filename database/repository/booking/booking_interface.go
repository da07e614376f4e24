package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"dateplanner/models"
)

// BookingRepository defines methods for booking data access. Snapshot
// subscriptions deliver the full matching result set on every change, not
// deltas, mirroring a live query.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Booking, error)
	// ListByInitiator retrieves all bookings created by the given user,
	// in no particular order.
	ListByInitiator(userID string) ([]models.Booking, error)
	// ListByCounterpart retrieves all bookings targeting the given user.
	ListByCounterpart(userID string) ([]models.Booking, error)
	// UpdateIfStatus applies a partial $set update only when the booking
	// currently carries expectedStatus. Returns false when no document
	// matched (absent booking or status already moved on).
	UpdateIfStatus(id, expectedStatus string, updateDoc bson.M) (bool, error)
	// SubscribeByInitiator streams full snapshots of the initiator-filtered
	// booking set. The initial snapshot is delivered eagerly; the channel
	// closes when ctx is cancelled.
	SubscribeByInitiator(ctx context.Context, userID string) (<-chan []models.Booking, error)
	// SubscribeByCounterpart streams full snapshots of the counterpart-filtered
	// booking set, with the same delivery contract.
	SubscribeByCounterpart(ctx context.Context, userID string) (<-chan []models.Booking, error)
}
