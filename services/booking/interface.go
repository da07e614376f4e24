package booking

import (
	"context"

	bookingRepo "dateplanner/database/repository/booking"
	userRepo "dateplanner/database/repository/user"
	"dateplanner/models"
)

// BookingService owns the booking lifecycle: creation by the initiator,
// approve/reject by the counterpart, and the merged live view of both sides.
type BookingService interface {
	// CreateBooking persists a new booking from actorID to the counterpart
	// named in the input, with status pendingPayment and no payment type.
	CreateBooking(actorID string, input models.BookingInput) (*models.Booking, error)
	// ApproveBooking confirms a pending booking. Only the counterpart may
	// call it, and a recognized payment type must be supplied.
	ApproveBooking(actorID, bookingID, paymentType string) error
	// RejectBooking rejects a pending booking. Only the counterpart may call it.
	RejectBooking(actorID, bookingID string) error
	// ListBookings returns the merged, deduplicated view of bookings where
	// the viewer is initiator or counterpart, ordered by ascending date-time.
	ListBookings(viewerID string) ([]models.Booking, error)
	// StreamBookings emits the merged view on every change from either side
	// until ctx is cancelled.
	StreamBookings(ctx context.Context, viewerID string) (<-chan []models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	UserRepo userRepo.UserRepository
}
