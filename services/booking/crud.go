package booking

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"dateplanner/models"
	"dateplanner/utils"
)

// CreateBooking validates the request, resolves both participants and
// persists the booking in a single insert. New bookings always start
// pendingPayment with an empty payment type.
func (s *DefaultBookingService) CreateBooking(actorID string, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if actorID == "" {
		return nil, AuthorizationError{Message: "no authenticated user"}
	}
	if input.TargetUserID == "" {
		return nil, ValidationError{Message: "targetUserId is required"}
	}
	if input.TargetUserID == actorID {
		return nil, ValidationError{Message: "cannot book a date with yourself"}
	}
	if input.DateTime.IsZero() {
		return nil, ValidationError{Message: "dateTime is required"}
	}

	initiator, err := s.UserRepo.GetByID(actorID)
	if err != nil {
		return nil, WriteFailedError{Err: err}
	}
	if initiator == nil {
		return nil, NotFoundError{Resource: "user", ID: actorID}
	}

	target, err := s.UserRepo.GetByID(input.TargetUserID)
	if err != nil {
		return nil, WriteFailedError{Err: err}
	}
	if target == nil {
		return nil, NotFoundError{Resource: "user", ID: input.TargetUserID}
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		FromUserID:     initiator.ID,
		FromUserName:   initiator.DisplayName,
		TargetUserID:   target.ID,
		TargetUserName: target.DisplayName,
		DateTime:       input.DateTime,
		Location:       input.Location,
		Notes:          input.Notes,
		CreatedAt:      time.Now(),
		Status:         models.BookingStatusPendingPayment,
		PaymentType:    "",
	}

	if err := s.Repo.Create(booking); err != nil {
		logger.Error("Failed to create booking",
			zap.String("fromUserId", actorID), zap.Error(err))
		return nil, WriteFailedError{Err: err}
	}

	logger.Info("Booking created",
		zap.String("bookingId", booking.ID),
		zap.String("fromUserId", booking.FromUserID),
		zap.String("targetUserId", booking.TargetUserID))
	return booking, nil
}

// ApproveBooking transitions a pending booking to confirmed, recording the
// chosen payment type. The update is guarded on the prior status so two
// concurrent decisions cannot both succeed.
func (s *DefaultBookingService) ApproveBooking(actorID, bookingID, paymentType string) error {
	if paymentType == "" {
		return ValidationError{Message: "paymentType is required to approve"}
	}
	if !models.AllowedPaymentTypes[paymentType] {
		return ValidationError{Message: "unrecognized paymentType: " + paymentType}
	}

	return s.decide(actorID, bookingID, bson.M{
		"status":      models.BookingStatusConfirmed,
		"paymentType": paymentType,
	})
}

// RejectBooking transitions a pending booking to rejected. The payment type
// is left untouched.
func (s *DefaultBookingService) RejectBooking(actorID, bookingID string) error {
	return s.decide(actorID, bookingID, bson.M{
		"status": models.BookingStatusRejected,
	})
}

// decide applies a counterpart decision with the shared authority and
// status-guard checks.
func (s *DefaultBookingService) decide(actorID, bookingID string, updateDoc bson.M) error {
	logger := utils.GetLogger()

	if actorID == "" {
		return AuthorizationError{Message: "no authenticated user"}
	}

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return WriteFailedError{Err: err}
	}
	if booking == nil {
		return NotFoundError{Resource: "booking", ID: bookingID}
	}
	if booking.TargetUserID != actorID {
		return AuthorizationError{Message: "only the booking counterpart may approve or reject"}
	}
	if booking.Terminal() {
		return ConflictError{BookingID: bookingID, Status: booking.Status}
	}

	matched, err := s.Repo.UpdateIfStatus(bookingID, models.BookingStatusPendingPayment, updateDoc)
	if err != nil {
		logger.Error("Failed to update booking status",
			zap.String("bookingId", bookingID), zap.Error(err))
		return WriteFailedError{Err: err}
	}
	if !matched {
		// The booking moved on between the read and the guarded write.
		current, err := s.Repo.GetByID(bookingID)
		if err == nil && current != nil {
			return ConflictError{BookingID: bookingID, Status: current.Status}
		}
		return NotFoundError{Resource: "booking", ID: bookingID}
	}

	logger.Info("Booking decision applied",
		zap.String("bookingId", bookingID), zap.Any("update", updateDoc))
	return nil
}
