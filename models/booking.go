package models

import "time"

// Booking lifecycle statuses. A booking is created pendingPayment and moves
// to exactly one of confirmed or rejected; both are terminal.
const (
	BookingStatusPendingPayment = "pendingPayment"
	BookingStatusConfirmed      = "confirmed"
	BookingStatusRejected       = "rejected"
)

// Payment types the counterpart may pick when confirming a booking.
const (
	PaymentTypeKisses = "kisses"
	PaymentTypeHugs   = "hugs"
	PaymentTypeFood   = "food"
)

// AllowedPaymentTypes lists the recognized payment type tokens.
var AllowedPaymentTypes = map[string]bool{
	PaymentTypeKisses: true,
	PaymentTypeHugs:   true,
	PaymentTypeFood:   true,
}

// Booking represents a proposed meetup between two users.
type Booking struct {
	ID             string    `bson:"id" json:"id"`                             // Unique booking identifier (UUID)
	FromUserID     string    `bson:"fromUserId" json:"fromUserId"`             // Initiator
	FromUserName   string    `bson:"fromUserName" json:"fromUserName"`         // Initiator display name at creation time
	TargetUserID   string    `bson:"targetUserId" json:"targetUserId"`         // Counterpart; sole approve/reject authority
	TargetUserName string    `bson:"targetUserName" json:"targetUserName"`     // Counterpart display name at creation time
	DateTime       time.Time `bson:"dateTime" json:"dateTime"`                 // Scheduled instant; zero value sorts first
	Location       string    `bson:"location,omitempty" json:"location,omitempty"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	Status         string    `bson:"status" json:"status"`
	PaymentType    string    `bson:"paymentType" json:"paymentType"` // Empty until the counterpart confirms
}

// Terminal reports whether the booking has reached a final status.
func (b *Booking) Terminal() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusRejected
}

// NeedsApproval reports whether the given viewer is expected to act on the
// booking: the viewer is its counterpart and payment is still pending.
func (b *Booking) NeedsApproval(viewerID string) bool {
	return b.TargetUserID == viewerID && b.Status == BookingStatusPendingPayment
}

// BookingInput carries the fields a client supplies when creating a booking.
type BookingInput struct {
	TargetUserID string    `json:"targetUserId"`
	DateTime     time.Time `json:"dateTime"`
	Location     string    `json:"location,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}
