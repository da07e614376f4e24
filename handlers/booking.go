package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dateplanner/models"
	"dateplanner/services/booking"
)

// BookingHandler exposes the booking lifecycle endpoints and the live feed.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// bookingView is a booking plus the viewer-derived approval flag.
type bookingView struct {
	models.Booking
	NeedsApproval bool `json:"needsApproval"`
}

func viewsFor(bookings []models.Booking, viewerID string) []bookingView {
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, bookingView{
			Booking:       b,
			NeedsApproval: b.NeedsApproval(viewerID),
		})
	}
	return views
}

// CreateBooking creates a new pending booking against the caller's partner.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.CreateBooking(userID, input)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": created})
}

// ApproveBooking confirms a pending booking with the chosen payment type.
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		PaymentType string `json:"paymentType"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.ApproveBooking(userID, c.Param("id"), input.PaymentType); err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking approved"})
}

// RejectBooking rejects a pending booking.
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Svc.RejectBooking(userID, c.Param("id")); err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking rejected"})
}

// ListBookings returns the merged view of both sides of the caller's bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.Svc.ListBookings(userID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": viewsFor(bookings, userID)})
}

// StreamBookings streams the merged live view over server-sent events until
// the client disconnects.
func (h *BookingHandler) StreamBookings(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx := c.Request.Context()
	ch, err := h.Svc.StreamBookings(ctx, userID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case view, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("bookings", viewsFor(view, userID))
			return true
		case <-ctx.Done():
			return false
		}
	})
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var (
		validation booking.ValidationError
		authz      booking.AuthorizationError
		notFound   booking.NotFoundError
		conflict   booking.ConflictError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.As(err, &authz):
		c.JSON(http.StatusForbidden, gin.H{"error": authz.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
	default:
		h.Logger.Error("Booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking operation failed"})
	}
}
