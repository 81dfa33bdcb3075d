package handlers

import (
	"net/http"

	bookingRepoPkg "coworkly/database/repository/booking"
	"coworkly/models"
	"coworkly/services/tools"
	"coworkly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateBookingRequest is the direct-booking payload: the signed-in user
// plus the booking details the assistant would otherwise collect. The
// sign-in check lives in the tool layer so it stays a soft failure.
type CreateBookingRequest struct {
	User    models.User            `json:"user"`
	Booking models.BookingToolArgs `json:"booking"`
}

// CreateBookingHandler books a space without going through the assistant.
func CreateBookingHandler(svc *tools.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid booking request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Booking.CoworkingName == "" || req.Booking.Time == "" || req.Booking.Duration == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required booking fields: coworkingName, time, duration"})
			return
		}

		res := svc.CreateBooking(req.User, req.Booking)
		if !res.Success {
			c.JSON(http.StatusOK, res)
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}

// ListBookingsHandler returns a user's bookings, newest first.
func ListBookingsHandler(repo bookingRepoPkg.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: email"})
			return
		}

		bookings, err := repo.ListByEmail(email)
		if err != nil {
			logger.Error("Failed to list bookings",
				zap.String("email", email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"bookings": bookings, "total": len(bookings)})
	}
}
