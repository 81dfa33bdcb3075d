// File: coworkly/handlers/handlerBundle.go
package handlers

import (
	bookingRepoPkg "coworkly/database/repository/booking"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	BookingRepo bookingRepoPkg.BookingRepository

	// Chat endpoint
	ChatHandler gin.HandlerFunc

	// Search endpoint
	SearchHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
}
