package bookingRepo

import "coworkly/models"

// BookingRepository persists confirmed bookings and their owning users.
type BookingRepository interface {
	// Save writes one confirmed booking. The user row is created on first
	// booking; email is the natural key.
	Save(user models.User, booking *models.BookingData) error
	// ListByEmail returns the user's bookings, newest first.
	ListByEmail(email string) ([]models.SavedBooking, error)
}
