package models

import "time"

// User identifies the booking owner; email is the natural key.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingData is the payload persisted for a confirmed booking. The address
// and coordinates come from the catalog record, not from the user.
type BookingData struct {
	Coworking string   `json:"coworking"`
	Date      string   `json:"date"` // "YYYY-MM-DD"
	Time      string   `json:"time"` // 24h clock, e.g. "09:00"
	Duration  string   `json:"duration"`
	Price     string   `json:"price"`
	Timezone  string   `json:"timezone"`
	Address   string   `json:"address,omitempty"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
}

// SavedBooking is a booking row as read back from the database.
type SavedBooking struct {
	ID            string    `json:"id"`
	UserEmail     string    `json:"user_email"`
	CoworkingName string    `json:"coworking_name"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Duration      string    `json:"duration"`
	Price         string    `json:"price"`
	Address       string    `json:"address,omitempty"`
	Lat           *float64  `json:"lat,omitempty"`
	Lng           *float64  `json:"lng,omitempty"`
	Timezone      string    `json:"timezone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingToolArgs is the agent-facing input for creating a booking.
type BookingToolArgs struct {
	CoworkingName string `json:"coworkingName"`
	Time          string `json:"time"`
	Duration      string `json:"duration"` // "2h", "4h", "6h", "8h" or "Full day"
	Date          string `json:"date,omitempty"`
}

// BookingToolResult is the uniform payload returned to the agent layer.
type BookingToolResult struct {
	Success        bool         `json:"success"`
	Booking        *BookingData `json:"booking,omitempty"`
	Message        string       `json:"message"`
	ConfirmationID string       `json:"confirmationId,omitempty"`
	Error          string       `json:"error,omitempty"`
}
