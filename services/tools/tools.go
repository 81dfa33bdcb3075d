// Package tools implements the agent-callable tools. Every tool converts
// internal failures into a uniform payload at this boundary: error detail is
// dropped by design so the agent-facing contract stays simple and stable.
package tools

import (
	"fmt"
	"strings"
	"time"

	bookingRepo "coworkly/database/repository/booking"
	"coworkly/models"
	"coworkly/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	searchFailedMsg  = "Failed to search coworking spaces"
	bookingFailedMsg = "Booking failed"
	bookingRetryMsg  = "Unable to complete booking. Please try again."
	signInFirstMsg   = "Please sign in before booking a space."

	// Shown when the catalog has no record for the booked name.
	priceFallback = "Contact for pricing"

	// All catalog spaces are in Montreal.
	bookingTimezone = "America/Toronto"
)

// Service exposes the agent-callable tools.
type Service struct {
	Engine   *search.Engine
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// NewService wires the tool layer.
func NewService(engine *search.Engine, bookings bookingRepo.BookingRepository, logger *zap.Logger) *Service {
	return &Service{Engine: engine, Bookings: bookings, Logger: logger}
}

// SearchCoworkings runs the coworking search with the agent's filters. The
// amenity list replaces the free-text query when present, and a team-size
// hint widens the query towards spaces that fit groups. The price ceiling is
// applied to both result sets after ranking.
func (s *Service) SearchCoworkings(args models.SearchToolArgs) models.SearchToolResult {
	enhanced := args.Query
	if len(args.Amenities) > 0 {
		enhanced = strings.Join(args.Amenities, ", ")
	}
	if args.TeamSize != "" {
		enhanced += " meeting room large space"
	}

	res, err := s.Engine.Search(models.SearchRequest{
		City:     args.City,
		District: args.District,
		Query:    enhanced,
		Max:      args.Max,
	})
	if err != nil {
		s.Logger.Error("coworking search failed", zap.Error(err))
		return models.SearchToolResult{
			Success:    false,
			Error:      searchFailedMsg,
			Coworkings: []models.CoworkingSpace{},
			Fallback:   []models.CoworkingSpace{},
		}
	}

	coworkings := filterByMaxPrice(res.Coworkings, args.MaxPrice)
	fallback := filterByMaxPrice(res.Fallback, args.MaxPrice)

	return models.SearchToolResult{
		Success:    true,
		Coworkings: coworkings,
		Fallback:   fallback,
		Total:      len(coworkings) + len(fallback),
		AppliedFilters: &models.AppliedFilters{
			MaxPrice:  args.MaxPrice,
			TeamSize:  args.TeamSize,
			Amenities: args.Amenities,
		},
	}
}

// CreateBooking confirms a booking for a signed-in user. The space name is
// searched (max 1) to enrich the record with authoritative price, address
// and coordinates before persisting.
func (s *Service) CreateBooking(user models.User, args models.BookingToolArgs) models.BookingToolResult {
	if user.Email == "" {
		return models.BookingToolResult{
			Success: false,
			Error:   bookingFailedMsg,
			Message: signInFirstMsg,
		}
	}

	date := args.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	res, err := s.Engine.Search(models.SearchRequest{
		City:  models.DefaultCity,
		Query: args.CoworkingName,
		Max:   1,
	})
	if err != nil {
		s.Logger.Error("booking enrichment search failed", zap.Error(err))
		return models.BookingToolResult{
			Success: false,
			Error:   bookingFailedMsg,
			Message: bookingRetryMsg,
		}
	}

	booking := &models.BookingData{
		Coworking: args.CoworkingName,
		Date:      date,
		Time:      args.Time,
		Duration:  args.Duration,
		Price:     priceFallback,
		Timezone:  bookingTimezone,
	}
	if len(res.Coworkings) > 0 {
		space := res.Coworkings[0]
		booking.Price = space.Price
		booking.Address = space.Address
		booking.Lat = space.Lat
		booking.Lng = space.Lng
	}

	if err := s.Bookings.Save(user, booking); err != nil {
		s.Logger.Error("failed to save booking",
			zap.String("email", user.Email), zap.Error(err))
		return models.BookingToolResult{
			Success: false,
			Error:   bookingFailedMsg,
			Message: bookingRetryMsg,
		}
	}

	return models.BookingToolResult{
		Success:        true,
		Booking:        booking,
		Message:        fmt.Sprintf("Booking confirmed for %s on %s at %s", args.CoworkingName, date, args.Time),
		ConfirmationID: "BK-" + uuid.New().String(),
	}
}
