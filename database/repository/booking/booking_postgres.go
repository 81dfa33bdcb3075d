package bookingRepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"coworkly/database"
	"coworkly/models"
	"coworkly/utils"

	"go.uber.org/zap"
)

// PostgresBookingRepo implements BookingRepository using Postgres.
type PostgresBookingRepo struct {
	db *sql.DB
}

// NewPostgresBookingRepo creates a new BookingRepository backed by the
// global Postgres handle.
func NewPostgresBookingRepo() BookingRepository {
	repo := &PostgresBookingRepo{db: database.DB}
	if err := repo.ensureSchema(); err != nil {
		utils.GetLogger().Error("failed to ensure booking schema", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureSchema creates the users and bookings tables on first run.
func (r *PostgresBookingRepo) ensureSchema() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			email      TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_email     TEXT NOT NULL REFERENCES users(email),
			coworking_name TEXT NOT NULL,
			date           TEXT NOT NULL,
			time           TEXT NOT NULL,
			duration       TEXT NOT NULL,
			price          TEXT NOT NULL,
			address        TEXT,
			lat            DOUBLE PRECISION,
			lng            DOUBLE PRECISION,
			timezone       TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS bookings_user_email_idx
			ON bookings (user_email, created_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run schema statement: %w", err)
		}
	}
	return nil
}

// Save persists a confirmed booking, creating the user row first if this is
// the user's first booking.
func (r *PostgresBookingRepo) Save(user models.User, booking *models.BookingData) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var email string
	err := r.db.QueryRowContext(ctx,
		`SELECT email FROM users WHERE email = $1`, user.Email).Scan(&email)
	if err == sql.ErrNoRows {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO users (name, email) VALUES ($1, $2)`,
			user.Name, user.Email); err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Email, err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to look up user %s: %w", user.Email, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO bookings
			(user_email, coworking_name, date, time, duration, price, address, lat, lng, timezone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.Email, booking.Coworking, booking.Date, booking.Time,
		booking.Duration, booking.Price, nullString(booking.Address),
		booking.Lat, booking.Lng, booking.Timezone)
	if err != nil {
		return fmt.Errorf("failed to save booking for %s: %w", user.Email, err)
	}
	return nil
}

// ListByEmail returns the user's bookings ordered newest first.
func (r *PostgresBookingRepo) ListByEmail(email string) ([]models.SavedBooking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_email, coworking_name, date, time, duration, price,
		        address, lat, lng, timezone, created_at
		 FROM bookings
		 WHERE user_email = $1
		 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", email, err)
	}
	defer rows.Close()

	bookings := []models.SavedBooking{}
	for rows.Next() {
		var b models.SavedBooking
		var address, timezone sql.NullString
		if err := rows.Scan(&b.ID, &b.UserEmail, &b.CoworkingName, &b.Date,
			&b.Time, &b.Duration, &b.Price, &address, &b.Lat, &b.Lng,
			&timezone, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to decode booking row: %w", err)
		}
		b.Address = address.String
		b.Timezone = timezone.String
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate booking rows: %w", err)
	}
	return bookings, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
