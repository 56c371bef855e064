package model

import (
	"time"
	"trekdesk/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldFullName    = "full_name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
	FieldIsActive    = "is_active"
)

const (
	StateActive   = 1
	StateInactive = 2
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusBlocked  = "blocked"
)

type User struct {
	ID          int64  `db:"id"           generated:"true"`
	FullName    string `db:"full_name"`
	Email       string `db:"email"`
	PhoneNumber string `db:"phone_number"`
	IsActive    int    `db:"is_active"`
	model.Metadata
}

// Status maps the stored state to its label. Unknown states read as blocked.
func (u User) Status() string {
	switch u.IsActive {
	case StateActive:
		return StatusActive
	case StateInactive:
		return StatusInactive
	default:
		return StatusBlocked
	}
}

// ListItem is a user with totals over all of their bookings.
type ListItem struct {
	User
	TotalBookings int     `db:"total_bookings"`
	TotalSpent    float64 `db:"total_spent"`
}

// Booking is one booking of a user joined with its trek.
type Booking struct {
	BookingID        int64     `db:"booking_id"`
	BookingReference string    `db:"booking_reference"`
	TrekID           int64     `db:"trek_id"`
	TrekName         string    `db:"trek_name"`
	Location         string    `db:"location"`
	Category         string    `db:"category"`
	Difficulty       string    `db:"difficulty"`
	StartDate        time.Time `db:"start_date"`
	EndDate          time.Time `db:"end_date"`
	Participants     int       `db:"participants"`
	TotalAmount      float64   `db:"total_amount"`
	PaymentStatus    string    `db:"payment_status"`
	BookingStatus    string    `db:"booking_status"`
	CreatedAt        time.Time `db:"created_at"`
}
