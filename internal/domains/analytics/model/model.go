package model

import "time"

// RealizedStatuses are the booking statuses whose paid amount counts as revenue.
// Completed is included so the booking sweep does not erase revenue.
var RealizedStatuses = []string{"confirmed", "completed"}

const PaymentStatusPaid = "paid"

type RevenueTotals struct {
	TotalBookings       int     `db:"total_bookings"`
	TotalRevenue        float64 `db:"total_revenue"`
	AverageBookingValue float64 `db:"average_booking_value"`
}

type MonthlyRevenue struct {
	Month    time.Time `db:"month"`
	Bookings int       `db:"bookings"`
	Amount   float64   `db:"amount"`
}

type TrekRevenue struct {
	Name     string  `db:"name"`
	Bookings int     `db:"bookings"`
	Revenue  float64 `db:"revenue"`
}

type DashboardCounts struct {
	TotalUsers    int     `db:"total_users"`
	ActiveUsers   int     `db:"active_users"`
	TotalTreks    int     `db:"total_treks"`
	TotalBookings int     `db:"total_bookings"`
	TotalRevenue  float64 `db:"total_revenue"`
}

type RecentBooking struct {
	ID            int64     `db:"id"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	CustomerPhone string    `db:"customer_phone"`
	TrekName      string    `db:"trek_name"`
	Participants  int       `db:"participants"`
	TotalAmount   float64   `db:"total_amount"`
	BookingStatus string    `db:"booking_status"`
	PaymentStatus string    `db:"payment_status"`
	CreatedAt     time.Time `db:"created_at"`
}
