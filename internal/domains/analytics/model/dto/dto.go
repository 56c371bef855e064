package dto

import (
	"fmt"
	"trekdesk/internal/domains/analytics/model"
	"trekdesk/shared/constant"
	"trekdesk/shared/timezone"
)

const (
	monthLayout = "Jan 2006"
	noGrowth    = "0%"
)

type MonthlyRevenueResponse struct {
	Month    string  `json:"month"`
	Bookings int     `json:"bookings"`
	Amount   float64 `json:"amount"`
}

type TrekRevenueResponse struct {
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type RevenueResponse struct {
	TotalBookings       int                      `json:"total_bookings"`
	TotalRevenue        float64                  `json:"total_revenue"`
	AverageBookingValue float64                  `json:"average_booking_value"`
	MonthlyData         []MonthlyRevenueResponse `json:"monthly_data"`
	TrekRevenue         []TrekRevenueResponse    `json:"trek_revenue"`
	MonthlyGrowth       string                   `json:"monthly_growth"`
}

func (r *RevenueResponse) FromModels(totals model.RevenueTotals, months []model.MonthlyRevenue, treks []model.TrekRevenue) {
	r.TotalBookings = totals.TotalBookings
	r.TotalRevenue = totals.TotalRevenue
	r.AverageBookingValue = totals.AverageBookingValue
	r.MonthlyGrowth = MonthlyGrowth(months)

	r.MonthlyData = make([]MonthlyRevenueResponse, len(months))
	for i, month := range months {
		r.MonthlyData[i] = MonthlyRevenueResponse{
			Month:    month.Month.Format(monthLayout),
			Bookings: month.Bookings,
			Amount:   month.Amount,
		}
	}

	r.TrekRevenue = make([]TrekRevenueResponse, len(treks))
	for i, trek := range treks {
		r.TrekRevenue[i] = TrekRevenueResponse(trek)
	}
}

// MonthlyGrowth compares the last two months of an ascending series, e.g. "+12.5%".
// Fewer than two months, or an empty previous month, reads as "0%".
func MonthlyGrowth(months []model.MonthlyRevenue) string {
	if len(months) < 2 {
		return noGrowth
	}

	current := months[len(months)-1].Amount
	previous := months[len(months)-2].Amount

	if previous == 0 {
		return noGrowth
	}

	return fmt.Sprintf("%+.1f%%", (current-previous)/previous*100)
}

type RecentBookingResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customer_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	TrekName      string  `json:"trek_name"`
	Participants  int     `json:"participants"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	BookingDate   string  `json:"booking_date"`
}

type DashboardResponse struct {
	TotalUsers     int                     `json:"total_users"`
	ActiveUsers    int                     `json:"active_users"`
	TotalTreks     int                     `json:"total_treks"`
	TotalBookings  int                     `json:"total_bookings"`
	TotalRevenue   float64                 `json:"total_revenue"`
	RecentBookings []RecentBookingResponse `json:"recent_bookings"`
}

func (r *DashboardResponse) FromModels(counts model.DashboardCounts, bookings []model.RecentBooking) {
	r.TotalUsers = counts.TotalUsers
	r.ActiveUsers = counts.ActiveUsers
	r.TotalTreks = counts.TotalTreks
	r.TotalBookings = counts.TotalBookings
	r.TotalRevenue = counts.TotalRevenue

	r.RecentBookings = make([]RecentBookingResponse, len(bookings))
	for i, booking := range bookings {
		r.RecentBookings[i] = RecentBookingResponse{
			ID:            booking.ID,
			CustomerName:  booking.CustomerName,
			Email:         booking.CustomerEmail,
			Phone:         booking.CustomerPhone,
			TrekName:      booking.TrekName,
			Participants:  booking.Participants,
			Amount:        booking.TotalAmount,
			Status:        booking.BookingStatus,
			PaymentStatus: booking.PaymentStatus,
			BookingDate:   timezone.Format(booking.CreatedAt, constant.DateOnlyFormat),
		}
	}
}
