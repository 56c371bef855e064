package dto

import (
	"trekdesk/internal/domains/user/model"
	"trekdesk/shared"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/timezone"
)

type UserResponse struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.FullName = user.FullName
	r.Email = user.Email
	r.PhoneNumber = user.PhoneNumber
	r.Status = user.Status()
	r.Metadata.FromModel(user.Metadata)
}

type UserListItemResponse struct {
	UserResponse
	TotalBookings int     `json:"total_bookings"`
	TotalSpent    float64 `json:"total_spent"`
}

type GetUsersResponse struct {
	Users     []UserListItemResponse `json:"users"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(items []model.ListItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserListItemResponse, len(items))
	for i, item := range items {
		r.Users[i].FromModel(item.User)
		r.Users[i].TotalBookings = item.TotalBookings
		r.Users[i].TotalSpent = item.TotalSpent
	}
}

type UserBookingResponse struct {
	BookingID        int64   `json:"booking_id"`
	BookingReference string  `json:"booking_reference"`
	TrekID           int64   `json:"trek_id"`
	TrekName         string  `json:"trek_name"`
	Location         string  `json:"location"`
	Category         string  `json:"category"`
	Difficulty       string  `json:"difficulty"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Participants     int     `json:"participants"`
	TotalAmount      float64 `json:"total_amount"`
	PaymentStatus    string  `json:"payment_status"`
	BookingStatus    string  `json:"booking_status"`
	CreatedAt        string  `json:"created_at"`
}

func (r *UserBookingResponse) FromModel(booking model.Booking) {
	r.BookingID = booking.BookingID
	r.BookingReference = booking.BookingReference
	r.TrekID = booking.TrekID
	r.TrekName = booking.TrekName
	r.Location = booking.Location
	r.Category = booking.Category
	r.Difficulty = booking.Difficulty
	r.StartDate = booking.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = booking.EndDate.Format(constant.DateOnlyFormat)
	r.Participants = booking.Participants
	r.TotalAmount = booking.TotalAmount
	r.PaymentStatus = booking.PaymentStatus
	r.BookingStatus = booking.BookingStatus
	r.CreatedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)
}

// UserDetailResponse is a profile with every booking of the user, newest first.
// The totals are computed from the same bookings.
type UserDetailResponse struct {
	User          UserResponse          `json:"user"`
	TotalBookings int                   `json:"total_bookings"`
	TotalSpent    float64               `json:"total_spent"`
	Bookings      []UserBookingResponse `json:"bookings"`
}

func (r *UserDetailResponse) FromModel(user model.User, bookings []model.Booking) {
	r.User.FromModel(user)
	r.TotalBookings = len(bookings)
	r.TotalSpent = 0

	r.Bookings = make([]UserBookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
		r.TotalSpent += booking.TotalAmount
	}
}
