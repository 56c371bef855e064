package dto

import (
	"time"
	"trekdesk/internal/domains/booking/model"
	"trekdesk/shared"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
)

type BookingResponse struct {
	ID               int64   `json:"id"`
	BookingReference string  `json:"booking_reference"`
	UserID           *int64  `json:"user_id"`
	TrekID           int64   `json:"trek_id"`
	BatchID          int64   `json:"batch_id"`
	CustomerName     string  `json:"customer_name"`
	CustomerEmail    string  `json:"customer_email"`
	CustomerPhone    string  `json:"customer_phone"`
	TrekName         string  `json:"trek_name"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Participants     int     `json:"participants"`
	TotalAmount      float64 `json:"total_amount"`
	PaidAmount       float64 `json:"paid_amount"`
	BalanceAmount    float64 `json:"balance_amount"`
	BookingStatus    string  `json:"booking_status"`
	PaymentStatus    string  `json:"payment_status"`
	CompletedAt      *string `json:"completed_at,omitempty"`
	CancelledAt      *string `json:"cancelled_at,omitempty"`
	gDto.Metadata
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(constant.DateFormat)

	return &formatted
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BookingReference = booking.BookingReference
	r.UserID = booking.UserID
	r.TrekID = booking.TrekID
	r.BatchID = booking.BatchID
	r.CustomerName = booking.CustomerName
	r.CustomerEmail = booking.CustomerEmail
	r.CustomerPhone = booking.CustomerPhone
	r.TrekName = booking.TrekName
	r.StartDate = booking.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = booking.EndDate.Format(constant.DateOnlyFormat)
	r.Participants = booking.Participants
	r.TotalAmount = booking.TotalAmount
	r.PaidAmount = booking.PaidAmount
	r.BalanceAmount = booking.BalanceAmount
	r.BookingStatus = booking.BookingStatus
	r.PaymentStatus = booking.PaymentStatus
	r.CompletedAt = formatOptional(booking.CompletedAt)
	r.CancelledAt = formatOptional(booking.CancelledAt)
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type ParticipantResponse struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	IDProof   string `json:"id_proof"`
	IsPrimary bool   `json:"is_primary"`
}

type AddonResponse struct {
	AddonName  string  `json:"addon_name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type BatchBookingResponse struct {
	BookingResponse
	ParticipantList []ParticipantResponse `json:"participant_list"`
	Addons          []AddonResponse       `json:"addons"`
}

type GetBatchBookingsResponse struct {
	Bookings []BatchBookingResponse `json:"bookings"`
}

func (r *GetBatchBookingsResponse) FromModels(bookings []model.Booking, participants []model.Participant, addons []model.Addon) {
	participantsByBooking := map[int64][]ParticipantResponse{}
	for _, participant := range participants {
		participantsByBooking[participant.BookingID] = append(participantsByBooking[participant.BookingID], ParticipantResponse{
			Name:      participant.Name,
			Age:       participant.Age,
			Gender:    participant.Gender,
			IDProof:   participant.IDProof,
			IsPrimary: participant.IsPrimary,
		})
	}

	addonsByBooking := map[int64][]AddonResponse{}
	for _, addon := range addons {
		addonsByBooking[addon.BookingID] = append(addonsByBooking[addon.BookingID], AddonResponse{
			AddonName:  addon.AddonName,
			Quantity:   addon.Quantity,
			UnitPrice:  addon.UnitPrice,
			TotalPrice: addon.TotalPrice,
		})
	}

	r.Bookings = make([]BatchBookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
		r.Bookings[i].ParticipantList = participantsByBooking[booking.ID]
		r.Bookings[i].Addons = addonsByBooking[booking.ID]

		if r.Bookings[i].ParticipantList == nil {
			r.Bookings[i].ParticipantList = []ParticipantResponse{}
		}

		if r.Bookings[i].Addons == nil {
			r.Bookings[i].Addons = []AddonResponse{}
		}
	}
}

// BookingCompletedEvent is the payload published for every swept booking.
type BookingCompletedEvent struct {
	BookingID        int64  `json:"booking_id"`
	BookingReference string `json:"booking_reference"`
	CustomerName     string `json:"customer_name"`
	TrekName         string `json:"trek_name"`
	CompletedAt      string `json:"completed_at"`
}

func (e *BookingCompletedEvent) FromModel(booking model.Booking, completedAt time.Time) {
	e.BookingID = booking.ID
	e.BookingReference = booking.BookingReference
	e.CustomerName = booking.CustomerName
	e.TrekName = booking.TrekName
	e.CompletedAt = completedAt.Format(constant.DateFormat)
}

type SweepResponse struct {
	Completed int64                   `json:"completed"`
	Bookings  []BookingCompletedEvent `json:"bookings"`
}
