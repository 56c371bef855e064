package model

import (
	"time"
	"trekdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldBookingReference = "booking_reference"
	FieldUserID           = "user_id"
	FieldTrekID           = "trek_id"
	FieldBatchID          = "batch_id"
	FieldCustomerName     = "customer_name"
	FieldBookingStatus    = "booking_status"
	FieldPaymentStatus    = "payment_status"
	FieldCompletedAt      = "completed_at"
)

const (
	ParticipantTableName  = "booking_participants"
	ParticipantEntityName = "booking_participant"
	AddonTableName        = "booking_addons"
	AddonEntityName       = "booking_addon"

	FieldBookingID = "booking_id"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	PaymentStatusPaid = "paid"
)

type Booking struct {
	ID               int64      `db:"id"                generated:"true"`
	BookingReference string     `db:"booking_reference"`
	UserID           *int64     `db:"user_id"`
	TrekID           int64      `db:"trek_id"`
	BatchID          int64      `db:"batch_id"`
	CustomerName     string     `db:"customer_name"`
	CustomerEmail    string     `db:"customer_email"`
	CustomerPhone    string     `db:"customer_phone"`
	TrekName         string     `db:"trek_name"`
	StartDate        time.Time  `db:"start_date"`
	EndDate          time.Time  `db:"end_date"`
	Participants     int        `db:"participants"`
	TotalAmount      float64    `db:"total_amount"`
	PaidAmount       float64    `db:"paid_amount"`
	BalanceAmount    float64    `db:"balance_amount"`
	BookingStatus    string     `db:"booking_status"`
	PaymentStatus    string     `db:"payment_status"`
	CompletedAt      *time.Time `db:"completed_at"`
	CancelledAt      *time.Time `db:"cancelled_at"`
	model.Metadata
}

type Participant struct {
	ID        int64  `db:"id"         generated:"true"`
	BookingID int64  `db:"booking_id"`
	Name      string `db:"name"`
	Age       int    `db:"age"`
	Gender    string `db:"gender"`
	IDProof   string `db:"id_proof"`
	IsPrimary bool   `db:"is_primary"`
}

type Addon struct {
	ID         int64   `db:"id"          generated:"true"`
	BookingID  int64   `db:"booking_id"`
	AddonName  string  `db:"addon_name"`
	Quantity   int     `db:"quantity"`
	UnitPrice  float64 `db:"unit_price"`
	TotalPrice float64 `db:"total_price"`
}
