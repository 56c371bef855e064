package model

import (
	"time"
	"trekdesk/shared/model"
)

const (
	TableName  = "trek_batches"
	EntityName = "batch"

	FieldID              = "id"
	FieldTrekID          = "trek_id"
	FieldStartDate       = "start_date"
	FieldEndDate         = "end_date"
	FieldAvailableSlots  = "available_slots"
	FieldPrice           = "price"
	FieldMinAge          = "min_age"
	FieldMaxAge          = "max_age"
	FieldMinParticipants = "min_participants"
	FieldMaxParticipants = "max_participants"
	FieldDuration        = "duration"
	FieldStatus          = "status"
)

const (
	InclusionTableName  = "batch_inclusions"
	InclusionEntityName = "batch_inclusion"
	ExclusionTableName  = "batch_exclusions"
	ExclusionEntityName = "batch_exclusion"
	DayTableName        = "itinerary_days"
	DayEntityName       = "itinerary_day"
	ActivityTableName   = "itinerary_activities"
	ActivityEntityName  = "itinerary_activity"

	FieldBatchID      = "batch_id"
	FieldDayID        = "day_id"
	FieldDayNumber    = "day_number"
	FieldActivityTime = "activity_time"
)

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusFull      = "full"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Batch struct {
	ID              int64     `db:"id"               generated:"true"`
	TrekID          int64     `db:"trek_id"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	AvailableSlots  int       `db:"available_slots"`
	Price           float64   `db:"price"`
	MinAge          int       `db:"min_age"`
	MaxAge          int       `db:"max_age"`
	MinParticipants int       `db:"min_participants"`
	MaxParticipants int       `db:"max_participants"`
	Duration        string    `db:"duration"`
	Status          string    `db:"status"`
	model.Metadata
}

// IsCompleted reports whether the batch reached its terminal status.
func (b Batch) IsCompleted() bool {
	return b.Status == StatusCompleted
}

type Inclusion struct {
	ID        int64  `db:"id"        generated:"true"`
	BatchID   int64  `db:"batch_id"`
	Inclusion string `db:"inclusion"`
}

type Exclusion struct {
	ID        int64  `db:"id"        generated:"true"`
	BatchID   int64  `db:"batch_id"`
	Exclusion string `db:"exclusion"`
}

type ItineraryDay struct {
	ID        int64  `db:"id"         generated:"true"`
	BatchID   int64  `db:"batch_id"`
	DayNumber int    `db:"day_number"`
	Title     string `db:"title"`
}

type Activity struct {
	ID           int64  `db:"id"            generated:"true"`
	DayID        int64  `db:"day_id"`
	ActivityTime string `db:"activity_time"`
	ActivityText string `db:"activity_text"`
}

// Day is an itinerary day together with its activities, ordered by time.
type Day struct {
	ItineraryDay
	Activities []Activity
}

// Children is the owned content of a batch. It is always replaced as a whole.
type Children struct {
	Inclusions []string
	Exclusions []string
	Days       []Day
}

// Stats are derived from the bookings of a batch at read time.
type Stats struct {
	TotalBookings         int `db:"total_bookings"`
	TotalParticipants     int `db:"total_participants"`
	ConfirmedParticipants int `db:"confirmed_participants"`
	PendingParticipants   int `db:"pending_participants"`
	CompletedParticipants int `db:"completed_participants"`
}

// BookedSlots counts seats held by pending and confirmed bookings.
func (s Stats) BookedSlots() int {
	return s.ConfirmedParticipants + s.PendingParticipants
}

// View is a batch joined with its trek name and booking stats.
type View struct {
	Batch
	TrekName string `db:"trek_name"`
	Stats
}
