package dto

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"trekdesk/internal/domains/batch/model"
	"trekdesk/shared/constant"
	"trekdesk/shared/failure"
	gModel "trekdesk/shared/model"
	"trekdesk/shared/timezone"
)

type ActivityRequest struct {
	Time string `json:"time" validate:"required,clock"`
	Text string `json:"text" validate:"required,max=1000"`
}

type ItineraryDayRequest struct {
	DayNumber  int               `json:"day_number" validate:"required,min=1"`
	Title      string            `json:"title"      validate:"max=255"`
	Activities []ActivityRequest `json:"activities" validate:"dive"`
}

// BatchRequest is the desired state of one batch inside a trek payload.
// ID is optional and pins the request to an existing batch of the same trek.
type BatchRequest struct {
	ID              int64                 `json:"id,omitempty"     validate:"omitempty,min=1"`
	StartDate       string                `json:"start_date"       validate:"required,dateonly"`
	EndDate         string                `json:"end_date"         validate:"required,dateonly"`
	AvailableSlots  int                   `json:"available_slots"  validate:"min=0"`
	Price           float64               `json:"price"            validate:"min=0"`
	MinAge          int                   `json:"min_age"          validate:"min=0"`
	MaxAge          int                   `json:"max_age"          validate:"min=0"`
	MinParticipants int                   `json:"min_participants" validate:"min=0"`
	MaxParticipants int                   `json:"max_participants" validate:"min=0"`
	Duration        string                `json:"duration"         validate:"max=100"`
	Status          string                `json:"status"           validate:"omitempty,oneof=active inactive full cancelled completed"`
	Inclusions      []string              `json:"inclusions"`
	Exclusions      []string              `json:"exclusions"`
	ItineraryDays   []ItineraryDayRequest `json:"itinerary_days"   validate:"dive"`
}

// Validate checks the rules that span fields. position is 1-based and only used in messages.
func (b *BatchRequest) Validate(position int) error {
	start, err := timezone.ParseDate(b.StartDate)
	if err != nil {
		return failure.Validation(fmt.Sprintf("batch %d: start_date must be formatted as YYYY-MM-DD", position))
	}

	end, err := timezone.ParseDate(b.EndDate)
	if err != nil {
		return failure.Validation(fmt.Sprintf("batch %d: end_date must be formatted as YYYY-MM-DD", position))
	}

	if end.Before(start) {
		return failure.Validation(fmt.Sprintf("batch %d: end_date must not be before start_date", position))
	}

	if b.AvailableSlots < 0 {
		return failure.Validation(fmt.Sprintf("batch %d: available_slots must not be negative", position))
	}

	if b.MaxParticipants > 0 && b.MinParticipants > b.MaxParticipants {
		return failure.Validation(fmt.Sprintf("batch %d: min_participants must not exceed max_participants", position))
	}

	if b.MaxAge > 0 && b.MinAge > b.MaxAge {
		return failure.Validation(fmt.Sprintf("batch %d: min_age must not exceed max_age", position))
	}

	// completed may only echo a stored batch back; it never transitions one.
	if b.Status == model.StatusCompleted && b.ID == 0 {
		return failure.Validation(fmt.Sprintf("batch %d: status completed can only be set by completing the batch", position))
	}

	for _, day := range b.ItineraryDays {
		for _, activity := range day.Activities {
			if _, err := time.Parse(constant.ClockFormat, activity.Time); err != nil {
				return failure.Validation(fmt.Sprintf("batch %d day %d: activity time must be formatted as HH:MM", position, day.DayNumber))
			}
		}
	}

	return nil
}

// ToModel builds a new batch row for trekID. Dates must already be validated.
func (b *BatchRequest) ToModel(trekID int64) model.Batch {
	now := timezone.Now()

	batch := model.Batch{
		TrekID:   trekID,
		Status:   model.StatusActive,
		Metadata: gModel.Metadata{CreatedAt: now, UpdatedAt: now},
	}
	b.apply(&batch)

	if batch.IsCompleted() {
		batch.Status = model.StatusActive
	}

	return batch
}

// ToUpdateFields returns the scalar columns replaced on a paired batch.
// An empty status keeps the current one and a completed batch stays completed.
// A requested completed status never completes a batch that is still open.
func (b *BatchRequest) ToUpdateFields(current model.Batch) map[string]any {
	batch := current
	b.apply(&batch)

	switch {
	case current.IsCompleted():
		batch.Status = model.StatusCompleted
	case batch.Status == model.StatusCompleted:
		batch.Status = current.Status
	}

	return map[string]any{
		model.FieldStartDate:       batch.StartDate,
		model.FieldEndDate:         batch.EndDate,
		model.FieldAvailableSlots:  batch.AvailableSlots,
		model.FieldPrice:           batch.Price,
		model.FieldMinAge:          batch.MinAge,
		model.FieldMaxAge:          batch.MaxAge,
		model.FieldMinParticipants: batch.MinParticipants,
		model.FieldMaxParticipants: batch.MaxParticipants,
		model.FieldDuration:        batch.Duration,
		model.FieldStatus:          batch.Status,
		constant.FieldUpdatedAt:    timezone.Now(),
	}
}

func (b *BatchRequest) apply(batch *model.Batch) {
	batch.StartDate, _ = timezone.ParseDate(b.StartDate)
	batch.EndDate, _ = timezone.ParseDate(b.EndDate)
	batch.AvailableSlots = b.AvailableSlots
	batch.Price = b.Price
	batch.MinAge = b.MinAge
	batch.MaxAge = b.MaxAge
	batch.MinParticipants = b.MinParticipants
	batch.MaxParticipants = b.MaxParticipants
	batch.Duration = strings.TrimSpace(b.Duration)

	if b.Status != "" {
		batch.Status = b.Status
	}
}

// ToChildren normalizes the owned lists: blanks are dropped, days are sorted
// by day number and activities by time.
func (b *BatchRequest) ToChildren() model.Children {
	children := model.Children{
		Inclusions: compact(b.Inclusions),
		Exclusions: compact(b.Exclusions),
		Days:       make([]model.Day, 0, len(b.ItineraryDays)),
	}

	for _, day := range b.ItineraryDays {
		activities := make([]model.Activity, 0, len(day.Activities))

		for _, activity := range day.Activities {
			if strings.TrimSpace(activity.Text) == "" {
				continue
			}

			activities = append(activities, model.Activity{
				ActivityTime: activity.Time,
				ActivityText: strings.TrimSpace(activity.Text),
			})
		}

		slices.SortStableFunc(activities, func(a, b model.Activity) int {
			return strings.Compare(a.ActivityTime, b.ActivityTime)
		})

		children.Days = append(children.Days, model.Day{
			ItineraryDay: model.ItineraryDay{
				DayNumber: day.DayNumber,
				Title:     strings.TrimSpace(day.Title),
			},
			Activities: activities,
		})
	}

	slices.SortStableFunc(children.Days, func(a, b model.Day) int {
		return a.DayNumber - b.DayNumber
	})

	return children
}

func compact(values []string) []string {
	kept := make([]string, 0, len(values))

	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			kept = append(kept, value)
		}
	}

	return kept
}

type ActivityResponse struct {
	Time string `json:"time"`
	Text string `json:"text"`
}

type ItineraryDayResponse struct {
	DayNumber  int                `json:"day_number"`
	Title      string             `json:"title"`
	Activities []ActivityResponse `json:"activities"`
}

type BatchResponse struct {
	ID              int64                  `json:"id"`
	TrekID          int64                  `json:"trek_id"`
	StartDate       string                 `json:"start_date"`
	EndDate         string                 `json:"end_date"`
	AvailableSlots  int                    `json:"available_slots"`
	Price           float64                `json:"price"`
	MinAge          int                    `json:"min_age"`
	MaxAge          int                    `json:"max_age"`
	MinParticipants int                    `json:"min_participants"`
	MaxParticipants int                    `json:"max_participants"`
	Duration        string                 `json:"duration"`
	Status          string                 `json:"status"`
	Inclusions      []string               `json:"inclusions,omitempty"`
	Exclusions      []string               `json:"exclusions,omitempty"`
	ItineraryDays   []ItineraryDayResponse `json:"itinerary_days,omitempty"`
}

func (r *BatchResponse) FromModel(batch model.Batch) {
	r.ID = batch.ID
	r.TrekID = batch.TrekID
	r.StartDate = batch.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = batch.EndDate.Format(constant.DateOnlyFormat)
	r.AvailableSlots = batch.AvailableSlots
	r.Price = batch.Price
	r.MinAge = batch.MinAge
	r.MaxAge = batch.MaxAge
	r.MinParticipants = batch.MinParticipants
	r.MaxParticipants = batch.MaxParticipants
	r.Duration = batch.Duration
	r.Status = batch.Status
}

func (r *BatchResponse) WithChildren(children model.Children) {
	r.Inclusions = children.Inclusions
	r.Exclusions = children.Exclusions
	r.ItineraryDays = make([]ItineraryDayResponse, len(children.Days))

	for i, day := range children.Days {
		r.ItineraryDays[i] = ItineraryDayResponse{
			DayNumber:  day.DayNumber,
			Title:      day.Title,
			Activities: make([]ActivityResponse, len(day.Activities)),
		}

		for j, activity := range day.Activities {
			r.ItineraryDays[i].Activities[j] = ActivityResponse{Time: activity.ActivityTime, Text: activity.ActivityText}
		}
	}
}

// ToRequest renders a stored batch in request shape so an edit can be round-tripped.
func (r *BatchResponse) ToRequest() BatchRequest {
	req := BatchRequest{
		ID:              r.ID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		AvailableSlots:  r.AvailableSlots,
		Price:           r.Price,
		MinAge:          r.MinAge,
		MaxAge:          r.MaxAge,
		MinParticipants: r.MinParticipants,
		MaxParticipants: r.MaxParticipants,
		Duration:        r.Duration,
		Status:          r.Status,
		Inclusions:      r.Inclusions,
		Exclusions:      r.Exclusions,
		ItineraryDays:   make([]ItineraryDayRequest, len(r.ItineraryDays)),
	}

	for i, day := range r.ItineraryDays {
		req.ItineraryDays[i] = ItineraryDayRequest{
			DayNumber:  day.DayNumber,
			Title:      day.Title,
			Activities: make([]ActivityRequest, len(day.Activities)),
		}

		for j, activity := range day.Activities {
			req.ItineraryDays[i].Activities[j] = ActivityRequest(activity)
		}
	}

	return req
}

// BatchViewResponse is a batch with its trek name and derived slot accounting.
type BatchViewResponse struct {
	BatchResponse
	TrekName       string `json:"trek_name"`
	BookedSlots    int    `json:"booked_slots"`
	RemainingSlots int    `json:"remaining_slots"`
}

func (r *BatchViewResponse) FromModel(view model.View) {
	r.BatchResponse.FromModel(view.Batch)
	r.TrekName = view.TrekName
	r.BookedSlots = view.BookedSlots()
	r.RemainingSlots = max(0, view.AvailableSlots-r.BookedSlots)
}

type StatsResponse struct {
	TotalBookings         int `json:"total_bookings"`
	TotalParticipants     int `json:"total_participants"`
	ConfirmedParticipants int `json:"confirmed_participants"`
	PendingParticipants   int `json:"pending_participants"`
	CompletedParticipants int `json:"completed_participants"`
}

func (r *StatsResponse) FromModel(stats model.Stats) {
	r.TotalBookings = stats.TotalBookings
	r.TotalParticipants = stats.TotalParticipants
	r.ConfirmedParticipants = stats.ConfirmedParticipants
	r.PendingParticipants = stats.PendingParticipants
	r.CompletedParticipants = stats.CompletedParticipants
}

type BatchWithStatsResponse struct {
	BatchViewResponse
	Stats StatsResponse `json:"stats"`
}

func (r *BatchWithStatsResponse) FromModel(view model.View) {
	r.BatchViewResponse.FromModel(view)
	r.Stats.FromModel(view.Stats)
}

type GetBatchesResponse struct {
	Batches []BatchWithStatsResponse `json:"batches"`
}

func (r *GetBatchesResponse) FromModels(views []model.View) {
	r.Batches = make([]BatchWithStatsResponse, len(views))
	for i, view := range views {
		r.Batches[i].FromModel(view)
	}
}

type BatchCompletionResponse struct {
	Batch             BatchViewResponse `json:"batch"`
	CompletedBookings int64             `json:"completed_bookings"`
	Stats             StatsResponse     `json:"stats"`
}

type BatchStatusChangedEvent struct {
	BatchID  int64  `json:"batch_id"`
	TrekID   int64  `json:"trek_id"`
	TrekName string `json:"trek_name"`
	Status   string `json:"status"`
}

type BatchCompletedEvent struct {
	BatchID           int64  `json:"batch_id"`
	TrekID            int64  `json:"trek_id"`
	TrekName          string `json:"trek_name"`
	CompletedBookings int64  `json:"completed_bookings"`
}
