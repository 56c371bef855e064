package dto

import (
	"fmt"
	"strings"
	batchDto "trekdesk/internal/domains/batch/model/dto"
	"trekdesk/internal/domains/trek/model"
	"trekdesk/shared"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/failure"
	gModel "trekdesk/shared/model"
	"trekdesk/shared/timezone"
)

// TrekRequest is the complete desired state of a trek aggregate.
type TrekRequest struct {
	Name           string                  `json:"name"            validate:"required,max=255"`
	Location       string                  `json:"location"        validate:"required,max=255"`
	Category       string                  `json:"category"        validate:"max=100"`
	Difficulty     string                  `json:"difficulty"      validate:"max=50"`
	FitnessLevel   string                  `json:"fitness_level"   validate:"max=50"`
	Description    string                  `json:"description"`
	Highlights     []string                `json:"highlights"`
	ThingsToCarry  []string                `json:"things_to_carry"`
	ImportantNotes []string                `json:"important_notes"`
	Batches        []batchDto.BatchRequest `json:"batches"         validate:"dive"`
	CoverDeleted   bool                    `json:"cover_deleted"`
	DeletedImages  []string                `json:"deleted_images"`
}

// MediaRefs are the stored references of files uploaded with a request.
type MediaRefs struct {
	CoverImage string
	Gallery    []string
}

// All returns every reference, cover first.
func (m MediaRefs) All() []string {
	refs := make([]string, 0, len(m.Gallery)+1)
	if m.CoverImage != "" {
		refs = append(refs, m.CoverImage)
	}

	return append(refs, m.Gallery...)
}

// Validate trims the scalar fields in place and checks the rules the tags cannot express.
func (r *TrekRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	r.Category = strings.TrimSpace(r.Category)
	r.Difficulty = strings.TrimSpace(r.Difficulty)
	r.FitnessLevel = strings.TrimSpace(r.FitnessLevel)
	r.Description = strings.TrimSpace(r.Description)

	if r.Name == "" || r.Location == "" {
		return failure.Validation("trek name and location are required")
	}

	seen := make(map[int64]bool, len(r.Batches))

	for i := range r.Batches {
		if err := r.Batches[i].Validate(i + 1); err != nil {
			return err
		}

		if id := r.Batches[i].ID; id != 0 {
			if seen[id] {
				return failure.Validation(fmt.Sprintf("batch %d: id %d appears more than once", i+1, id))
			}

			seen[id] = true
		}
	}

	return nil
}

func (r *TrekRequest) ToModel(coverImage string) model.Trek {
	now := timezone.Now()

	return model.Trek{
		Name:         r.Name,
		Location:     r.Location,
		Category:     r.Category,
		Difficulty:   r.Difficulty,
		FitnessLevel: r.FitnessLevel,
		Description:  r.Description,
		CoverImage:   coverImage,
		Metadata:     gModel.Metadata{CreatedAt: now, UpdatedAt: now},
	}
}

// ToUpdateFields replaces every scalar column. The cover image is only part of
// the update when a new one was uploaded or the old one was explicitly deleted.
func (r *TrekRequest) ToUpdateFields(media MediaRefs) map[string]any {
	fields := map[string]any{
		model.FieldName:         r.Name,
		model.FieldLocation:     r.Location,
		model.FieldCategory:     r.Category,
		model.FieldDifficulty:   r.Difficulty,
		model.FieldFitnessLevel: r.FitnessLevel,
		model.FieldDescription:  r.Description,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	switch {
	case media.CoverImage != "":
		fields[model.FieldCoverImage] = media.CoverImage
	case r.CoverDeleted:
		fields[model.FieldCoverImage] = ""
	}

	return fields
}

// ToLists drops blank entries. Stored order is the order of the kept entries.
func (r *TrekRequest) ToLists() model.Lists {
	return model.Lists{
		Highlights:     compact(r.Highlights),
		ThingsToCarry:  compact(r.ThingsToCarry),
		ImportantNotes: compact(r.ImportantNotes),
	}
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

type CreateTrekResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type TrekResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	FitnessLevel string `json:"fitness_level"`
	Description  string `json:"description"`
	CoverImage   string `json:"cover_image"`
	gDto.Metadata
}

func (r *TrekResponse) FromModel(trek model.Trek) {
	r.ID = trek.ID
	r.Name = trek.Name
	r.Location = trek.Location
	r.Category = trek.Category
	r.Difficulty = trek.Difficulty
	r.FitnessLevel = trek.FitnessLevel
	r.Description = trek.Description
	r.CoverImage = trek.CoverImage
	r.Metadata.FromModel(trek.Metadata)
}

type TrekListItemResponse struct {
	TrekResponse
	UpcomingDate        *string  `json:"upcoming_date"`
	StartingPrice       *float64 `json:"starting_price"`
	TotalAvailableSlots int      `json:"total_available_slots"`
	HasAvailableSlots   bool     `json:"has_available_slots"`
	TotalBatches        int      `json:"total_batches"`
	ActiveBatches       int      `json:"active_batches"`
	HighlightCount      int      `json:"highlight_count"`
}

func (r *TrekListItemResponse) FromModel(item model.ListItem) {
	r.TrekResponse.FromModel(item.Trek)

	if item.UpcomingDate.Valid {
		date := item.UpcomingDate.Time.Format(constant.DateOnlyFormat)
		r.UpcomingDate = &date
	}

	if item.StartingPrice.Valid {
		price := item.StartingPrice.Float64
		r.StartingPrice = &price
	}

	r.TotalAvailableSlots = item.TotalAvailableSlots
	r.HasAvailableSlots = item.TotalAvailableSlots > 0
	r.TotalBatches = item.TotalBatches
	r.ActiveBatches = item.ActiveBatches
	r.HighlightCount = item.HighlightCount
}

type GetTreksResponse struct {
	Treks     []TrekListItemResponse `json:"treks"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetTreksResponse) FromModels(items []model.ListItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Treks = make([]TrekListItemResponse, len(items))
	for i, item := range items {
		r.Treks[i].FromModel(item)
	}
}

// TrekDetailResponse is the full nested trek graph.
type TrekDetailResponse struct {
	TrekResponse
	Highlights     []string                 `json:"highlights"`
	ThingsToCarry  []string                 `json:"things_to_carry"`
	ImportantNotes []string                 `json:"important_notes"`
	Images         []string                 `json:"images"`
	Batches        []batchDto.BatchResponse `json:"batches"`
}

// ToRequest renders the detail in request shape, batch ids included.
func (r *TrekDetailResponse) ToRequest() TrekRequest {
	req := TrekRequest{
		Name:           r.Name,
		Location:       r.Location,
		Category:       r.Category,
		Difficulty:     r.Difficulty,
		FitnessLevel:   r.FitnessLevel,
		Description:    r.Description,
		Highlights:     r.Highlights,
		ThingsToCarry:  r.ThingsToCarry,
		ImportantNotes: r.ImportantNotes,
		Batches:        make([]batchDto.BatchRequest, len(r.Batches)),
		DeletedImages:  []string{},
	}

	for i := range r.Batches {
		req.Batches[i] = r.Batches[i].ToRequest()
	}

	return req
}

// TrekForUpdateResponse carries an editable payload plus the media it refers to.
type TrekForUpdateResponse struct {
	ID         int64       `json:"id"`
	CoverImage string      `json:"cover_image"`
	Images     []string    `json:"images"`
	Payload    TrekRequest `json:"payload"`
}

type SummaryResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	CoverImage    string `json:"cover_image"`
	TotalBatches  int    `json:"total_batches"`
	ActiveBatches int    `json:"active_batches"`
	TotalBookings int    `json:"total_bookings"`
	gDto.Metadata
}

type GetSummariesResponse struct {
	Treks []SummaryResponse `json:"treks"`
}

func (r *GetSummariesResponse) FromModels(summaries []model.Summary) {
	r.Treks = make([]SummaryResponse, len(summaries))

	for i, summary := range summaries {
		r.Treks[i] = SummaryResponse{
			ID:            summary.ID,
			Name:          summary.Name,
			Location:      summary.Location,
			CoverImage:    summary.CoverImage,
			TotalBatches:  summary.TotalBatches,
			ActiveBatches: summary.ActiveBatches,
			TotalBookings: summary.TotalBookings,
		}
		r.Treks[i].Metadata.FromModel(summary.Metadata)
	}
}
