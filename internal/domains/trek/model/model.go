package model

import (
	"database/sql"
	"time"
	"trekdesk/shared/model"
)

const (
	TableName  = "treks"
	EntityName = "trek"

	FieldID           = "id"
	FieldName         = "name"
	FieldLocation     = "location"
	FieldCategory     = "category"
	FieldDifficulty   = "difficulty"
	FieldFitnessLevel = "fitness_level"
	FieldDescription  = "description"
	FieldCoverImage   = "cover_image"

	FieldTrekID       = "trek_id"
	FieldDisplayOrder = "display_order"
	FieldImageURL     = "image_url"
)

const (
	HighlightTableName     = "trek_highlights"
	HighlightEntityName    = "trek_highlight"
	ThingToCarryTableName  = "trek_things_to_carry"
	ThingToCarryEntityName = "trek_thing_to_carry"
	NoteTableName          = "trek_important_notes"
	NoteEntityName         = "trek_important_note"
	ImageTableName         = "trek_images"
	ImageEntityName        = "trek_image"
)

// UniqueNameLocation is the constraint backing the (name, location) rule.
const UniqueNameLocation = "treks_name_location_key"

type Trek struct {
	ID           int64  `db:"id"            generated:"true"`
	Name         string `db:"name"`
	Location     string `db:"location"`
	Category     string `db:"category"`
	Difficulty   string `db:"difficulty"`
	FitnessLevel string `db:"fitness_level"`
	Description  string `db:"description"`
	CoverImage   string `db:"cover_image"`
	model.Metadata
}

type Highlight struct {
	ID        int64  `db:"id"        generated:"true"`
	TrekID    int64  `db:"trek_id"`
	Highlight string `db:"highlight"`
}

type ThingToCarry struct {
	ID           int64  `db:"id"            generated:"true"`
	TrekID       int64  `db:"trek_id"`
	Item         string `db:"item"`
	DisplayOrder int    `db:"display_order"`
}

type ImportantNote struct {
	ID           int64  `db:"id"            generated:"true"`
	TrekID       int64  `db:"trek_id"`
	Note         string `db:"note"`
	DisplayOrder int    `db:"display_order"`
}

type Image struct {
	ID        int64     `db:"id"         generated:"true"`
	TrekID    int64     `db:"trek_id"`
	ImageURL  string    `db:"image_url"`
	CreatedAt time.Time `db:"created_at"`
}

// Lists are the trek-owned string collections. They are always replaced as a whole.
type Lists struct {
	Highlights     []string
	ThingsToCarry  []string
	ImportantNotes []string
}

// ListItem is a trek with aggregates over its upcoming batches.
type ListItem struct {
	Trek
	UpcomingDate        sql.NullTime    `db:"upcoming_date"`
	StartingPrice       sql.NullFloat64 `db:"starting_price"`
	TotalAvailableSlots int             `db:"total_available_slots"`
	TotalBatches        int             `db:"total_batches"`
	ActiveBatches       int             `db:"active_batches"`
	HighlightCount      int             `db:"highlight_count"`
}

// Summary is a trek with its batch and open booking totals.
type Summary struct {
	Trek
	TotalBatches  int `db:"total_batches"`
	ActiveBatches int `db:"active_batches"`
	TotalBookings int `db:"total_bookings"`
}
