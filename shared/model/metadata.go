package model

import "time"

// Metadata holds the audit timestamps every owned table carries.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
