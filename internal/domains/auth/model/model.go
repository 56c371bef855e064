package model

import (
	"time"
	"trekdesk/shared/model"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldRole        = "role"
	FieldLastLoginAt = "last_login_at"
)

type Admin struct {
	ID          int64      `db:"id"            generated:"true"`
	FullName    string     `db:"full_name"`
	Email       string     `db:"email"`
	Password    string     `db:"password"`
	Role        string     `db:"role"`
	LastLoginAt *time.Time `db:"last_login_at"`
	model.Metadata
}
