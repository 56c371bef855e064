package dto

import (
	"strings"
	"trekdesk/infras/jwt"
	"trekdesk/internal/domains/auth/model"
	"trekdesk/shared/constant"
	gModel "trekdesk/shared/model"
	"trekdesk/shared/timezone"
)

type CreateAdminRequest struct {
	FullName string `json:"full_name" validate:"required,max=255"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin superadmin"`
}

func (r *CreateAdminRequest) ToModel(hashedPassword string) model.Admin {
	role := r.Role
	if role == "" {
		role = constant.RoleAdmin
	}

	now := timezone.Now()

	return model.Admin{
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		Role:     role,
		Metadata: gModel.Metadata{CreatedAt: now, UpdatedAt: now},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (r *AdminResponse) FromModel(admin model.Admin) {
	r.ID = admin.ID
	r.FullName = admin.FullName
	r.Email = admin.Email
	r.Role = admin.Role
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	Admin        AdminResponse `json:"admin"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}
