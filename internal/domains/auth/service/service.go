package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"trekdesk/config"
	"trekdesk/infras/jwt"
	"trekdesk/infras/otel"
	"trekdesk/internal/domains/auth/model"
	"trekdesk/internal/domains/auth/model/dto"
	"trekdesk/internal/domains/auth/repository"
	"trekdesk/shared"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/failure"
	"trekdesk/shared/password"
	"trekdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	errInvalidCredentials = "invalid email or password"
	errInvalidRefresh     = "invalid refresh token"
	errAdminExists        = "email already registered"
	errAdminNotFound      = "admin not found"
	errWrongPassword      = "current password is incorrect"
)

type Auth interface {
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, adminID int64) error
}

type serviceImpl struct {
	adminRepo  repository.Admin
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(adminRepo repository.Admin, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		adminRepo:  adminRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func byEmail(email string) gDto.FilterGroup {
	return shared.FilterByField(model.FieldEmail, model.TableName, strings.ToLower(strings.TrimSpace(email)))
}

func (s *serviceImpl) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.CreateAdmin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.adminRepo.Exist(ctx, byEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return failure.Duplicate(errAdminExists) //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.adminRepo.Insert(ctx, req.ToModel(hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create admin")

		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := byEmail(req.Email)

	admin, err := s.adminRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == 0 {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized(errInvalidCredentials) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, admin.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(errInvalidCredentials) //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, admin.ID, admin.Email, admin.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldLastLoginAt:  now,
		constant.FieldUpdatedAt: now,
	}

	if err := s.adminRepo.Update(ctx, fields, shared.FilterByID(admin.ID, model.FieldID, model.TableName)); err != nil {
		log.Warn().Err(err).Int64("admin_id", admin.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.Admin.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized(errInvalidRefresh) //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, adminID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(adminID, model.FieldID, model.TableName)

	admin, err := s.adminRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == 0 {
		return failure.NotFound(errAdminNotFound) //nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, admin.Password); err != nil {
		return failure.Validation(errWrongPassword) //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	fields := map[string]any{
		model.FieldPassword:     hashedPassword,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.adminRepo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
