package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	"trekdesk/internal/domains/user/model"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/logger"
	gRepo "trekdesk/shared/repository"
)

const queryList = `
	SELECT users.*,
		COUNT(b.id) AS total_bookings,
		COALESCE(SUM(b.total_amount), 0) AS total_spent
	FROM users
	LEFT JOIN bookings b ON b.user_id = users.id
	%s
	GROUP BY users.id
	%s %s`

const queryBookings = `
	SELECT b.id AS booking_id, b.booking_reference, t.id AS trek_id, t.name AS trek_name,
		t.location, t.category, t.difficulty, b.start_date, b.end_date, b.participants,
		b.total_amount, b.payment_status, b.booking_status, b.created_at
	FROM bookings b
	INNER JOIN treks t ON t.id = b.trek_id
	WHERE b.user_id = $1
	ORDER BY b.created_at DESC, b.id DESC`

type User interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetList(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ListItem, error)
	GetBookings(ctx context.Context, userID int64) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetList pages users with their booking totals. Filters must target the users table.
func (r *repositoryImpl) GetList(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (items []model.ListItem, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.GetList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := r.BuildWhereClause(ctx, filter)

	ordering := "ORDER BY users.created_at DESC, users.id DESC"
	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY users.%s %s", params.SortBy, params.SortDir)
	}

	var pagination string

	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		pagination = "LIMIT :limit OFFSET :offset"
	}

	query := fmt.Sprintf(queryList, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	items = []model.ListItem{}

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return items, fmt.Errorf("failed to prepare user list: %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &items, args); err != nil {
		logger.ErrorWithStack(err)

		return items, fmt.Errorf("failed to get user list: %w", err)
	}

	return items, nil
}

func (r *repositoryImpl) GetBookings(ctx context.Context, userID int64) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.GetBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryBookings)

	bookings = []model.Booking{}
	if err = r.db.Read.SelectContext(ctx, &bookings, queryBookings, userID); err != nil {
		logger.ErrorWithStack(err)

		return bookings, fmt.Errorf("failed to get user bookings: %w", err)
	}

	return bookings, nil
}
