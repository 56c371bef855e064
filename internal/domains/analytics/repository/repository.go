package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	"trekdesk/internal/domains/analytics/model"
	"trekdesk/shared/constant"
	"trekdesk/shared/logger"

	"github.com/lib/pq"
)

const queryRevenueTotals = `
	SELECT
		(SELECT COUNT(id) FROM bookings) AS total_bookings,
		COALESCE((SELECT SUM(total_amount) FROM bookings WHERE payment_status = $1), 0) AS total_revenue,
		COALESCE((
			SELECT ROUND(SUM(total_amount) / NULLIF(COUNT(id), 0), 2)
			FROM bookings
			WHERE payment_status = $1 AND booking_status = ANY($2)
		), 0) AS average_booking_value`

const queryMonthlyRevenue = `
	SELECT date_trunc('month', created_at) AS month, COUNT(*) AS bookings, SUM(total_amount) AS amount
	FROM bookings
	WHERE payment_status = $1 AND booking_status = ANY($2)
	GROUP BY month
	ORDER BY month`

const queryTrekRevenue = `
	SELECT trek_name AS name, COUNT(id) AS bookings, COALESCE(SUM(total_amount), 0) AS revenue
	FROM bookings
	WHERE payment_status = $1 AND booking_status = ANY($2)
	GROUP BY trek_name
	ORDER BY revenue DESC, trek_name`

const queryDashboardCounts = `
	SELECT
		(SELECT COUNT(id) FROM users) AS total_users,
		(SELECT COUNT(id) FROM users WHERE is_active = 1) AS active_users,
		(SELECT COUNT(id) FROM treks) AS total_treks,
		(SELECT COUNT(id) FROM bookings) AS total_bookings,
		COALESCE((SELECT SUM(total_amount) FROM bookings WHERE payment_status = $1 AND booking_status = ANY($2)), 0) AS total_revenue`

const queryRecentBookings = `
	SELECT id, customer_name, customer_email, customer_phone, trek_name, participants,
		total_amount, booking_status, payment_status, created_at
	FROM bookings
	ORDER BY created_at DESC, id DESC
	LIMIT $1`

type Analytics interface {
	GetRevenueTotals(ctx context.Context) (model.RevenueTotals, error)
	GetMonthlyRevenue(ctx context.Context) ([]model.MonthlyRevenue, error)
	GetTrekRevenue(ctx context.Context) ([]model.TrekRevenue, error)
	GetDashboardCounts(ctx context.Context) (model.DashboardCounts, error)
	GetRecentBookings(ctx context.Context, limit int) ([]model.RecentBooking, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Analytics {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) GetRevenueTotals(ctx context.Context) (totals model.RevenueTotals, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics.GetRevenueTotals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRevenueTotals)

	if err = r.db.Read.GetContext(ctx, &totals, queryRevenueTotals, model.PaymentStatusPaid, pq.Array(model.RealizedStatuses)); err != nil {
		logger.ErrorWithStack(err)

		return totals, fmt.Errorf("failed to get revenue totals: %w", err)
	}

	return totals, nil
}

func (r *repositoryImpl) GetMonthlyRevenue(ctx context.Context) (months []model.MonthlyRevenue, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics.GetMonthlyRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryMonthlyRevenue)

	months = []model.MonthlyRevenue{}
	if err = r.db.Read.SelectContext(ctx, &months, queryMonthlyRevenue, model.PaymentStatusPaid, pq.Array(model.RealizedStatuses)); err != nil {
		logger.ErrorWithStack(err)

		return months, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	return months, nil
}

func (r *repositoryImpl) GetTrekRevenue(ctx context.Context) (treks []model.TrekRevenue, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics.GetTrekRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryTrekRevenue)

	treks = []model.TrekRevenue{}
	if err = r.db.Read.SelectContext(ctx, &treks, queryTrekRevenue, model.PaymentStatusPaid, pq.Array(model.RealizedStatuses)); err != nil {
		logger.ErrorWithStack(err)

		return treks, fmt.Errorf("failed to get trek revenue: %w", err)
	}

	return treks, nil
}

func (r *repositoryImpl) GetDashboardCounts(ctx context.Context) (counts model.DashboardCounts, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics.GetDashboardCounts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryDashboardCounts)

	if err = r.db.Read.GetContext(ctx, &counts, queryDashboardCounts, model.PaymentStatusPaid, pq.Array(model.RealizedStatuses)); err != nil {
		logger.ErrorWithStack(err)

		return counts, fmt.Errorf("failed to get dashboard counts: %w", err)
	}

	return counts, nil
}

func (r *repositoryImpl) GetRecentBookings(ctx context.Context, limit int) (bookings []model.RecentBooking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".analytics.GetRecentBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRecentBookings)

	bookings = []model.RecentBooking{}
	if err = r.db.Read.SelectContext(ctx, &bookings, queryRecentBookings, limit); err != nil {
		logger.ErrorWithStack(err)

		return bookings, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	return bookings, nil
}
