package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	"trekdesk/internal/domains/batch/model"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/logger"
	gRepo "trekdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

const viewColumns = `
	tb.id, tb.trek_id, tb.start_date, tb.end_date, tb.available_slots, tb.price,
	tb.min_age, tb.max_age, tb.min_participants, tb.max_participants, tb.duration,
	tb.status, tb.created_at, tb.updated_at,
	t.name AS trek_name,
	COUNT(b.id) AS total_bookings,
	COALESCE(SUM(b.participants), 0) AS total_participants,
	COALESCE(SUM(CASE WHEN b.booking_status = 'confirmed' THEN b.participants ELSE 0 END), 0) AS confirmed_participants,
	COALESCE(SUM(CASE WHEN b.booking_status = 'pending' THEN b.participants ELSE 0 END), 0) AS pending_participants,
	COALESCE(SUM(CASE WHEN b.booking_status = 'completed' THEN b.participants ELSE 0 END), 0) AS completed_participants`

const viewFrom = `
	FROM trek_batches tb
	INNER JOIN treks t ON t.id = tb.trek_id
	LEFT JOIN bookings b ON b.batch_id = tb.id AND b.booking_status IN ('pending', 'confirmed', 'completed')`

var (
	queryGetView    = fmt.Sprintf("SELECT %s %s WHERE tb.id = $1 GROUP BY tb.id, t.name", viewColumns, viewFrom)
	queryGetByTrek  = fmt.Sprintf("SELECT %s %s WHERE tb.trek_id = $1 GROUP BY tb.id, t.name ORDER BY tb.start_date ASC, tb.id ASC", viewColumns, viewFrom)
	sortByID        = gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}
	sortByDayNumber = gDto.QueryParams{SortBy: model.FieldDayNumber, SortDir: gDto.SortDirAsc}
	sortByTime      = gDto.QueryParams{SortBy: model.FieldActivityTime, SortDir: gDto.SortDirAsc}
)

type Batch interface {
	InsertReturningTx(ctx context.Context, tx *sqlx.Tx, batch model.Batch) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Batch, error)
	GetAllByTrekTx(ctx context.Context, tx *sqlx.Tx, trekID int64) ([]model.Batch, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Batch, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
	InsertChildrenTx(ctx context.Context, tx *sqlx.Tx, batchID int64, children model.Children) error
	ReplaceChildrenTx(ctx context.Context, tx *sqlx.Tx, batchID int64, children model.Children) error
	DeleteChildrenTx(ctx context.Context, tx *sqlx.Tx, batchID int64) error
	GetChildren(ctx context.Context, batchIDs []int64) (map[int64]model.Children, error)
	GetViewTx(ctx context.Context, tx *sqlx.Tx, id int64) (model.View, error)
	GetByTrek(ctx context.Context, trekID int64) ([]model.View, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Batch]
	inclusions gRepo.Repository[model.Inclusion]
	exclusions gRepo.Repository[model.Exclusion]
	days       gRepo.Repository[model.ItineraryDay]
	activities gRepo.Repository[model.Activity]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Batch {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Batch](model.EntityName, model.TableName, model.FieldID, db, otel),
		inclusions: gRepo.NewRepository[model.Inclusion](model.InclusionEntityName, model.InclusionTableName, model.FieldID, db, otel),
		exclusions: gRepo.NewRepository[model.Exclusion](model.ExclusionEntityName, model.ExclusionTableName, model.FieldID, db, otel),
		days:       gRepo.NewRepository[model.ItineraryDay](model.DayEntityName, model.DayTableName, model.FieldID, db, otel),
		activities: gRepo.NewRepository[model.Activity](model.ActivityEntityName, model.ActivityTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func byBatch(table string, batchID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBatchID, Operator: gDto.FilterOperatorEq, Value: batchID, Table: table},
		},
	}
}

func inFilter(table, field string, ids []int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Operator: gDto.FilterOperatorIn, Value: ids, Table: table},
		},
	}
}

// GetAllByTrekTx returns the batches of a trek in stored creation order.
func (r *repositoryImpl) GetAllByTrekTx(ctx context.Context, tx *sqlx.Tx, trekID int64) ([]model.Batch, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldTrekID, Operator: gDto.FilterOperatorEq, Value: trekID, Table: model.TableName},
		},
	}

	return r.GetAllTx(ctx, tx, sortByID, filter) //nolint:wrapcheck
}

// InsertChildrenTx writes inclusions and exclusions with one statement each,
// then every day followed by its activities.
func (r *repositoryImpl) InsertChildrenTx(ctx context.Context, tx *sqlx.Tx, batchID int64, children model.Children) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".batch.InsertChildrenTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	inclusions := make([]model.Inclusion, len(children.Inclusions))
	for i, inclusion := range children.Inclusions {
		inclusions[i] = model.Inclusion{BatchID: batchID, Inclusion: inclusion}
	}

	if err = r.inclusions.InsertBulkTx(ctx, tx, inclusions); err != nil {
		return fmt.Errorf("failed to insert inclusions: %w", err)
	}

	exclusions := make([]model.Exclusion, len(children.Exclusions))
	for i, exclusion := range children.Exclusions {
		exclusions[i] = model.Exclusion{BatchID: batchID, Exclusion: exclusion}
	}

	if err = r.exclusions.InsertBulkTx(ctx, tx, exclusions); err != nil {
		return fmt.Errorf("failed to insert exclusions: %w", err)
	}

	for _, day := range children.Days {
		day.BatchID = batchID

		dayID, err := r.days.InsertReturningTx(ctx, tx, day.ItineraryDay)
		if err != nil {
			return fmt.Errorf("failed to insert itinerary day %d: %w", day.DayNumber, err)
		}

		activities := make([]model.Activity, len(day.Activities))
		for i, activity := range day.Activities {
			activity.DayID = dayID
			activities[i] = activity
		}

		if err := r.activities.InsertBulkTx(ctx, tx, activities); err != nil {
			return fmt.Errorf("failed to insert activities of day %d: %w", day.DayNumber, err)
		}
	}

	return nil
}

// DeleteChildrenTx removes everything a batch owns. Activities go with their days.
func (r *repositoryImpl) DeleteChildrenTx(ctx context.Context, tx *sqlx.Tx, batchID int64) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".batch.DeleteChildrenTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.inclusions.DeleteTx(ctx, tx, byBatch(model.InclusionTableName, batchID)); err != nil {
		return fmt.Errorf("failed to delete inclusions: %w", err)
	}

	if err = r.exclusions.DeleteTx(ctx, tx, byBatch(model.ExclusionTableName, batchID)); err != nil {
		return fmt.Errorf("failed to delete exclusions: %w", err)
	}

	if err = r.days.DeleteTx(ctx, tx, byBatch(model.DayTableName, batchID)); err != nil {
		return fmt.Errorf("failed to delete itinerary days: %w", err)
	}

	return nil
}

func (r *repositoryImpl) ReplaceChildrenTx(ctx context.Context, tx *sqlx.Tx, batchID int64, children model.Children) error {
	if err := r.DeleteChildrenTx(ctx, tx, batchID); err != nil {
		return err
	}

	return r.InsertChildrenTx(ctx, tx, batchID, children)
}

// GetChildren loads the owned lists of several batches with one query per table.
func (r *repositoryImpl) GetChildren(ctx context.Context, batchIDs []int64) (res map[int64]model.Children, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".batch.GetChildren")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = make(map[int64]model.Children, len(batchIDs))
	if len(batchIDs) == 0 {
		return res, nil
	}

	inclusions, err := r.inclusions.GetAll(ctx, sortByID, inFilter(model.InclusionTableName, model.FieldBatchID, batchIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get inclusions: %w", err)
	}

	exclusions, err := r.exclusions.GetAll(ctx, sortByID, inFilter(model.ExclusionTableName, model.FieldBatchID, batchIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get exclusions: %w", err)
	}

	days, err := r.days.GetAll(ctx, sortByDayNumber, inFilter(model.DayTableName, model.FieldBatchID, batchIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get itinerary days: %w", err)
	}

	activitiesByDay := map[int64][]model.Activity{}

	if len(days) > 0 {
		dayIDs := make([]int64, len(days))
		for i, day := range days {
			dayIDs[i] = day.ID
		}

		activities, err := r.activities.GetAll(ctx, sortByTime, inFilter(model.ActivityTableName, model.FieldDayID, dayIDs))
		if err != nil {
			return nil, fmt.Errorf("failed to get activities: %w", err)
		}

		for _, activity := range activities {
			activitiesByDay[activity.DayID] = append(activitiesByDay[activity.DayID], activity)
		}
	}

	for _, inclusion := range inclusions {
		children := res[inclusion.BatchID]
		children.Inclusions = append(children.Inclusions, inclusion.Inclusion)
		res[inclusion.BatchID] = children
	}

	for _, exclusion := range exclusions {
		children := res[exclusion.BatchID]
		children.Exclusions = append(children.Exclusions, exclusion.Exclusion)
		res[exclusion.BatchID] = children
	}

	for _, day := range days {
		children := res[day.BatchID]
		children.Days = append(children.Days, model.Day{ItineraryDay: day, Activities: activitiesByDay[day.ID]})
		res[day.BatchID] = children
	}

	return res, nil
}

// GetViewTx returns the zero view when the batch does not exist.
func (r *repositoryImpl) GetViewTx(ctx context.Context, tx *sqlx.Tx, id int64) (view model.View, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".batch.GetViewTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetView)

	var views []model.View
	if err = tx.SelectContext(ctx, &views, queryGetView, id); err != nil {
		logger.ErrorWithStack(err)

		return view, fmt.Errorf("failed to get batch view: %w", err)
	}

	if len(views) == 0 {
		return view, nil
	}

	return views[0], nil
}

func (r *repositoryImpl) GetByTrek(ctx context.Context, trekID int64) (views []model.View, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".batch.GetByTrek")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetByTrek)

	views = []model.View{}
	if err = r.db.Read.SelectContext(ctx, &views, queryGetByTrek, trekID); err != nil {
		logger.ErrorWithStack(err)

		return views, fmt.Errorf("failed to get batches by trek: %w", err)
	}

	return views, nil
}
