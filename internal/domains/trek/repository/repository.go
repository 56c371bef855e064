package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	"trekdesk/internal/domains/trek/model"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/logger"
	gRepo "trekdesk/shared/repository"
	"trekdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
)

// Aggregates only look at batches that have not started yet.
const queryList = `
	SELECT treks.*,
		MIN(b.start_date) AS upcoming_date,
		MIN(b.price) AS starting_price,
		COALESCE(SUM(CASE WHEN b.status = 'active' THEN b.available_slots ELSE 0 END), 0) AS total_available_slots,
		COUNT(DISTINCT b.id) AS total_batches,
		COUNT(DISTINCT b.id) FILTER (WHERE b.status = 'active') AS active_batches,
		(SELECT COUNT(*) FROM trek_highlights h WHERE h.trek_id = treks.id) AS highlight_count
	FROM treks
	LEFT JOIN trek_batches b ON b.trek_id = treks.id AND b.start_date >= :today
	%s
	GROUP BY treks.id
	%s %s`

const querySummaries = `
	SELECT t.*,
		COUNT(DISTINCT tb.id) AS total_batches,
		COUNT(DISTINCT tb.id) FILTER (WHERE tb.status = 'active') AS active_batches,
		COUNT(DISTINCT b.id) AS total_bookings
	FROM treks t
	LEFT JOIN trek_batches tb ON tb.trek_id = t.id
	LEFT JOIN bookings b ON b.batch_id = tb.id AND b.booking_status IN ('pending', 'confirmed')
	GROUP BY t.id
	ORDER BY t.created_at DESC`

var (
	sortByID           = gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}
	sortByDisplayOrder = gDto.QueryParams{SortBy: model.FieldDisplayOrder, SortDir: gDto.SortDirAsc}
)

type Trek interface {
	InsertReturningTx(ctx context.Context, tx *sqlx.Tx, trek model.Trek) (int64, error)
	ExistTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Trek, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Trek, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertListsTx(ctx context.Context, tx *sqlx.Tx, trekID int64, lists model.Lists) error
	ReplaceListsTx(ctx context.Context, tx *sqlx.Tx, trekID int64, lists model.Lists) error
	InsertImagesTx(ctx context.Context, tx *sqlx.Tx, trekID int64, urls []string) error
	DeleteImagesTx(ctx context.Context, tx *sqlx.Tx, trekID int64, urls []string) error
	GetLists(ctx context.Context, trekID int64) (model.Lists, error)
	GetImages(ctx context.Context, trekID int64) ([]model.Image, error)
	GetList(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ListItem, error)
	GetSummaries(ctx context.Context) ([]model.Summary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Trek]
	highlights    gRepo.Repository[model.Highlight]
	thingsToCarry gRepo.Repository[model.ThingToCarry]
	notes         gRepo.Repository[model.ImportantNote]
	images        gRepo.Repository[model.Image]
	db            *postgres.Connection
	otel          otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Trek {
	return &repositoryImpl{
		Repository:    gRepo.NewRepository[model.Trek](model.EntityName, model.TableName, model.FieldID, db, otel),
		highlights:    gRepo.NewRepository[model.Highlight](model.HighlightEntityName, model.HighlightTableName, model.FieldID, db, otel),
		thingsToCarry: gRepo.NewRepository[model.ThingToCarry](model.ThingToCarryEntityName, model.ThingToCarryTableName, model.FieldID, db, otel),
		notes:         gRepo.NewRepository[model.ImportantNote](model.NoteEntityName, model.NoteTableName, model.FieldID, db, otel),
		images:        gRepo.NewRepository[model.Image](model.ImageEntityName, model.ImageTableName, model.FieldID, db, otel),
		db:            db,
		otel:          otel,
	}
}

func byTrek(table string, trekID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldTrekID, Operator: gDto.FilterOperatorEq, Value: trekID, Table: table},
		},
	}
}

// InsertListsTx writes each list with one statement. display_order is 1-based.
func (r *repositoryImpl) InsertListsTx(ctx context.Context, tx *sqlx.Tx, trekID int64, lists model.Lists) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trek.InsertListsTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	highlights := make([]model.Highlight, len(lists.Highlights))
	for i, highlight := range lists.Highlights {
		highlights[i] = model.Highlight{TrekID: trekID, Highlight: highlight}
	}

	if err = r.highlights.InsertBulkTx(ctx, tx, highlights); err != nil {
		return fmt.Errorf("failed to insert highlights: %w", err)
	}

	things := make([]model.ThingToCarry, len(lists.ThingsToCarry))
	for i, item := range lists.ThingsToCarry {
		things[i] = model.ThingToCarry{TrekID: trekID, Item: item, DisplayOrder: i + 1}
	}

	if err = r.thingsToCarry.InsertBulkTx(ctx, tx, things); err != nil {
		return fmt.Errorf("failed to insert things to carry: %w", err)
	}

	notes := make([]model.ImportantNote, len(lists.ImportantNotes))
	for i, note := range lists.ImportantNotes {
		notes[i] = model.ImportantNote{TrekID: trekID, Note: note, DisplayOrder: i + 1}
	}

	if err = r.notes.InsertBulkTx(ctx, tx, notes); err != nil {
		return fmt.Errorf("failed to insert important notes: %w", err)
	}

	return nil
}

func (r *repositoryImpl) ReplaceListsTx(ctx context.Context, tx *sqlx.Tx, trekID int64, lists model.Lists) error {
	if err := r.highlights.DeleteTx(ctx, tx, byTrek(model.HighlightTableName, trekID)); err != nil {
		return fmt.Errorf("failed to delete highlights: %w", err)
	}

	if err := r.thingsToCarry.DeleteTx(ctx, tx, byTrek(model.ThingToCarryTableName, trekID)); err != nil {
		return fmt.Errorf("failed to delete things to carry: %w", err)
	}

	if err := r.notes.DeleteTx(ctx, tx, byTrek(model.NoteTableName, trekID)); err != nil {
		return fmt.Errorf("failed to delete important notes: %w", err)
	}

	return r.InsertListsTx(ctx, tx, trekID, lists)
}

func (r *repositoryImpl) InsertImagesTx(ctx context.Context, tx *sqlx.Tx, trekID int64, urls []string) error {
	now := timezone.Now()

	images := make([]model.Image, len(urls))
	for i, url := range urls {
		images[i] = model.Image{TrekID: trekID, ImageURL: url, CreatedAt: now}
	}

	return r.images.InsertBulkTx(ctx, tx, images) //nolint:wrapcheck
}

// DeleteImagesTx removes the named images of this trek only.
func (r *repositoryImpl) DeleteImagesTx(ctx context.Context, tx *sqlx.Tx, trekID int64, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTrekID, Operator: gDto.FilterOperatorEq, Value: trekID, Table: model.ImageTableName},
			gDto.Filter{Field: model.FieldImageURL, Operator: gDto.FilterOperatorIn, Value: urls, Table: model.ImageTableName},
		},
	}

	return r.images.DeleteTx(ctx, tx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetLists(ctx context.Context, trekID int64) (lists model.Lists, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trek.GetLists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	highlights, err := r.highlights.GetAll(ctx, sortByID, byTrek(model.HighlightTableName, trekID))
	if err != nil {
		return lists, fmt.Errorf("failed to get highlights: %w", err)
	}

	things, err := r.thingsToCarry.GetAll(ctx, sortByDisplayOrder, byTrek(model.ThingToCarryTableName, trekID))
	if err != nil {
		return lists, fmt.Errorf("failed to get things to carry: %w", err)
	}

	notes, err := r.notes.GetAll(ctx, sortByDisplayOrder, byTrek(model.NoteTableName, trekID))
	if err != nil {
		return lists, fmt.Errorf("failed to get important notes: %w", err)
	}

	lists.Highlights = make([]string, len(highlights))
	for i, highlight := range highlights {
		lists.Highlights[i] = highlight.Highlight
	}

	lists.ThingsToCarry = make([]string, len(things))
	for i, thing := range things {
		lists.ThingsToCarry[i] = thing.Item
	}

	lists.ImportantNotes = make([]string, len(notes))
	for i, note := range notes {
		lists.ImportantNotes[i] = note.Note
	}

	return lists, nil
}

func (r *repositoryImpl) GetImages(ctx context.Context, trekID int64) ([]model.Image, error) {
	return r.images.GetAll(ctx, sortByID, byTrek(model.ImageTableName, trekID)) //nolint:wrapcheck
}

// GetList pages treks with aggregates over their upcoming batches. Filters must target the treks table.
func (r *repositoryImpl) GetList(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (items []model.ListItem, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trek.GetList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := r.BuildWhereClause(ctx, filter)
	args["today"] = timezone.Today().Format(constant.DateOnlyFormat)

	ordering := "ORDER BY treks.created_at DESC, treks.id DESC"
	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY treks.%s %s", params.SortBy, params.SortDir)
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

		return items, fmt.Errorf("failed to prepare trek list: %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &items, args); err != nil {
		logger.ErrorWithStack(err)

		return items, fmt.Errorf("failed to get trek list: %w", err)
	}

	return items, nil
}

func (r *repositoryImpl) GetSummaries(ctx context.Context) (summaries []model.Summary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trek.GetSummaries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySummaries)

	summaries = []model.Summary{}
	if err = r.db.Read.SelectContext(ctx, &summaries, querySummaries); err != nil {
		logger.ErrorWithStack(err)

		return summaries, fmt.Errorf("failed to get trek summaries: %w", err)
	}

	return summaries, nil
}
