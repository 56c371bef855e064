package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./transactor.go -destination=./mocks/transactor_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"
	"trekdesk/config"
	"trekdesk/infras/otel"
	"trekdesk/shared/constant"
	"trekdesk/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	defaultAcquireTimeout = 3 * time.Second

	pqErrorSerialization = "40001"
	pqErrorDeadlock      = "40P01"
	pqErrorTooManyConns  = "53300"
	pqErrorAdminShutdown = "57P01"

	otelTransactorScopeName = "postgres.transactor"
)

// TxFunc runs inside an open transaction. Returning an error rolls it back.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

// Transactor hands out one pooled connection per unit of work and runs it in a transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

type transactor struct {
	db             *sqlx.DB
	acquireTimeout time.Duration
	otel           otel.Otel
}

func NewTransactor(conn *Connection, config *config.Config, otl otel.Otel) Transactor {
	return newTransactor(conn.Write, time.Duration(config.DB.Postgres.AcquireTimeoutMS)*time.Millisecond, otl)
}

func newTransactor(db *sqlx.DB, acquireTimeout time.Duration, otl otel.Otel) *transactor {
	if acquireTimeout <= 0 {
		acquireTimeout = defaultAcquireTimeout
	}

	return &transactor{
		db:             db,
		acquireTimeout: acquireTimeout,
		otel:           otl,
	}
}

// WithinTx commits when fn returns nil and rolls back on error or panic.
// The connection goes back to the pool on every path.
func (t *transactor) WithinTx(ctx context.Context, fn TxFunc) (err error) {
	ctx, scope := t.otel.NewScope(ctx, otelTransactorScopeName, otelTransactorScopeName+".WithinTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	conn, err := t.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTxx(context.WithoutCancel(ctx), nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return Classify(fmt.Errorf("failed to begin transaction: %w", err))
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction after panic")
			}

			panic(recovered)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return Classify(err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return Classify(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

func (t *transactor) acquire(ctx context.Context) (*sqlx.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, t.acquireTimeout)
	defer cancel()

	conn, err := t.db.Connx(acquireCtx)
	if err == nil {
		return conn, nil
	}

	log.Warn().
		Err(err).
		Dur("timeout", t.acquireTimeout).
		Int("inUse", t.db.Stats().InUse).
		Msg("failed to acquire database connection")

	return nil, failure.StorageFailure(fmt.Errorf("failed to acquire connection: %w", err), true)
}

// Classify maps driver errors onto the failure taxonomy. Errors that already
// carry a Failure are returned untouched.
func Classify(err error) error {
	if err == nil || failure.IsClassified(err) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			return failure.Duplicate(duplicateMessage(pqErr))
		case constant.PqErrorCodeFkViolation:
			return failure.StateConflict("operation conflicts with existing references: " + pqErr.Constraint)
		case pqErrorSerialization, pqErrorDeadlock, pqErrorTooManyConns, pqErrorAdminShutdown:
			return failure.StorageFailure(err, true)
		}

		return failure.StorageFailure(err, false)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.As(err, &netErr) {
		return failure.StorageFailure(err, true)
	}

	return failure.StorageFailure(err, false)
}

func duplicateMessage(pqErr *pq.Error) string {
	if pqErr.Detail != "" {
		return "duplicate entity: " + pqErr.Detail
	}

	return "duplicate entity: " + pqErr.Constraint
}
