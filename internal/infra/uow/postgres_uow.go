package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"smartbus/internal/domain/fare"
	"smartbus/internal/domain/payment"
	"smartbus/internal/domain/user"
	"smartbus/internal/infra/readstore"
	"smartbus/internal/infra/repository"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/pkg/errs"
	"smartbus/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Row locks taken by the repositories give per-ticket and per-item serialization.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool, false)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if final := giveUp(err, attempt, maxRetries); final != nil {
			return final
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

// giveUp returns the error Within should surface, or nil to retry.
func giveUp(err error, attempt, maxRetries int) error {
	if !isRetryableError(err) {
		return err
	}
	if attempt == maxRetries {
		slog.Error("transaction failed after max retries",
			"attempts", attempt+1,
			"error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return nil
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to 63 bits above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	ticketRepo   shared.TicketRepository
	orderRepo    shared.PaymentOrderRepository
	outboxRepo   shared.OutboxRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Tickets() shared.TicketRepository {
	if t.ticketRepo == nil {
		t.ticketRepo = repository.NewTicketRepository(t.uow.q, t.dbtx)
	}
	return t.ticketRepo
}

func (t *pgTx) PaymentOrders() shared.PaymentOrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewPaymentOrderRepository(t.uow.q, t.dbtx)
	}
	return t.orderRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

// Reads inside a transaction lock the catalog rows they return.
func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.uow.q, t.dbtx, true)
	}
	return t.commandReads
}

type commandReads struct {
	fares  *readstore.FareReadStore
	users  *readstore.UserReadStore
	orders *readstore.PaymentOrderReadStore
}

func newCommandReads(q *sqlc.Queries, db sqlc.DBTX, locking bool) *commandReads {
	fares := readstore.NewFareReadStore(q, db)
	if locking {
		fares = readstore.NewLockingFareReadStore(q, db)
	}
	return &commandReads{
		fares:  fares,
		users:  readstore.NewUserReadStore(q, db),
		orders: readstore.NewPaymentOrderReadStore(q, db),
	}
}

func (r *commandReads) PriceFor(ctx context.Context, routeID string, ticketTypeID int32) (fare.Quote, error) {
	return r.fares.PriceFor(ctx, routeID, ticketTypeID)
}

func (r *commandReads) PolicyFor(ctx context.Context, ticketTypeID int32) (*fare.TicketType, error) {
	return r.fares.PolicyFor(ctx, ticketTypeID)
}

func (r *commandReads) RiderByID(ctx context.Context, id int64) (*user.Rider, error) {
	return r.users.RiderByID(ctx, id)
}

func (r *commandReads) OrderByCode(ctx context.Context, code payment.OrderCode) (*payment.Order, error) {
	return r.orders.OrderByCode(ctx, code)
}

func (r *commandReads) OrderItems(ctx context.Context, code payment.OrderCode) ([]payment.Item, error) {
	return r.orders.OrderItems(ctx, code)
}

func (r *commandReads) Confirmations(ctx context.Context, code payment.OrderCode) ([]payment.Confirmation, error) {
	return r.orders.Confirmations(ctx, code)
}
