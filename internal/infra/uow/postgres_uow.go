package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"talentbridge/internal/infra/repository"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/usecase/shared"

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
// Pair serialization relies on advisory locks, not on isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
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
			q:    u.q,
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

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
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

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
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
	// #nosec G115 -- high bit masked above
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

// pgTx binds every repository to one pgx transaction.
type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	scheduledRepo    shared.ScheduledMessageRepository
	candidateRepo    shared.CandidateRepository
	followUpRepo     shared.FollowUpRepository
	messageRepo      shared.MessageRepository
	automationRepo   shared.AutomationLogRepository
	notificationRepo shared.NotificationRepository
	userRepo         shared.UserRepository
	subscriptionRepo shared.SubscriptionRepository
	referralRepo     shared.ReferralRepository
	webhookRepo      shared.WebhookEventRepository
	xpRepo           shared.XPLedgerRepository
}

func (t *pgTx) ScheduledMessages() shared.ScheduledMessageRepository {
	if t.scheduledRepo == nil {
		t.scheduledRepo = repository.NewScheduledMessageRepository(t.q, t.dbtx)
	}
	return t.scheduledRepo
}

func (t *pgTx) Candidates() shared.CandidateRepository {
	if t.candidateRepo == nil {
		t.candidateRepo = repository.NewCandidateRepository(t.q, t.dbtx)
	}
	return t.candidateRepo
}

func (t *pgTx) FollowUps() shared.FollowUpRepository {
	if t.followUpRepo == nil {
		t.followUpRepo = repository.NewFollowUpRepository(t.q, t.dbtx)
	}
	return t.followUpRepo
}

func (t *pgTx) Messages() shared.MessageRepository {
	if t.messageRepo == nil {
		t.messageRepo = repository.NewMessageRepository(t.q, t.dbtx)
	}
	return t.messageRepo
}

func (t *pgTx) AutomationLogs() shared.AutomationLogRepository {
	if t.automationRepo == nil {
		t.automationRepo = repository.NewAutomationLogRepository(t.q, t.dbtx)
	}
	return t.automationRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptionRepo == nil {
		t.subscriptionRepo = repository.NewSubscriptionRepository(t.q, t.dbtx)
	}
	return t.subscriptionRepo
}

func (t *pgTx) Referrals() shared.ReferralRepository {
	if t.referralRepo == nil {
		t.referralRepo = repository.NewReferralRepository(t.q, t.dbtx)
	}
	return t.referralRepo
}

func (t *pgTx) WebhookEvents() shared.WebhookEventRepository {
	if t.webhookRepo == nil {
		t.webhookRepo = repository.NewWebhookEventRepository(t.q, t.dbtx)
	}
	return t.webhookRepo
}

func (t *pgTx) XPLedger() shared.XPLedgerRepository {
	if t.xpRepo == nil {
		t.xpRepo = repository.NewXPLedgerRepository(t.q, t.dbtx)
	}
	return t.xpRepo
}
