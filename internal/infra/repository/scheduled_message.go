package repository

import (
	"context"
	"sort"
	"time"

	"talentbridge/internal/domain/followup"
	"talentbridge/internal/infra"
	"talentbridge/internal/infra/repository/converter"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScheduledMessageQueries interface {
	CreateScheduledMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateScheduledMessageParams) error
	FindScheduledMessageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ScheduledMessages, error)
	LockFollowUpPair(ctx context.Context, db sqlc.DBTX, pairKey string) error
	CountBlockingFollowUps(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBlockingFollowUpsParams) (int64, error)
	ClaimDueScheduledMessages(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueScheduledMessagesParams) ([]sqlc.ScheduledMessages, error)
	UpdateScheduledMessageState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateScheduledMessageStateParams) (int64, error)
}

type ScheduledMessageRepository struct {
	queries ScheduledMessageQueries
	db      sqlc.DBTX
}

func NewScheduledMessageRepository(queries ScheduledMessageQueries, db sqlc.DBTX) *ScheduledMessageRepository {
	return &ScheduledMessageRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduledMessageRepository) Create(ctx context.Context, msg *followup.ScheduledMessage) error {
	err := r.queries.CreateScheduledMessage(ctx, r.db, converter.ScheduledMessageToCreateParams(msg))
	if err != nil {
		return infra.WrapRepoErr("failed to create scheduled message", err)
	}
	return nil
}

func (r *ScheduledMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*followup.ScheduledMessage, error) {
	row, err := r.queries.FindScheduledMessageByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find scheduled message", err)
	}
	return converter.ScheduledMessageToDomain(row), nil
}

func (r *ScheduledMessageRepository) LockPair(ctx context.Context, recruiterID, candidateID uuid.UUID) error {
	if err := r.queries.LockFollowUpPair(ctx, r.db, pairKey(recruiterID, candidateID)); err != nil {
		return infra.WrapRepoErr("failed to lock follow-up pair", err)
	}
	return nil
}

func (r *ScheduledMessageRepository) HasBlocking(ctx context.Context, recruiterID, candidateID uuid.UUID, sentSince time.Time) (bool, error) {
	count, err := r.queries.CountBlockingFollowUps(ctx, r.db, sqlc.CountBlockingFollowUpsParams{
		RecruiterID: recruiterID,
		CandidateID: candidateID,
		SentSince:   pgconv.TimeToPgtype(sentSince),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check duplicate follow-ups", err)
	}
	return count > 0, nil
}

func (r *ScheduledMessageRepository) ClaimDue(ctx context.Context, now, staleBefore time.Time, limit int32) ([]*followup.ScheduledMessage, error) {
	rows, err := r.queries.ClaimDueScheduledMessages(ctx, r.db, sqlc.ClaimDueScheduledMessagesParams{
		Now:         pgconv.TimeToPgtype(now),
		StaleBefore: pgconv.TimeToPgtype(staleBefore),
		BatchSize:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due scheduled messages", err)
	}

	// RETURNING does not keep the subquery order
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ScheduledAt.Time.Before(rows[j].ScheduledAt.Time)
	})

	msgs := make([]*followup.ScheduledMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, converter.ScheduledMessageToDomain(row))
	}
	return msgs, nil
}

func (r *ScheduledMessageRepository) Save(ctx context.Context, msg *followup.ScheduledMessage, expected followup.Status) error {
	affected, err := r.queries.UpdateScheduledMessageState(ctx, r.db, converter.ScheduledMessageToStateParams(msg, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to update scheduled message", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("scheduled message is no longer "+expected.String(), nil, infra.KindConflict)
	}
	return nil
}

func pairKey(recruiterID, candidateID uuid.UUID) string {
	return "followup:" + recruiterID.String() + ":" + candidateID.String()
}
