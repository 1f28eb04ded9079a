package repository

import (
	"context"
	"time"

	"talentbridge/internal/domain/followup"
	"talentbridge/internal/infra"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/pkg/pgconv"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

type FollowUpQueries interface {
	UpsertFollowUp(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertFollowUpParams) error
	MarkFollowUpResponseReceived(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkFollowUpResponseReceivedParams) (int64, error)
	InsertCandidateMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCandidateMessageParams) (uuid.UUID, error)
	InsertAutomationLog(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAutomationLogParams) error
}

type FollowUpRepository struct {
	queries FollowUpQueries
	db      sqlc.DBTX
}

func NewFollowUpRepository(queries FollowUpQueries, db sqlc.DBTX) *FollowUpRepository {
	return &FollowUpRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FollowUpRepository) Upsert(ctx context.Context, rec followup.Record) error {
	err := r.queries.UpsertFollowUp(ctx, r.db, sqlc.UpsertFollowUpParams{
		RecruiterID:     rec.RecruiterID,
		CandidateID:     rec.CandidateID,
		LastContact:     pgconv.TimePtrToPgtype(rec.LastContact),
		FollowupDue:     pgconv.TimePtrToPgtype(rec.FollowUpDue),
		FollowupSent:    rec.FollowUpSent,
		FollowupMessage: rec.Message,
		UpdatedAt:       pgconv.TimeToPgtype(rec.UpdatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert follow-up record", err)
	}
	return nil
}

func (r *FollowUpRepository) MarkResponseReceived(ctx context.Context, recruiterID, candidateID uuid.UUID, at time.Time) error {
	affected, err := r.queries.MarkFollowUpResponseReceived(ctx, r.db, sqlc.MarkFollowUpResponseReceivedParams{
		RecruiterID: recruiterID,
		CandidateID: candidateID,
		UpdatedAt:   pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark follow-up response", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("follow-up record not found", nil, infra.KindNotFound)
	}
	return nil
}

// MessageRepository writes delivered messages into the candidate thread.
type MessageRepository struct {
	queries FollowUpQueries
	db      sqlc.DBTX
}

func NewMessageRepository(queries FollowUpQueries, db sqlc.DBTX) *MessageRepository {
	return &MessageRepository{queries: queries, db: db}
}

func (r *MessageRepository) Insert(ctx context.Context, msg shared.DeliveredMessage) (uuid.UUID, error) {
	id, err := r.queries.InsertCandidateMessage(ctx, r.db, sqlc.InsertCandidateMessageParams{
		RecruiterID:        msg.RecruiterID,
		CandidateID:        msg.CandidateID,
		ScheduledMessageID: pgconv.UUIDToPgtype(msg.ScheduledMessageID),
		Content:            msg.Content,
		SentAt:             pgconv.TimeToPgtype(msg.SentAt),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert candidate message", err)
	}
	return id, nil
}

type AutomationLogRepository struct {
	queries FollowUpQueries
	db      sqlc.DBTX
}

func NewAutomationLogRepository(queries FollowUpQueries, db sqlc.DBTX) *AutomationLogRepository {
	return &AutomationLogRepository{queries: queries, db: db}
}

func (r *AutomationLogRepository) Append(ctx context.Context, entry shared.AutomationLogEntry) error {
	err := r.queries.InsertAutomationLog(ctx, r.db, sqlc.InsertAutomationLogParams{
		RecruiterID:        entry.RecruiterID,
		CandidateID:        entry.CandidateID,
		ScheduledMessageID: pgconv.UUIDPtrToPgtype(entry.ScheduledMessageID),
		Action:             entry.Action,
		Status:             entry.Status,
		ErrorMessage:       pgconv.StringPtrToPgtype(entry.ErrorMessage),
		CreatedAt:          pgconv.TimeToPgtype(entry.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append automation log", err)
	}
	return nil
}
