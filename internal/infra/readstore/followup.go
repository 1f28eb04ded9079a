package readstore

import (
	"context"

	"github.com/google/uuid"

	"talentbridge/internal/infra"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/pkg/pgconv"
	"talentbridge/internal/usecase/queries"
)

type FollowUpReadQueries interface {
	ListScheduledMessagesByRecruiter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListScheduledMessagesByRecruiterParams) ([]sqlc.ListScheduledMessagesByRecruiterRow, error)
	FindScheduledMessageView(ctx context.Context, db sqlc.DBTX, arg sqlc.FindScheduledMessageViewParams) (sqlc.FindScheduledMessageViewRow, error)
}

type FollowUpReadStore struct {
	queries FollowUpReadQueries
	db      sqlc.DBTX
}

func NewFollowUpReadStore(queries FollowUpReadQueries, db sqlc.DBTX) *FollowUpReadStore {
	return &FollowUpReadStore{queries: queries, db: db}
}

func (r *FollowUpReadStore) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID, status *string, limit int32) ([]*queries.FollowUpView, error) {
	rows, err := r.queries.ListScheduledMessagesByRecruiter(ctx, r.db, sqlc.ListScheduledMessagesByRecruiterParams{
		RecruiterID: recruiterID,
		Status:      pgconv.StringPtrToPgtype(status),
		RowLimit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list follow-ups", err)
	}

	views := make([]*queries.FollowUpView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toFollowUpView(sqlc.FindScheduledMessageViewRow(row)))
	}
	return views, nil
}

func (r *FollowUpReadStore) FindForRecruiter(ctx context.Context, id, recruiterID uuid.UUID) (*queries.FollowUpView, error) {
	row, err := r.queries.FindScheduledMessageView(ctx, r.db, sqlc.FindScheduledMessageViewParams{
		ID:          id,
		RecruiterID: recruiterID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("follow-up not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find follow-up", err)
	}
	return toFollowUpView(row), nil
}

func toFollowUpView(row sqlc.FindScheduledMessageViewRow) *queries.FollowUpView {
	return &queries.FollowUpView{
		ID:                row.ID,
		RecruiterID:       row.RecruiterID,
		CandidateID:       row.CandidateID,
		CandidateName:     row.CandidateName,
		TemplateID:        pgconv.UUIDPtrFromPgtype(row.TemplateID),
		MessageContent:    row.MessageContent,
		ScheduledAt:       pgconv.TimeFromPgtype(row.ScheduledAt),
		Status:            row.Status,
		NextPipelineStage: pgconv.StringPtrFromPgtype(row.NextPipelineStage),
		Attempts:          row.Attempts,
		SentAt:            pgconv.TimePtrFromPgtype(row.SentAt),
		ErrorMessage:      pgconv.StringPtrFromPgtype(row.ErrorMessage),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
