package repository

import (
	"context"
	"time"

	"talentbridge/internal/infra"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/pkg/pgconv"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

type CandidateQueries interface {
	FindCandidateByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Candidates, error)
	TouchCandidateContact(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchCandidateContactParams) (int64, error)
	FindTemplateForRecruiter(ctx context.Context, db sqlc.DBTX, arg sqlc.FindTemplateForRecruiterParams) (sqlc.MessageTemplates, error)
}

type CandidateRepository struct {
	queries CandidateQueries
	db      sqlc.DBTX
}

func NewCandidateRepository(queries CandidateQueries, db sqlc.DBTX) *CandidateRepository {
	return &CandidateRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.CandidateSnapshot, error) {
	row, err := r.queries.FindCandidateByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find candidate", err)
	}
	return &shared.CandidateSnapshot{
		ID:            row.ID,
		RecruiterID:   row.RecruiterID,
		UserID:        pgconv.UUIDPtrFromPgtype(row.UserID),
		FullName:      row.FullName,
		PipelineStage: row.PipelineStage,
	}, nil
}

func (r *CandidateRepository) TouchContact(ctx context.Context, id uuid.UUID, at time.Time, pipelineStage *string) error {
	affected, err := r.queries.TouchCandidateContact(ctx, r.db, sqlc.TouchCandidateContactParams{
		ContactedAt:   pgconv.TimeToPgtype(at),
		PipelineStage: pgconv.StringPtrToPgtype(pipelineStage),
		ID:            id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update candidate contact", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("candidate not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CandidateRepository) TemplateForRecruiter(ctx context.Context, templateID, recruiterID uuid.UUID) (*shared.TemplateSnapshot, error) {
	row, err := r.queries.FindTemplateForRecruiter(ctx, r.db, sqlc.FindTemplateForRecruiterParams{
		ID:          templateID,
		RecruiterID: recruiterID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find message template", err)
	}
	return &shared.TemplateSnapshot{ID: row.ID, Name: row.Name, Body: row.Body}, nil
}
