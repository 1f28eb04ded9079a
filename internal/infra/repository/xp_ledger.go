package repository

import (
	"context"

	"talentbridge/internal/domain/xp"
	"talentbridge/internal/infra"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type XPLedgerQueries interface {
	InsertXPLedgerEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertXPLedgerEntryParams) (int64, error)
	SumXPForUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type XPLedgerRepository struct {
	queries XPLedgerQueries
	db      sqlc.DBTX
}

func NewXPLedgerRepository(queries XPLedgerQueries, db sqlc.DBTX) *XPLedgerRepository {
	return &XPLedgerRepository{queries: queries, db: db}
}

func (r *XPLedgerRepository) Append(ctx context.Context, e xp.Entry) (bool, error) {
	affected, err := r.queries.InsertXPLedgerEntry(ctx, r.db, sqlc.InsertXPLedgerEntryParams{
		ID:        e.ID,
		UserID:    e.UserID,
		Action:    e.Action.String(),
		Points:    e.Points,
		SourceID:  pgconv.UUIDPtrToPgtype(e.SourceID),
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to append xp entry", err)
	}
	return affected == 1, nil
}

func (r *XPLedgerRepository) Total(ctx context.Context, userID uuid.UUID) (int64, error) {
	total, err := r.queries.SumXPForUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum xp", err)
	}
	return total, nil
}
