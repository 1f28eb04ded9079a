package readstore

import (
	"context"

	"github.com/google/uuid"

	"talentbridge/internal/infra"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/pkg/pgconv"
	"talentbridge/internal/usecase/queries"
)

type XPReadQueries interface {
	SumXPForUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	ListRecentXPForUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentXPForUserParams) ([]sqlc.XpLedger, error)
}

type XPReadStore struct {
	queries XPReadQueries
	db      sqlc.DBTX
}

func NewXPReadStore(queries XPReadQueries, db sqlc.DBTX) *XPReadStore {
	return &XPReadStore{queries: queries, db: db}
}

func (r *XPReadStore) Total(ctx context.Context, userID uuid.UUID) (int64, error) {
	total, err := r.queries.SumXPForUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum xp", err)
	}
	return total, nil
}

func (r *XPReadStore) Recent(ctx context.Context, userID uuid.UUID, limit int32) ([]queries.XPEntryView, error) {
	rows, err := r.queries.ListRecentXPForUser(ctx, r.db, sqlc.ListRecentXPForUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list xp entries", err)
	}

	entries := make([]queries.XPEntryView, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, queries.XPEntryView{
			ID:        row.ID,
			Action:    row.Action,
			Points:    row.Points,
			SourceID:  pgconv.UUIDPtrFromPgtype(row.SourceID),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return entries, nil
}
