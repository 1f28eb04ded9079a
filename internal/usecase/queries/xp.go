package queries

import (
	"context"

	"talentbridge/internal/domain/xp"

	"github.com/google/uuid"
)

const recentXPEntries = 20

type XPReadStore interface {
	Total(ctx context.Context, userID uuid.UUID) (int64, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int32) ([]XPEntryView, error)
}

type XPQueries interface {
	Summary(ctx context.Context, userID uuid.UUID) (*XPSummaryView, error)
}

type xpQueriesImpl struct {
	repo XPReadStore
}

func NewXPQueries(repo XPReadStore) XPQueries {
	return &xpQueriesImpl{repo: repo}
}

// Summary derives the level from the ledger total on every read; nothing is cached.
func (q *xpQueriesImpl) Summary(ctx context.Context, userID uuid.UUID) (*XPSummaryView, error) {
	total, err := q.repo.Total(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := q.repo.Recent(ctx, userID, recentXPEntries)
	if err != nil {
		return nil, err
	}

	p := xp.Level(total)
	return &XPSummaryView{
		Total:          p.Total,
		Level:          p.Level,
		CurrentLevelXP: p.CurrentLevelXP,
		NextLevelXP:    p.NextLevelXP,
		Progress:       p.Ratio,
		Recent:         recent,
	}, nil
}
