//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockXPReadQueries struct {
	mock.Mock
}

func (m *MockXPReadQueries) SumXPForUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockXPReadQueries) ListRecentXPForUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecentXPForUserParams) ([]sqlc.XpLedger, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.XpLedger), args.Error(1)
}

func TestXPReadStore_Recent(t *testing.T) {
	userID := uuid.New()
	sourceID := uuid.New()
	entryID := uuid.New()
	at := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)

	mockQueries := new(MockXPReadQueries)
	mockQueries.On("ListRecentXPForUser", mock.Anything, mock.Anything, sqlc.ListRecentXPForUserParams{UserID: userID, Limit: 5}).
		Return([]sqlc.XpLedger{{
			ID:        entryID,
			UserID:    userID,
			Action:    "followup_sent",
			Points:    10,
			SourceID:  pgtype.UUID{Bytes: sourceID, Valid: true},
			CreatedAt: pgtype.Timestamptz{Time: at, Valid: true},
		}}, nil)

	got, err := NewXPReadStore(mockQueries, nil).Recent(context.Background(), userID, 5)
	require.NoError(t, err)

	want := []queries.XPEntryView{{
		ID:        entryID,
		Action:    "followup_sent",
		Points:    10,
		SourceID:  &sourceID,
		CreatedAt: at,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Recent() mismatch (-want +got):\n%s", diff)
	}
}
