//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"talentbridge/internal/domain/followup"
	"talentbridge/internal/infra"
	sqlc "talentbridge/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockScheduledMessageQueries struct {
	mock.Mock
}

func (m *MockScheduledMessageQueries) CreateScheduledMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateScheduledMessageParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockScheduledMessageQueries) FindScheduledMessageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ScheduledMessages, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.ScheduledMessages), args.Error(1)
}

func (m *MockScheduledMessageQueries) LockFollowUpPair(ctx context.Context, db sqlc.DBTX, pairKey string) error {
	args := m.Called(ctx, db, pairKey)
	return args.Error(0)
}

func (m *MockScheduledMessageQueries) CountBlockingFollowUps(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBlockingFollowUpsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduledMessageQueries) ClaimDueScheduledMessages(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueScheduledMessagesParams) ([]sqlc.ScheduledMessages, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ScheduledMessages), args.Error(1)
}

func (m *MockScheduledMessageQueries) UpdateScheduledMessageState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateScheduledMessageStateParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestScheduledMessageRepository_ClaimDue(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)
	later := uuid.New()
	earlier := uuid.New()

	mockQueries := new(MockScheduledMessageQueries)
	mockQueries.On("ClaimDueScheduledMessages", mock.Anything, mock.Anything, sqlc.ClaimDueScheduledMessagesParams{
		Now:         ts(now),
		StaleBefore: ts(now.Add(-5 * time.Minute)),
		BatchSize:   10,
	}).Return([]sqlc.ScheduledMessages{
		{ID: later, Status: "processing", ScheduledAt: ts(now.Add(-time.Minute)), MessageContent: "b"},
		{ID: earlier, Status: "processing", ScheduledAt: ts(now.Add(-time.Hour)), MessageContent: "a"},
	}, nil)

	repo := NewScheduledMessageRepository(mockQueries, nil)
	got, err := repo.ClaimDue(context.Background(), now, now.Add(-5*time.Minute), 10)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, earlier, got[0].ID())
	assert.Equal(t, later, got[1].ID())
	assert.Equal(t, followup.StatusProcessing, got[0].Status())
	mockQueries.AssertExpectations(t)
}

func TestScheduledMessageRepository_Save(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)

	tests := []struct {
		name      string
		affected  int64
		dbErr     error
		wantKind  infra.RepositoryErrorKind
		wantError bool
	}{
		{name: "state updated", affected: 1},
		{name: "lost compare-and-set", affected: 0, wantKind: infra.KindConflict, wantError: true},
		{name: "database error", dbErr: assert.AnError, wantKind: infra.KindDBFailure, wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := followup.Restore(followup.RestoreParams{
				ID:          uuid.New(),
				Content:     "hello",
				ScheduledAt: now.Add(-time.Minute),
				Status:      followup.StatusProcessing,
			})
			require.NoError(t, msg.MarkSent(now))

			mockQueries := new(MockScheduledMessageQueries)
			mockQueries.On("UpdateScheduledMessageState", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.UpdateScheduledMessageStateParams) bool {
				return arg.ID == msg.ID() && arg.Status == "sent" && arg.ExpectedStatus == "processing" && arg.SentAt.Valid
			})).Return(tc.affected, tc.dbErr)

			err := NewScheduledMessageRepository(mockQueries, nil).Save(context.Background(), msg, followup.StatusProcessing)

			if !tc.wantError {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.wantKind))
		})
	}
}

func TestScheduledMessageRepository_Create(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	msg, err := followup.NewScheduledMessage(uuid.New(), uuid.New(), uuid.New(), nil, "hi", now.Add(time.Hour), nil, now)
	require.NoError(t, err)

	t.Run("duplicate key is classified", func(t *testing.T) {
		mockQueries := new(MockScheduledMessageQueries)
		mockQueries.On("CreateScheduledMessage", mock.Anything, mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23505"})

		err := NewScheduledMessageRepository(mockQueries, nil).Create(context.Background(), msg)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("pending row is written", func(t *testing.T) {
		mockQueries := new(MockScheduledMessageQueries)
		mockQueries.On("CreateScheduledMessage", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateScheduledMessageParams) bool {
			return arg.ID == msg.ID() && arg.Status == "pending" && arg.MessageContent == "hi" && !arg.TemplateID.Valid
		})).Return(nil)

		require.NoError(t, NewScheduledMessageRepository(mockQueries, nil).Create(context.Background(), msg))
		mockQueries.AssertExpectations(t)
	})
}

func TestScheduledMessageRepository_HasBlocking(t *testing.T) {
	recruiterID, candidateID := uuid.New(), uuid.New()
	since := time.Date(2023, 12, 31, 0, 5, 0, 0, time.UTC)

	for _, tc := range []struct {
		name  string
		count int64
		want  bool
	}{
		{name: "none", count: 0, want: false},
		{name: "one blocking", count: 1, want: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mockQueries := new(MockScheduledMessageQueries)
			mockQueries.On("CountBlockingFollowUps", mock.Anything, mock.Anything, sqlc.CountBlockingFollowUpsParams{
				RecruiterID: recruiterID,
				CandidateID: candidateID,
				SentSince:   ts(since),
			}).Return(tc.count, nil)

			got, err := NewScheduledMessageRepository(mockQueries, nil).HasBlocking(context.Background(), recruiterID, candidateID, since)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
