//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"talentbridge/internal/infra"
	sqlc "talentbridge/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserQueries) SetUserPremium(ctx context.Context, db sqlc.DBTX, arg sqlc.SetUserPremiumParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserQueries) FindUserIDByStripeCustomerID(ctx context.Context, db sqlc.DBTX, stripeCustomerID pgtype.Text) (uuid.UUID, error) {
	args := m.Called(ctx, db, stripeCustomerID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserQueries) LinkUserStripeCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkUserStripeCustomerParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserQueries) FindUserContact(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserContactRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserContactRow), args.Error(1)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, sqlc.UpdateUserLastLoginParams{
				ID:        testUserID,
				LastLogin: pgtype.Timestamptz{Time: at, Valid: true},
			}).Return(tt.mockError)

			repo := NewUserRepository(mockQueries, nil)

			err := repo.UpdateLastLogin(context.Background(), testUserID, at)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestSetPremium(t *testing.T) {
	userID := uuid.New()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		wantKind infra.RepositoryErrorKind
	}{
		{name: "updated", affected: 1},
		{name: "missing user", affected: 0, wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserQueries)
			mockQueries.On("SetUserPremium", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.SetUserPremiumParams) bool {
				return arg.ID == userID && arg.IsPremium
			})).Return(tt.affected, nil)

			repo := NewUserRepository(mockQueries, nil)
			err := repo.SetPremium(context.Background(), userID, true, at)

			if tt.wantKind == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
		})
	}
}

func TestFindIDByCustomer(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		mockQueries.On("FindUserIDByStripeCustomerID", mock.Anything, mock.Anything, pgtype.Text{String: "cus_1", Valid: true}).
			Return(userID, nil)

		got, err := NewUserRepository(mockQueries, nil).FindIDByCustomer(context.Background(), "cus_1")

		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		mockQueries.On("FindUserIDByStripeCustomerID", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, pgx.ErrNoRows)

		_, err := NewUserRepository(mockQueries, nil).FindIDByCustomer(context.Background(), "cus_missing")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
