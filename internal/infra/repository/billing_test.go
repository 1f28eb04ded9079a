//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"talentbridge/internal/domain/referral"
	sqlc "talentbridge/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBillingQueries struct {
	mock.Mock
}

func (m *MockBillingQueries) UpsertSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSubscriptionParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBillingQueries) FindSubscriptionByProviderID(ctx context.Context, db sqlc.DBTX, providerSubscriptionID string) (sqlc.Subscriptions, error) {
	args := m.Called(ctx, db, providerSubscriptionID)
	return args.Get(0).(sqlc.Subscriptions), args.Error(1)
}

func (m *MockBillingQueries) RecordWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordWebhookEventParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillingQueries) SetWebhookEventNote(ctx context.Context, db sqlc.DBTX, arg sqlc.SetWebhookEventNoteParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockBillingQueries) FindPendingReferralByReferredUser(ctx context.Context, db sqlc.DBTX, referredUserID uuid.UUID) (sqlc.AmbassadorReferrals, error) {
	args := m.Called(ctx, db, referredUserID)
	return args.Get(0).(sqlc.AmbassadorReferrals), args.Error(1)
}

func (m *MockBillingQueries) CompleteReferral(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteReferralParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillingQueries) InsertAmbassadorEarning(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAmbassadorEarningParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestWebhookEventRepository_Record(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "first delivery", affected: 1, want: true},
		{name: "redelivery", affected: 0, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockQueries := new(MockBillingQueries)
			mockQueries.On("RecordWebhookEvent", mock.Anything, mock.Anything, sqlc.RecordWebhookEventParams{
				Provider:        "stripe",
				ProviderEventID: "evt_1",
				EventType:       "invoice.payment_succeeded",
				ProcessedAt:     ts(at),
			}).Return(tc.affected, nil)

			got, err := NewWebhookEventRepository(mockQueries, nil).Record(context.Background(), "stripe", "evt_1", "invoice.payment_succeeded", at)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReferralRepository_CreateEarning(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ref := &referral.Referral{ID: uuid.New(), AmbassadorID: uuid.New(), Status: referral.StatusCompleted}
	earning, err := referral.NewEarning(ref, 2500, "usd", "in_1", now)
	require.NoError(t, err)

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "inserted", affected: 1, want: true},
		{name: "already credited", affected: 0, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockQueries := new(MockBillingQueries)
			mockQueries.On("InsertAmbassadorEarning", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.InsertAmbassadorEarningParams) bool {
				return arg.ReferralID == ref.ID && arg.AmountCents == 2500 && arg.SourceInvoiceID == "in_1"
			})).Return(tc.affected, nil)

			got, err := NewReferralRepository(mockQueries, nil).CreateEarning(context.Background(), earning)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReferralRepository_Complete(t *testing.T) {
	id := uuid.New()
	mockQueries := new(MockBillingQueries)
	mockQueries.On("CompleteReferral", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

	ok, err := NewReferralRepository(mockQueries, nil).Complete(context.Background(), id, time.Now())

	require.NoError(t, err)
	assert.False(t, ok)
}
