package repository

import (
	"context"
	"time"

	"talentbridge/internal/domain/billing"
	"talentbridge/internal/domain/referral"
	"talentbridge/internal/infra"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BillingQueries interface {
	UpsertSubscription(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSubscriptionParams) (uuid.UUID, error)
	FindSubscriptionByProviderID(ctx context.Context, db sqlc.DBTX, providerSubscriptionID string) (sqlc.Subscriptions, error)
	RecordWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordWebhookEventParams) (int64, error)
	SetWebhookEventNote(ctx context.Context, db sqlc.DBTX, arg sqlc.SetWebhookEventNoteParams) error
	FindPendingReferralByReferredUser(ctx context.Context, db sqlc.DBTX, referredUserID uuid.UUID) (sqlc.AmbassadorReferrals, error)
	CompleteReferral(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteReferralParams) (int64, error)
	InsertAmbassadorEarning(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertAmbassadorEarningParams) (int64, error)
}

type SubscriptionRepository struct {
	queries BillingQueries
	db      sqlc.DBTX
}

func NewSubscriptionRepository(queries BillingQueries, db sqlc.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{queries: queries, db: db}
}

func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *billing.Subscription) error {
	id, err := r.queries.UpsertSubscription(ctx, r.db, sqlc.UpsertSubscriptionParams{
		UserID:                 sub.UserID,
		ProviderSubscriptionID: sub.ProviderSubscriptionID,
		ProviderCustomerID:     sub.ProviderCustomerID,
		Status:                 sub.Status.String(),
		TrialEnd:               pgconv.TimePtrToPgtype(sub.TrialEnd),
		CurrentPeriodEnd:       pgconv.TimePtrToPgtype(sub.CurrentPeriodEnd),
		CanceledAt:             pgconv.TimePtrToPgtype(sub.CanceledAt),
		UpdatedAt:              pgconv.TimeToPgtype(sub.UpdatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert subscription", err)
	}
	sub.ID = id
	return nil
}

func (r *SubscriptionRepository) FindByProviderID(ctx context.Context, providerSubscriptionID string) (*billing.Subscription, error) {
	row, err := r.queries.FindSubscriptionByProviderID(ctx, r.db, providerSubscriptionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find subscription", err)
	}
	return &billing.Subscription{
		ID:                     row.ID,
		UserID:                 row.UserID,
		ProviderSubscriptionID: row.ProviderSubscriptionID,
		ProviderCustomerID:     row.ProviderCustomerID,
		Status:                 billing.SubscriptionStatus(row.Status),
		TrialEnd:               pgconv.TimePtrFromPgtype(row.TrialEnd),
		CurrentPeriodEnd:       pgconv.TimePtrFromPgtype(row.CurrentPeriodEnd),
		CanceledAt:             pgconv.TimePtrFromPgtype(row.CanceledAt),
		UpdatedAt:              pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

type WebhookEventRepository struct {
	queries BillingQueries
	db      sqlc.DBTX
}

func NewWebhookEventRepository(queries BillingQueries, db sqlc.DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{queries: queries, db: db}
}

func (r *WebhookEventRepository) Record(ctx context.Context, provider, eventID, eventType string, at time.Time) (bool, error) {
	affected, err := r.queries.RecordWebhookEvent(ctx, r.db, sqlc.RecordWebhookEventParams{
		Provider:        provider,
		ProviderEventID: eventID,
		EventType:       eventType,
		ProcessedAt:     pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook event", err)
	}
	return affected == 1, nil
}

func (r *WebhookEventRepository) SetNote(ctx context.Context, provider, eventID, note string) error {
	err := r.queries.SetWebhookEventNote(ctx, r.db, sqlc.SetWebhookEventNoteParams{
		Provider:        provider,
		ProviderEventID: eventID,
		ProcessingNote:  pgconv.StringToPgtype(note),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to annotate webhook event", err)
	}
	return nil
}

type ReferralRepository struct {
	queries BillingQueries
	db      sqlc.DBTX
}

func NewReferralRepository(queries BillingQueries, db sqlc.DBTX) *ReferralRepository {
	return &ReferralRepository{queries: queries, db: db}
}

func (r *ReferralRepository) FindPendingByReferredUser(ctx context.Context, userID uuid.UUID) (*referral.Referral, error) {
	row, err := r.queries.FindPendingReferralByReferredUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending referral", err)
	}
	return &referral.Referral{
		ID:             row.ID,
		AmbassadorID:   row.AmbassadorID,
		ReferredUserID: row.ReferredUserID,
		Code:           row.ReferralCode,
		Status:         referral.Status(row.Status),
		CompletedAt:    pgconv.TimePtrFromPgtype(row.CompletedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *ReferralRepository) Complete(ctx context.Context, referralID uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.queries.CompleteReferral(ctx, r.db, sqlc.CompleteReferralParams{
		ID:          referralID,
		CompletedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete referral", err)
	}
	return affected == 1, nil
}

func (r *ReferralRepository) CreateEarning(ctx context.Context, e *referral.Earning) (bool, error) {
	affected, err := r.queries.InsertAmbassadorEarning(ctx, r.db, sqlc.InsertAmbassadorEarningParams{
		ID:              e.ID,
		AmbassadorID:    e.AmbassadorID,
		ReferralID:      e.ReferralID,
		AmountCents:     e.AmountCents,
		Currency:        e.Currency,
		SourceInvoiceID: e.SourceInvoiceID,
		CreatedAt:       pgconv.TimeToPgtype(e.CreatedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert ambassador earning", err)
	}
	return affected == 1, nil
}
