package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"talentbridge/internal/domain/billing"
	"talentbridge/internal/domain/referral"
	"talentbridge/internal/domain/xp"
	"talentbridge/internal/infra"
	"talentbridge/internal/pkg/clock"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/pkg/metrics"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	NotificationKindCommission = "commission_earned"
	EmailTopicCommission       = "commission_earned"
	JobKindEmail               = "email"
)

// Processing notes stored on acknowledged events that changed nothing.
const (
	noteIgnoredType        = "ignored event type"
	noteUnresolvedUser     = "no user for subscription"
	noteUnknownSub         = "unknown subscription"
	noteNoSubscription     = "invoice without subscription"
	noteNotConversion      = "not a first paid conversion"
	noteNoPendingReferral  = "no pending referral"
	noteReferralCompleted  = "referral already completed"
	noteCommissionExisting = "commission already credited"
)

type CommissionSettings struct {
	AmountCents int64
	Currency    string
}

type WebhookResult struct {
	Received  bool   `json:"received"`
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	Duplicate bool   `json:"duplicate"`
	Note      string `json:"note,omitempty"`
}

// CommissionEmailPayload is the outbox payload of a commission_earned email job.
type CommissionEmailPayload struct {
	AmbassadorID uuid.UUID `json:"ambassador_id"`
	ReferralID   uuid.UUID `json:"referral_id"`
	AmountCents  int64     `json:"amount_cents"`
	Currency     string    `json:"currency"`
}

// CommissionEvent is the realtime payload sent to the ambassador on the notifications topic.
type CommissionEvent struct {
	Kind        string    `json:"kind"`
	ReferralID  uuid.UUID `json:"referral_id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
}

type BillingCommands interface {
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error)
}

type billingCommandsImpl struct {
	uow        shared.UnitOfWork
	verifier   shared.BillingEventVerifier
	realtime   shared.RealtimePublisher
	clock      clock.Clock
	commission CommissionSettings
	logger     *slog.Logger
}

func NewBillingCommands(
	uow shared.UnitOfWork,
	verifier shared.BillingEventVerifier,
	realtime shared.RealtimePublisher,
	clk clock.Clock,
	commission CommissionSettings,
	logger *slog.Logger,
) BillingCommands {
	return &billingCommandsImpl{
		uow:        uow,
		verifier:   verifier,
		realtime:   realtime,
		clock:      clk,
		commission: commission,
		logger:     logger,
	}
}

// credit describes a commission committed by the current delivery.
type credit struct {
	ref    *referral.Referral
	amount int64
	points *AwardResult
}

func (b *billingCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error) {
	ev, err := b.verifier.Verify(payload, signatureHeader)
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("unknown", "invalid_signature").Inc()
		return nil, errs.Mark(err, errs.ErrInvalidSignature)
	}

	var (
		result  *WebhookResult
		credits *credit
	)
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = &WebhookResult{Received: true, EventID: ev.ID, Type: string(ev.Type)}
		credits = nil

		recorded, err := tx.WebhookEvents().Record(ctx, ev.Provider, ev.ID, string(ev.Type), b.clock.Now())
		if err != nil {
			return err
		}
		if !recorded {
			result.Duplicate = true
			return nil
		}

		var note string
		switch ev.Type {
		case billing.EventSubscriptionCreated, billing.EventSubscriptionUpdated:
			note, err = b.applySubscription(ctx, tx, ev)
		case billing.EventSubscriptionDeleted:
			note, err = b.cancelSubscription(ctx, tx, ev)
		case billing.EventInvoicePaymentSucceeded:
			note, credits, err = b.applyInvoice(ctx, tx, ev)
		default:
			note = noteIgnoredType
		}
		if err != nil {
			return err
		}

		if note != "" {
			result.Note = note
			return tx.WebhookEvents().SetNote(ctx, ev.Provider, ev.ID, note)
		}
		return nil
	})
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues(string(ev.Type), "error").Inc()
		return nil, err
	}

	switch {
	case result.Duplicate:
		metrics.WebhookEventsTotal.WithLabelValues(string(ev.Type), "duplicate").Inc()
		b.logger.Info("duplicate webhook delivery", "event_id", ev.ID, "type", ev.Type)
	case result.Note != "":
		metrics.WebhookEventsTotal.WithLabelValues(string(ev.Type), "acknowledged").Inc()
		b.logger.Info("webhook acknowledged", "event_id", ev.ID, "type", ev.Type, "note", result.Note)
	default:
		metrics.WebhookEventsTotal.WithLabelValues(string(ev.Type), "processed").Inc()
		b.logger.Info("webhook processed", "event_id", ev.ID, "type", ev.Type)
	}

	if credits != nil {
		metrics.CommissionsCreditedTotal.Inc()
		b.announceCommission(ctx, credits)
	}
	return result, nil
}

func (b *billingCommandsImpl) applySubscription(ctx context.Context, tx shared.Tx, ev *billing.Event) (string, error) {
	data := ev.Subscription
	if data == nil {
		return "", errs.Wrap(errs.ErrDomainValidation, "subscription event without subscription payload")
	}

	userID, ok, err := b.resolveUser(ctx, tx, data)
	if err != nil || !ok {
		return noteUnresolvedUser, err
	}

	now := b.clock.Now()
	sub := &billing.Subscription{
		UserID:                 userID,
		ProviderSubscriptionID: data.ProviderSubscriptionID,
		ProviderCustomerID:     data.ProviderCustomerID,
		Status:                 data.Status,
		TrialEnd:               data.TrialEnd,
		CurrentPeriodEnd:       data.CurrentPeriodEnd,
		CanceledAt:             data.CanceledAt,
		UpdatedAt:              now,
	}
	if err := tx.Subscriptions().Upsert(ctx, sub); err != nil {
		return "", err
	}
	return "", tx.Users().SetPremium(ctx, userID, sub.IsPremium(), now)
}

func (b *billingCommandsImpl) cancelSubscription(ctx context.Context, tx shared.Tx, ev *billing.Event) (string, error) {
	data := ev.Subscription
	if data == nil {
		return "", errs.Wrap(errs.ErrDomainValidation, "subscription event without subscription payload")
	}

	now := b.clock.Now()
	sub, err := tx.Subscriptions().FindByProviderID(ctx, data.ProviderSubscriptionID)
	switch {
	case err == nil:
	case infra.IsKind(err, infra.KindNotFound):
		userID, ok, rerr := b.resolveUser(ctx, tx, data)
		if rerr != nil || !ok {
			return noteUnresolvedUser, rerr
		}
		sub = &billing.Subscription{
			UserID:                 userID,
			ProviderSubscriptionID: data.ProviderSubscriptionID,
			ProviderCustomerID:     data.ProviderCustomerID,
			TrialEnd:               data.TrialEnd,
			CurrentPeriodEnd:       data.CurrentPeriodEnd,
		}
	default:
		return "", err
	}

	canceledAt := now
	if data.CanceledAt != nil {
		canceledAt = *data.CanceledAt
	}
	sub.Cancel(canceledAt)
	sub.UpdatedAt = now

	if err := tx.Subscriptions().Upsert(ctx, sub); err != nil {
		return "", err
	}
	return "", tx.Users().SetPremium(ctx, sub.UserID, false, now)
}

func (b *billingCommandsImpl) applyInvoice(ctx context.Context, tx shared.Tx, ev *billing.Event) (string, *credit, error) {
	inv := ev.Invoice
	if inv == nil {
		return "", nil, errs.Wrap(errs.ErrDomainValidation, "invoice event without invoice payload")
	}
	if inv.ProviderSubscriptionID == "" {
		return noteNoSubscription, nil, nil
	}

	sub, err := tx.Subscriptions().FindByProviderID(ctx, inv.ProviderSubscriptionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return noteUnknownSub, nil, nil
		}
		return "", nil, err
	}
	if !sub.IsFirstPaidConversion(inv.PaidAt, inv.AmountPaid) {
		return noteNotConversion, nil, nil
	}

	ref, err := tx.Referrals().FindPendingByReferredUser(ctx, sub.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return noteNoPendingReferral, nil, nil
		}
		return "", nil, err
	}

	now := b.clock.Now()
	completed, err := tx.Referrals().Complete(ctx, ref.ID, now)
	if err != nil {
		return "", nil, err
	}
	if !completed {
		return noteReferralCompleted, nil, nil
	}
	if err := ref.Complete(now); err != nil {
		return "", nil, err
	}

	earning, err := referral.NewEarning(ref, b.commission.AmountCents, b.commission.Currency, inv.ProviderInvoiceID, now)
	if err != nil {
		return "", nil, err
	}
	created, err := tx.Referrals().CreateEarning(ctx, earning)
	if err != nil {
		return "", nil, err
	}
	if !created {
		return noteCommissionExisting, nil, nil
	}

	if _, err := tx.Notifications().Create(ctx, shared.InAppNotification{
		UserID:    ref.AmbassadorID,
		Kind:      NotificationKindCommission,
		Title:     "Referral commission earned",
		Body:      fmt.Sprintf("Your referral converted to a paid plan. %s has been credited.", formatAmount(earning.AmountCents, earning.Currency)),
		CreatedAt: now,
	}); err != nil {
		return "", nil, err
	}

	refID := ref.ID
	points, err := awardInTx(ctx, tx, ref.AmbassadorID, xp.ActionReferralCompleted, &refID, b.clock)
	if err != nil {
		return "", nil, err
	}

	payload, err := json.Marshal(CommissionEmailPayload{
		AmbassadorID: ref.AmbassadorID,
		ReferralID:   ref.ID,
		AmountCents:  earning.AmountCents,
		Currency:     earning.Currency,
	})
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to encode commission email payload")
	}
	if err := tx.Notifications().CreateJob(ctx, JobKindEmail, EmailTopicCommission, payload, now); err != nil {
		return "", nil, err
	}

	return "", &credit{ref: ref, amount: earning.AmountCents, points: points}, nil
}

// resolveUser prefers the user id stamped into subscription metadata, then the linked customer id.
func (b *billingCommandsImpl) resolveUser(ctx context.Context, tx shared.Tx, data *billing.SubscriptionData) (uuid.UUID, bool, error) {
	if data.UserID != nil {
		_, err := tx.Users().FindContact(ctx, *data.UserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, false, nil
			}
			return uuid.Nil, false, err
		}
		if data.ProviderCustomerID != "" {
			if err := tx.Users().LinkCustomer(ctx, *data.UserID, data.ProviderCustomerID, b.clock.Now()); err != nil {
				return uuid.Nil, false, err
			}
		}
		return *data.UserID, true, nil
	}

	if data.ProviderCustomerID == "" {
		return uuid.Nil, false, nil
	}
	userID, err := tx.Users().FindIDByCustomer(ctx, data.ProviderCustomerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	return userID, true, nil
}

func (b *billingCommandsImpl) announceCommission(ctx context.Context, c *credit) {
	err := b.realtime.Publish(ctx, shared.TopicNotifications, c.ref.AmbassadorID, CommissionEvent{
		Kind:        NotificationKindCommission,
		ReferralID:  c.ref.ID,
		AmountCents: c.amount,
		Currency:    b.commission.Currency,
	})
	if err != nil {
		b.logger.Warn("failed to publish commission notification", "ambassador_id", c.ref.AmbassadorID, "error", err.Error())
	}
	if c.points != nil && c.points.Awarded {
		publishPoints(ctx, b.realtime, b.logger, c.ref.AmbassadorID, c.points)
	}
}

func formatAmount(cents int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", cents/100, cents%100, strings.ToUpper(currency))
}
