package payment

import (
	"encoding/json"
	"time"

	"talentbridge/internal/domain/billing"
	"talentbridge/internal/pkg/config"
	"talentbridge/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// MetadataUserIDKey is the subscription metadata key checkout stamps with our user id.
const MetadataUserIDKey = "user_id"

var ErrUnexpectedPayload = errs.New("unexpected webhook payload")

// StripeVerifier checks the Stripe-Signature header and reduces the event to billing.Event.
type StripeVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewStripeVerifier(cfg config.StripeConfig) *StripeVerifier {
	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &StripeVerifier{secret: cfg.WebhookSecret, tolerance: tolerance}
}

func (v *StripeVerifier) Verify(payload []byte, signatureHeader string) (*billing.Event, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "stripe signature verification failed")
	}
	return translate(ev)
}

func translate(ev stripe.Event) (*billing.Event, error) {
	out := &billing.Event{
		Provider: billing.ProviderStripe,
		ID:       ev.ID,
		Type:     billing.EventType(ev.Type),
		Created:  time.Unix(ev.Created, 0).UTC(),
	}
	if ev.Data == nil {
		return out, nil
	}

	switch out.Type {
	case billing.EventSubscriptionCreated, billing.EventSubscriptionUpdated, billing.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(ev.Data.Raw, &sub); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "decode subscription"), ErrUnexpectedPayload)
		}
		out.Subscription = subscriptionData(&sub)
	case billing.EventInvoicePaymentSucceeded:
		var inv stripe.Invoice
		if err := json.Unmarshal(ev.Data.Raw, &inv); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "decode invoice"), ErrUnexpectedPayload)
		}
		out.Invoice = invoiceData(&inv, out.Created)
	}
	return out, nil
}

func subscriptionData(sub *stripe.Subscription) *billing.SubscriptionData {
	data := &billing.SubscriptionData{
		ProviderSubscriptionID: sub.ID,
		Status:                 billing.SubscriptionStatus(sub.Status),
		TrialEnd:               unixPtr(sub.TrialEnd),
		CurrentPeriodEnd:       unixPtr(sub.CurrentPeriodEnd),
		CanceledAt:             unixPtr(sub.CanceledAt),
	}
	if sub.Customer != nil {
		data.ProviderCustomerID = sub.Customer.ID
	}
	if raw, ok := sub.Metadata[MetadataUserIDKey]; ok {
		if id, err := uuid.Parse(raw); err == nil {
			data.UserID = &id
		}
	}
	return data
}

// invoiceData stamps PaidAt with the event time, not the invoice status transition.
func invoiceData(inv *stripe.Invoice, eventTime time.Time) *billing.InvoiceData {
	data := &billing.InvoiceData{
		ProviderInvoiceID: inv.ID,
		AmountPaid:        inv.AmountPaid,
		Currency:          string(inv.Currency),
		PaidAt:            eventTime,
	}
	if inv.Subscription != nil {
		data.ProviderSubscriptionID = inv.Subscription.ID
	}
	if inv.Customer != nil {
		data.ProviderCustomerID = inv.Customer.ID
	}
	return data
}

func unixPtr(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
