package billing

import (
	"time"

	"github.com/google/uuid"
)

const ProviderStripe = "stripe"

type EventType string

const (
	EventSubscriptionCreated     EventType = "customer.subscription.created"
	EventSubscriptionUpdated     EventType = "customer.subscription.updated"
	EventSubscriptionDeleted     EventType = "customer.subscription.deleted"
	EventInvoicePaymentSucceeded EventType = "invoice.payment_succeeded"
)

// Event is a verified provider notification reduced to what reconciliation needs.
type Event struct {
	Provider     string
	ID           string
	Type         EventType
	Created      time.Time
	Subscription *SubscriptionData
	Invoice      *InvoiceData
}

type SubscriptionData struct {
	ProviderSubscriptionID string
	ProviderCustomerID     string
	Status                 SubscriptionStatus
	TrialEnd               *time.Time
	CurrentPeriodEnd       *time.Time
	CanceledAt             *time.Time
	// UserID comes from subscription metadata when checkout attached it.
	UserID *uuid.UUID
}

type InvoiceData struct {
	ProviderInvoiceID      string
	ProviderSubscriptionID string
	ProviderCustomerID     string
	AmountPaid             int64
	Currency               string
	PaidAt                 time.Time
}
