package billing

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	StatusTrialing          SubscriptionStatus = "trialing"
	StatusActive            SubscriptionStatus = "active"
	StatusPastDue           SubscriptionStatus = "past_due"
	StatusUnpaid            SubscriptionStatus = "unpaid"
	StatusCanceled          SubscriptionStatus = "canceled"
	StatusIncomplete        SubscriptionStatus = "incomplete"
	StatusIncompleteExpired SubscriptionStatus = "incomplete_expired"
	StatusPaused            SubscriptionStatus = "paused"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// GrantsPremium is the only rule deriving a user's premium flag.
func (s SubscriptionStatus) GrantsPremium() bool {
	return s == StatusActive || s == StatusTrialing
}

type Subscription struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	ProviderSubscriptionID string
	ProviderCustomerID     string
	Status                 SubscriptionStatus
	TrialEnd               *time.Time
	CurrentPeriodEnd       *time.Time
	CanceledAt             *time.Time
	UpdatedAt              time.Time
}

func (s *Subscription) IsPremium() bool {
	return s.Status.GrantsPremium()
}

// Cancel marks the subscription ended by the provider.
func (s *Subscription) Cancel(at time.Time) {
	s.Status = StatusCanceled
	s.CanceledAt = &at
	s.UpdatedAt = at
}

// IsFirstPaidConversion reports whether a successful invoice at paidAt converts the subscription to paid.
// Without a recorded trial any paid invoice counts.
func (s *Subscription) IsFirstPaidConversion(paidAt time.Time, amountPaid int64) bool {
	if amountPaid <= 0 {
		return false
	}
	if s.TrialEnd == nil {
		return true
	}
	return paidAt.After(*s.TrialEnd)
}
