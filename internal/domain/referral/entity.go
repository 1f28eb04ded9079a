package referral

import (
	"time"

	"talentbridge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCompleted  = errs.New("referral already completed")
	ErrInvalidCommission = errs.New("commission amount must be positive")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

type Referral struct {
	ID             uuid.UUID
	AmbassadorID   uuid.UUID
	ReferredUserID uuid.UUID
	Code           string
	Status         Status
	CompletedAt    *time.Time
	CreatedAt      time.Time
}

func (r *Referral) Complete(at time.Time) error {
	if r.Status != StatusPending {
		return ErrAlreadyCompleted
	}
	r.Status = StatusCompleted
	r.CompletedAt = &at
	return nil
}

// Earning is the single commission credited for a completed referral.
type Earning struct {
	ID              uuid.UUID
	AmbassadorID    uuid.UUID
	ReferralID      uuid.UUID
	AmountCents     int64
	Currency        string
	SourceInvoiceID string
	CreatedAt       time.Time
}

func NewEarning(ref *Referral, amountCents int64, currency, sourceInvoiceID string, now time.Time) (*Earning, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidCommission
	}
	return &Earning{
		ID:              uuid.New(),
		AmbassadorID:    ref.AmbassadorID,
		ReferralID:      ref.ID,
		AmountCents:     amountCents,
		Currency:        currency,
		SourceInvoiceID: sourceInvoiceID,
		CreatedAt:       now,
	}, nil
}
