package shared

import (
	"context"
	"time"

	"talentbridge/internal/domain/billing"
	"talentbridge/internal/domain/followup"
	"talentbridge/internal/domain/referral"
	"talentbridge/internal/domain/xp"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// fn may run more than once; keep side effects outside the database after Within returns.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	ScheduledMessages() ScheduledMessageRepository
	Candidates() CandidateRepository
	FollowUps() FollowUpRepository
	Messages() MessageRepository
	AutomationLogs() AutomationLogRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Subscriptions() SubscriptionRepository
	Referrals() ReferralRepository
	WebhookEvents() WebhookEventRepository
	XPLedger() XPLedgerRepository
}

type ScheduledMessageRepository interface {
	Create(ctx context.Context, msg *followup.ScheduledMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*followup.ScheduledMessage, error)
	// LockPair serializes schedulers of the same (recruiter, candidate) pair until the transaction ends.
	LockPair(ctx context.Context, recruiterID, candidateID uuid.UUID) error
	// HasBlocking reports a pending/processing message for the pair, or one sent at or after sentSince.
	HasBlocking(ctx context.Context, recruiterID, candidateID uuid.UUID, sentSince time.Time) (bool, error)
	// ClaimDue moves due pending rows, and processing rows claimed before staleBefore, to processing.
	ClaimDue(ctx context.Context, now, staleBefore time.Time, limit int32) ([]*followup.ScheduledMessage, error)
	// Save persists msg only if the stored status still equals expected.
	Save(ctx context.Context, msg *followup.ScheduledMessage, expected followup.Status) error
}

type CandidateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CandidateSnapshot, error)
	TouchContact(ctx context.Context, id uuid.UUID, at time.Time, pipelineStage *string) error
	TemplateForRecruiter(ctx context.Context, templateID, recruiterID uuid.UUID) (*TemplateSnapshot, error)
}

type FollowUpRepository interface {
	Upsert(ctx context.Context, rec followup.Record) error
	MarkResponseReceived(ctx context.Context, recruiterID, candidateID uuid.UUID, at time.Time) error
}

type MessageRepository interface {
	Insert(ctx context.Context, msg DeliveredMessage) (uuid.UUID, error)
}

type AutomationLogRepository interface {
	Append(ctx context.Context, entry AutomationLogEntry) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n InAppNotification) (uuid.UUID, error)
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	ClaimJobs(ctx context.Context, now time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, runAt *time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
	SetPremium(ctx context.Context, userID uuid.UUID, premium bool, at time.Time) error
	FindIDByCustomer(ctx context.Context, customerID string) (uuid.UUID, error)
	LinkCustomer(ctx context.Context, userID uuid.UUID, customerID string, at time.Time) error
	FindContact(ctx context.Context, userID uuid.UUID) (*UserContact, error)
}

type SubscriptionRepository interface {
	Upsert(ctx context.Context, sub *billing.Subscription) error
	FindByProviderID(ctx context.Context, providerSubscriptionID string) (*billing.Subscription, error)
}

type ReferralRepository interface {
	FindPendingByReferredUser(ctx context.Context, userID uuid.UUID) (*referral.Referral, error)
	// Complete flips pending to completed; false means another delivery already did.
	Complete(ctx context.Context, referralID uuid.UUID, at time.Time) (bool, error)
	// CreateEarning inserts at most one earning per referral; false means it already existed.
	CreateEarning(ctx context.Context, e *referral.Earning) (bool, error)
}

type WebhookEventRepository interface {
	// Record stores the event id; false means it was already processed.
	Record(ctx context.Context, provider, eventID, eventType string, at time.Time) (bool, error)
	SetNote(ctx context.Context, provider, eventID, note string) error
}

type XPLedgerRepository interface {
	// Append returns false when an entry with the same source was already recorded.
	Append(ctx context.Context, e xp.Entry) (bool, error)
	Total(ctx context.Context, userID uuid.UUID) (int64, error)
}
