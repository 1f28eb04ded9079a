//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork. Each Within call works on a
// copy of the state and publishes it only when fn succeeds, so a failed call
// leaves nothing behind, like a rolled back transaction.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"talentbridge/internal/domain/billing"
	"talentbridge/internal/domain/followup"
	"talentbridge/internal/domain/referral"
	"talentbridge/internal/domain/xp"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

type pair struct {
	recruiterID uuid.UUID
	candidateID uuid.UUID
}

type template struct {
	recruiterID uuid.UUID
	snapshot    shared.TemplateSnapshot
}

type UserRow struct {
	Contact    shared.UserContact
	CustomerID string
	Premium    bool
	LastLogin  *time.Time
}

type JobRow struct {
	Job       shared.NotificationJob
	LastError *string
}

type WebhookRow struct {
	Type string
	Note string
}

type state struct {
	messages      map[uuid.UUID]followup.ScheduledMessage
	candidates    map[uuid.UUID]shared.CandidateSnapshot
	contacted     map[uuid.UUID]time.Time
	templates     map[uuid.UUID]template
	followUps     map[pair]followup.Record
	delivered     map[uuid.UUID]shared.DeliveredMessage
	logs          []shared.AutomationLogEntry
	notifications []shared.InAppNotification
	jobs          map[uuid.UUID]JobRow
	users         map[uuid.UUID]UserRow
	subs          map[string]billing.Subscription
	referrals     map[uuid.UUID]referral.Referral
	earnings      map[uuid.UUID]referral.Earning
	webhooks      map[string]WebhookRow
	ledger        []xp.Entry
}

func newState() *state {
	return &state{
		messages:   map[uuid.UUID]followup.ScheduledMessage{},
		candidates: map[uuid.UUID]shared.CandidateSnapshot{},
		contacted:  map[uuid.UUID]time.Time{},
		templates:  map[uuid.UUID]template{},
		followUps:  map[pair]followup.Record{},
		delivered:  map[uuid.UUID]shared.DeliveredMessage{},
		jobs:       map[uuid.UUID]JobRow{},
		users:      map[uuid.UUID]UserRow{},
		subs:       map[string]billing.Subscription{},
		referrals:  map[uuid.UUID]referral.Referral{},
		earnings:   map[uuid.UUID]referral.Earning{},
		webhooks:   map[string]WebhookRow{},
	}
}

func (s *state) clone() *state {
	return &state{
		messages:      maps.Clone(s.messages),
		candidates:    maps.Clone(s.candidates),
		contacted:     maps.Clone(s.contacted),
		templates:     maps.Clone(s.templates),
		followUps:     maps.Clone(s.followUps),
		delivered:     maps.Clone(s.delivered),
		logs:          slices.Clone(s.logs),
		notifications: slices.Clone(s.notifications),
		jobs:          maps.Clone(s.jobs),
		users:         maps.Clone(s.users),
		subs:          maps.Clone(s.subs),
		referrals:     maps.Clone(s.referrals),
		earnings:      maps.Clone(s.earnings),
		webhooks:      maps.Clone(s.webhooks),
		ledger:        slices.Clone(s.ledger),
	}
}

// Store serializes every unit of work, which stands in for row locks.
type Store struct {
	mu       sync.Mutex
	state    *state
	failures map[string]error
	calls    int
}

func New() *Store {
	return &Store{state: newState(), failures: map[string]error{}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	work := s.state.clone()
	if err := fn(ctx, &tx{st: work, store: s}); err != nil {
		return err
	}
	s.state = work
	return nil
}

// FailOn makes every later call of op fail with err until cleared with FailOn(op, nil).
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Calls counts Within invocations.
func (s *Store) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *Store) failure(op string) error {
	return s.failures[op]
}

type tx struct {
	st    *state
	store *Store
}

func (t *tx) ScheduledMessages() shared.ScheduledMessageRepository { return scheduledRepo{t} }
func (t *tx) Candidates() shared.CandidateRepository               { return candidateRepo{t} }
func (t *tx) FollowUps() shared.FollowUpRepository                 { return followUpRepo{t} }
func (t *tx) Messages() shared.MessageRepository                   { return messageRepo{t} }
func (t *tx) AutomationLogs() shared.AutomationLogRepository       { return logRepo{t} }
func (t *tx) Notifications() shared.NotificationRepository         { return notificationRepo{t} }
func (t *tx) Users() shared.UserRepository                         { return userRepo{t} }
func (t *tx) Subscriptions() shared.SubscriptionRepository         { return subscriptionRepo{t} }
func (t *tx) Referrals() shared.ReferralRepository                 { return referralRepo{t} }
func (t *tx) WebhookEvents() shared.WebhookEventRepository         { return webhookRepo{t} }
func (t *tx) XPLedger() shared.XPLedgerRepository                  { return ledgerRepo{t} }
