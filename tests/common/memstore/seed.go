//go:build unit || e2e

package memstore

import (
	"sort"
	"time"

	"talentbridge/internal/domain/billing"
	"talentbridge/internal/domain/followup"
	"talentbridge/internal/domain/referral"
	"talentbridge/internal/domain/xp"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

func (s *Store) write(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

func (s *Store) AddCandidate(c shared.CandidateSnapshot) {
	s.write(func(st *state) { st.candidates[c.ID] = c })
}

func (s *Store) AddTemplate(recruiterID uuid.UUID, tpl shared.TemplateSnapshot) {
	s.write(func(st *state) { st.templates[tpl.ID] = template{recruiterID: recruiterID, snapshot: tpl} })
}

func (s *Store) AddMessage(msg *followup.ScheduledMessage) {
	s.write(func(st *state) { st.messages[msg.ID()] = *msg })
}

func (s *Store) AddFollowUp(rec followup.Record) {
	s.write(func(st *state) { st.followUps[pair{rec.RecruiterID, rec.CandidateID}] = rec })
}

func (s *Store) AddUser(contact shared.UserContact, customerID string) {
	s.write(func(st *state) { st.users[contact.ID] = UserRow{Contact: contact, CustomerID: customerID} })
}

func (s *Store) AddSubscription(sub billing.Subscription) {
	s.write(func(st *state) { st.subs[sub.ProviderSubscriptionID] = sub })
}

func (s *Store) AddReferral(ref referral.Referral) {
	s.write(func(st *state) { st.referrals[ref.ID] = ref })
}

func (s *Store) AddJob(job shared.NotificationJob) {
	s.write(func(st *state) { st.jobs[job.ID] = JobRow{Job: job} })
}

func (s *Store) AddLedgerEntry(e xp.Entry) {
	s.write(func(st *state) { st.ledger = append(st.ledger, e) })
}

func read[T any](s *Store, fn func(st *state) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

func lookup[K comparable, V any](s *Store, table func(st *state) map[K]V, key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := table(s.state)[key]
	return v, ok
}

// Message returns the committed copy of a scheduled message.
func (s *Store) Message(id uuid.UUID) (*followup.ScheduledMessage, bool) {
	m, ok := lookup(s, func(st *state) map[uuid.UUID]followup.ScheduledMessage { return st.messages }, id)
	return &m, ok
}

func (s *Store) MessageCount() int {
	return read(s, func(st *state) int { return len(st.messages) })
}

func (s *Store) Candidate(id uuid.UUID) shared.CandidateSnapshot {
	return read(s, func(st *state) shared.CandidateSnapshot { return st.candidates[id] })
}

func (s *Store) LastContacted(id uuid.UUID) (time.Time, bool) {
	return lookup(s, func(st *state) map[uuid.UUID]time.Time { return st.contacted }, id)
}

func (s *Store) FollowUp(recruiterID, candidateID uuid.UUID) (followup.Record, bool) {
	key := pair{recruiterID, candidateID}
	return lookup(s, func(st *state) map[pair]followup.Record { return st.followUps }, key)
}

func (s *Store) Delivered() []shared.DeliveredMessage {
	return read(s, func(st *state) []shared.DeliveredMessage {
		out := make([]shared.DeliveredMessage, 0, len(st.delivered))
		for _, d := range st.delivered {
			out = append(out, d)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
		return out
	})
}

func (s *Store) Logs() []shared.AutomationLogEntry {
	return read(s, func(st *state) []shared.AutomationLogEntry {
		return append([]shared.AutomationLogEntry(nil), st.logs...)
	})
}

func (s *Store) Notifications() []shared.InAppNotification {
	return read(s, func(st *state) []shared.InAppNotification {
		return append([]shared.InAppNotification(nil), st.notifications...)
	})
}

func (s *Store) Job(id uuid.UUID) (JobRow, bool) {
	return lookup(s, func(st *state) map[uuid.UUID]JobRow { return st.jobs }, id)
}

// Jobs lists jobs ordered by run_at.
func (s *Store) Jobs() []JobRow {
	return read(s, func(st *state) []JobRow {
		out := make([]JobRow, 0, len(st.jobs))
		for _, j := range st.jobs {
			out = append(out, j)
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Job.RunAt.Before(out[j].Job.RunAt) })
		return out
	})
}

func (s *Store) User(id uuid.UUID) (UserRow, bool) {
	return lookup(s, func(st *state) map[uuid.UUID]UserRow { return st.users }, id)
}

func (s *Store) Subscription(providerID string) (billing.Subscription, bool) {
	return lookup(s, func(st *state) map[string]billing.Subscription { return st.subs }, providerID)
}

func (s *Store) Referral(id uuid.UUID) referral.Referral {
	return read(s, func(st *state) referral.Referral { return st.referrals[id] })
}

func (s *Store) Earnings() []referral.Earning {
	return read(s, func(st *state) []referral.Earning {
		out := make([]referral.Earning, 0, len(st.earnings))
		for _, e := range st.earnings {
			out = append(out, e)
		}
		return out
	})
}

func (s *Store) WebhookEvent(provider, eventID string) (WebhookRow, bool) {
	key := webhookKey(provider, eventID)
	return lookup(s, func(st *state) map[string]WebhookRow { return st.webhooks }, key)
}

func (s *Store) Ledger() []xp.Entry {
	return read(s, func(st *state) []xp.Entry { return append([]xp.Entry(nil), st.ledger...) })
}
