//go:build unit || e2e

package memstore

import (
	"context"
	"sort"
	"time"

	"talentbridge/internal/domain/billing"
	"talentbridge/internal/domain/followup"
	"talentbridge/internal/domain/referral"
	"talentbridge/internal/domain/xp"
	"talentbridge/internal/infra"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type scheduledRepo struct{ t *tx }

func (r scheduledRepo) Create(_ context.Context, msg *followup.ScheduledMessage) error {
	if err := r.t.store.failure("ScheduledMessages.Create"); err != nil {
		return err
	}
	if _, ok := r.t.st.messages[msg.ID()]; ok {
		return infra.WrapRepoErr("scheduled message exists", nil, infra.KindDuplicateKey)
	}
	r.t.st.messages[msg.ID()] = *msg
	return nil
}

func (r scheduledRepo) FindByID(_ context.Context, id uuid.UUID) (*followup.ScheduledMessage, error) {
	msg, ok := r.t.st.messages[id]
	if !ok {
		return nil, notFound("scheduled message")
	}
	return &msg, nil
}

func (r scheduledRepo) LockPair(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (r scheduledRepo) HasBlocking(_ context.Context, recruiterID, candidateID uuid.UUID, sentSince time.Time) (bool, error) {
	for _, m := range r.t.st.messages {
		if m.RecruiterID() != recruiterID || m.CandidateID() != candidateID {
			continue
		}
		if m.Status().IsOutstanding() {
			return true, nil
		}
		if m.Status() == followup.StatusSent && m.SentAt() != nil && !m.SentAt().Before(sentSince) {
			return true, nil
		}
	}
	return false, nil
}

func (r scheduledRepo) ClaimDue(_ context.Context, now, staleBefore time.Time, limit int32) ([]*followup.ScheduledMessage, error) {
	if err := r.t.store.failure("ScheduledMessages.ClaimDue"); err != nil {
		return nil, err
	}
	var due []followup.ScheduledMessage
	for _, m := range r.t.st.messages {
		pendingDue := m.Status() == followup.StatusPending && !m.ScheduledAt().After(now)
		stale := m.Status() == followup.StatusProcessing && m.ClaimedAt() != nil && m.ClaimedAt().Before(staleBefore)
		if pendingDue || stale {
			due = append(due, m)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].ScheduledAt().Before(due[j].ScheduledAt()) })
	if len(due) > int(limit) {
		due = due[:limit]
	}

	out := make([]*followup.ScheduledMessage, 0, len(due))
	for _, m := range due {
		claimedAt := now
		claimed := followup.Restore(followup.RestoreParams{
			ID:                m.ID(),
			RecruiterID:       m.RecruiterID(),
			CandidateID:       m.CandidateID(),
			TemplateID:        m.TemplateID(),
			Content:           m.Content(),
			ScheduledAt:       m.ScheduledAt(),
			Status:            followup.StatusProcessing,
			NextPipelineStage: m.NextPipelineStage(),
			ClaimedAt:         &claimedAt,
			Attempts:          m.Attempts() + 1,
			SentAt:            m.SentAt(),
			ErrorMessage:      m.ErrorMessage(),
			CreatedAt:         m.CreatedAt(),
			UpdatedAt:         now,
		})
		r.t.st.messages[m.ID()] = *claimed
		out = append(out, claimed)
	}
	return out, nil
}

func (r scheduledRepo) Save(_ context.Context, msg *followup.ScheduledMessage, expected followup.Status) error {
	if err := r.t.store.failure("ScheduledMessages.Save"); err != nil {
		return err
	}
	stored, ok := r.t.st.messages[msg.ID()]
	if !ok || stored.Status() != expected {
		return infra.WrapRepoErr("scheduled message is no longer "+expected.String(), nil, infra.KindConflict)
	}
	r.t.st.messages[msg.ID()] = *msg
	return nil
}

type candidateRepo struct{ t *tx }

func (r candidateRepo) FindByID(_ context.Context, id uuid.UUID) (*shared.CandidateSnapshot, error) {
	if err := r.t.store.failure("Candidates.FindByID"); err != nil {
		return nil, err
	}
	c, ok := r.t.st.candidates[id]
	if !ok {
		return nil, notFound("candidate")
	}
	return &c, nil
}

func (r candidateRepo) TouchContact(_ context.Context, id uuid.UUID, at time.Time, pipelineStage *string) error {
	c, ok := r.t.st.candidates[id]
	if !ok {
		return notFound("candidate")
	}
	if pipelineStage != nil {
		c.PipelineStage = *pipelineStage
	}
	r.t.st.candidates[id] = c
	r.t.st.contacted[id] = at
	return nil
}

func (r candidateRepo) TemplateForRecruiter(_ context.Context, templateID, recruiterID uuid.UUID) (*shared.TemplateSnapshot, error) {
	tpl, ok := r.t.st.templates[templateID]
	if !ok || tpl.recruiterID != recruiterID {
		return nil, notFound("template")
	}
	snap := tpl.snapshot
	return &snap, nil
}

type followUpRepo struct{ t *tx }

func (r followUpRepo) Upsert(_ context.Context, rec followup.Record) error {
	key := pair{rec.RecruiterID, rec.CandidateID}
	if prev, ok := r.t.st.followUps[key]; ok {
		if rec.LastContact == nil {
			rec.LastContact = prev.LastContact
		}
		if rec.FollowUpDue == nil {
			rec.FollowUpDue = prev.FollowUpDue
		}
		rec.ResponseReceived = prev.ResponseReceived
	}
	r.t.st.followUps[key] = rec
	return nil
}

func (r followUpRepo) MarkResponseReceived(_ context.Context, recruiterID, candidateID uuid.UUID, at time.Time) error {
	key := pair{recruiterID, candidateID}
	rec, ok := r.t.st.followUps[key]
	if !ok {
		return notFound("follow-up record")
	}
	rec.ResponseReceived = true
	rec.UpdatedAt = at
	r.t.st.followUps[key] = rec
	return nil
}

type messageRepo struct{ t *tx }

func (r messageRepo) Insert(_ context.Context, msg shared.DeliveredMessage) (uuid.UUID, error) {
	if err := r.t.store.failure("Messages.Insert"); err != nil {
		return uuid.Nil, err
	}
	for _, d := range r.t.st.delivered {
		if d.ScheduledMessageID == msg.ScheduledMessageID {
			return uuid.Nil, infra.WrapRepoErr("message already delivered", nil, infra.KindDuplicateKey)
		}
	}
	id := uuid.New()
	r.t.st.delivered[id] = msg
	return id, nil
}

type logRepo struct{ t *tx }

func (r logRepo) Append(_ context.Context, entry shared.AutomationLogEntry) error {
	r.t.st.logs = append(r.t.st.logs, entry)
	return nil
}

type notificationRepo struct{ t *tx }

func (r notificationRepo) Create(_ context.Context, n shared.InAppNotification) (uuid.UUID, error) {
	r.t.st.notifications = append(r.t.st.notifications, n)
	return uuid.New(), nil
}

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	id := uuid.New()
	r.t.st.jobs[id] = JobRow{Job: shared.NotificationJob{
		ID:      id,
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   runAt,
		Status:  shared.JobStatusQueued,
	}}
	return nil
}

func (r notificationRepo) ClaimJobs(_ context.Context, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	var due []JobRow
	for _, row := range r.t.st.jobs {
		if row.Job.Status == shared.JobStatusQueued && !row.Job.RunAt.After(now) {
			due = append(due, row)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].Job.RunAt.Before(due[j].Job.RunAt) })
	if len(due) > int(limit) {
		due = due[:limit]
	}
	out := make([]shared.NotificationJob, 0, len(due))
	for _, row := range due {
		row.Job.Status = shared.JobStatusProcessing
		row.Job.Attempts++
		r.t.st.jobs[row.Job.ID] = row
		out = append(out, row.Job)
	}
	return out, nil
}

func (r notificationRepo) UpdateJobStatus(_ context.Context, jobID uuid.UUID, status string, lastError *string, runAt *time.Time) error {
	row, ok := r.t.st.jobs[jobID]
	if !ok {
		return notFound("notification job")
	}
	row.Job.Status = status
	row.LastError = lastError
	if runAt != nil {
		row.Job.RunAt = *runAt
	}
	r.t.st.jobs[jobID] = row
	return nil
}

type userRepo struct{ t *tx }

func (r userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	u, ok := r.t.st.users[userID]
	if !ok {
		return notFound("user")
	}
	u.LastLogin = &at
	r.t.st.users[userID] = u
	return nil
}

func (r userRepo) SetPremium(_ context.Context, userID uuid.UUID, premium bool, _ time.Time) error {
	u, ok := r.t.st.users[userID]
	if !ok {
		return notFound("user")
	}
	u.Premium = premium
	r.t.st.users[userID] = u
	return nil
}

func (r userRepo) FindIDByCustomer(_ context.Context, customerID string) (uuid.UUID, error) {
	for id, u := range r.t.st.users {
		if u.CustomerID == customerID {
			return id, nil
		}
	}
	return uuid.Nil, notFound("customer")
}

func (r userRepo) LinkCustomer(_ context.Context, userID uuid.UUID, customerID string, _ time.Time) error {
	u, ok := r.t.st.users[userID]
	if !ok {
		return notFound("user")
	}
	u.CustomerID = customerID
	r.t.st.users[userID] = u
	return nil
}

func (r userRepo) FindContact(_ context.Context, userID uuid.UUID) (*shared.UserContact, error) {
	u, ok := r.t.st.users[userID]
	if !ok {
		return nil, notFound("user")
	}
	c := u.Contact
	return &c, nil
}

type subscriptionRepo struct{ t *tx }

func (r subscriptionRepo) Upsert(_ context.Context, sub *billing.Subscription) error {
	if prev, ok := r.t.st.subs[sub.ProviderSubscriptionID]; ok && sub.ID == uuid.Nil {
		sub.ID = prev.ID
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	r.t.st.subs[sub.ProviderSubscriptionID] = *sub
	return nil
}

func (r subscriptionRepo) FindByProviderID(_ context.Context, providerSubscriptionID string) (*billing.Subscription, error) {
	sub, ok := r.t.st.subs[providerSubscriptionID]
	if !ok {
		return nil, notFound("subscription")
	}
	return &sub, nil
}

type referralRepo struct{ t *tx }

func (r referralRepo) FindPendingByReferredUser(_ context.Context, userID uuid.UUID) (*referral.Referral, error) {
	for _, ref := range r.t.st.referrals {
		if ref.ReferredUserID == userID && ref.Status == referral.StatusPending {
			return &ref, nil
		}
	}
	return nil, notFound("referral")
}

func (r referralRepo) Complete(_ context.Context, referralID uuid.UUID, at time.Time) (bool, error) {
	ref, ok := r.t.st.referrals[referralID]
	if !ok || ref.Status != referral.StatusPending {
		return false, nil
	}
	ref.Status = referral.StatusCompleted
	ref.CompletedAt = &at
	r.t.st.referrals[referralID] = ref
	return true, nil
}

func (r referralRepo) CreateEarning(_ context.Context, e *referral.Earning) (bool, error) {
	if _, ok := r.t.st.earnings[e.ReferralID]; ok {
		return false, nil
	}
	r.t.st.earnings[e.ReferralID] = *e
	return true, nil
}

type webhookRepo struct{ t *tx }

func webhookKey(provider, eventID string) string {
	return provider + ":" + eventID
}

func (r webhookRepo) Record(_ context.Context, provider, eventID, eventType string, _ time.Time) (bool, error) {
	key := webhookKey(provider, eventID)
	if _, ok := r.t.st.webhooks[key]; ok {
		return false, nil
	}
	r.t.st.webhooks[key] = WebhookRow{Type: eventType}
	return true, nil
}

func (r webhookRepo) SetNote(_ context.Context, provider, eventID, note string) error {
	key := webhookKey(provider, eventID)
	row := r.t.st.webhooks[key]
	row.Note = note
	r.t.st.webhooks[key] = row
	return nil
}

type ledgerRepo struct{ t *tx }

func (r ledgerRepo) Append(_ context.Context, e xp.Entry) (bool, error) {
	if e.SourceID != nil {
		for _, prev := range r.t.st.ledger {
			if prev.UserID == e.UserID && prev.Action == e.Action && prev.SourceID != nil && *prev.SourceID == *e.SourceID {
				return false, nil
			}
		}
	}
	r.t.st.ledger = append(r.t.st.ledger, e)
	return true, nil
}

func (r ledgerRepo) Total(_ context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	for _, e := range r.t.st.ledger {
		if e.UserID == userID {
			total += int64(e.Points)
		}
	}
	return total, nil
}
