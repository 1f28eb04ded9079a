package followup

import (
	"strings"
	"time"

	"talentbridge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyContent      = errs.New("message content must not be empty")
	ErrMissingSchedule   = errs.New("scheduled_at is required")
	ErrMissingCandidate  = errs.New("candidate is required")
	ErrInvalidTransition = errs.New("invalid follow-up status transition")
)

// ScheduledMessage is one entry of the outbound message queue.
type ScheduledMessage struct {
	id                uuid.UUID
	recruiterID       uuid.UUID
	candidateID       uuid.UUID
	templateID        *uuid.UUID
	content           string
	scheduledAt       time.Time
	status            Status
	nextPipelineStage *string
	claimedAt         *time.Time
	attempts          int32
	sentAt            *time.Time
	errorMessage      *string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewScheduledMessage(
	id, recruiterID, candidateID uuid.UUID,
	templateID *uuid.UUID,
	content string,
	scheduledAt time.Time,
	nextPipelineStage *string,
	now time.Time,
) (*ScheduledMessage, error) {
	if candidateID == uuid.Nil {
		return nil, ErrMissingCandidate
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if scheduledAt.IsZero() {
		return nil, ErrMissingSchedule
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &ScheduledMessage{
		id:                id,
		recruiterID:       recruiterID,
		candidateID:       candidateID,
		templateID:        templateID,
		content:           content,
		scheduledAt:       scheduledAt.UTC(),
		status:            StatusPending,
		nextPipelineStage: normalizeStage(nextPipelineStage),
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

type RestoreParams struct {
	ID                uuid.UUID
	RecruiterID       uuid.UUID
	CandidateID       uuid.UUID
	TemplateID        *uuid.UUID
	Content           string
	ScheduledAt       time.Time
	Status            Status
	NextPipelineStage *string
	ClaimedAt         *time.Time
	Attempts          int32
	SentAt            *time.Time
	ErrorMessage      *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Restore rebuilds a message from persisted state without validation.
func Restore(p RestoreParams) *ScheduledMessage {
	return &ScheduledMessage{
		id:                p.ID,
		recruiterID:       p.RecruiterID,
		candidateID:       p.CandidateID,
		templateID:        p.TemplateID,
		content:           p.Content,
		scheduledAt:       p.ScheduledAt,
		status:            p.Status,
		nextPipelineStage: p.NextPipelineStage,
		claimedAt:         p.ClaimedAt,
		attempts:          p.Attempts,
		sentAt:            p.SentAt,
		errorMessage:      p.ErrorMessage,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}
}

func (m *ScheduledMessage) ID() uuid.UUID              { return m.id }
func (m *ScheduledMessage) RecruiterID() uuid.UUID     { return m.recruiterID }
func (m *ScheduledMessage) CandidateID() uuid.UUID     { return m.candidateID }
func (m *ScheduledMessage) TemplateID() *uuid.UUID     { return m.templateID }
func (m *ScheduledMessage) Content() string            { return m.content }
func (m *ScheduledMessage) ScheduledAt() time.Time     { return m.scheduledAt }
func (m *ScheduledMessage) Status() Status             { return m.status }
func (m *ScheduledMessage) NextPipelineStage() *string { return m.nextPipelineStage }
func (m *ScheduledMessage) ClaimedAt() *time.Time      { return m.claimedAt }
func (m *ScheduledMessage) Attempts() int32            { return m.attempts }
func (m *ScheduledMessage) SentAt() *time.Time         { return m.sentAt }
func (m *ScheduledMessage) ErrorMessage() *string      { return m.errorMessage }
func (m *ScheduledMessage) CreatedAt() time.Time       { return m.createdAt }
func (m *ScheduledMessage) UpdatedAt() time.Time       { return m.updatedAt }

func (m *ScheduledMessage) MarkSent(now time.Time) error {
	if err := m.transition(StatusSent, now); err != nil {
		return err
	}
	m.sentAt = &now
	m.errorMessage = nil
	return nil
}

func (m *ScheduledMessage) MarkFailed(reason string, now time.Time) error {
	if err := m.transition(StatusFailed, now); err != nil {
		return err
	}
	m.errorMessage = &reason
	return nil
}

func (m *ScheduledMessage) Cancel(now time.Time) error {
	return m.transition(StatusCanceled, now)
}

// Edit changes content and/or schedule while the message is still pending.
func (m *ScheduledMessage) Edit(content *string, scheduledAt *time.Time, now time.Time) error {
	if m.status != StatusPending {
		return errs.Mark(ErrInvalidTransition, errs.ErrFollowUpNotPending)
	}
	if content != nil {
		c := strings.TrimSpace(*content)
		if c == "" {
			return ErrEmptyContent
		}
		m.content = c
	}
	if scheduledAt != nil {
		if scheduledAt.IsZero() {
			return ErrMissingSchedule
		}
		m.scheduledAt = scheduledAt.UTC()
	}
	m.updatedAt = now
	return nil
}

func (m *ScheduledMessage) transition(next Status, now time.Time) error {
	if !m.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	m.status = next
	m.updatedAt = now
	return nil
}

func normalizeStage(stage *string) *string {
	if stage == nil {
		return nil
	}
	s := strings.TrimSpace(*stage)
	if s == "" {
		return nil
	}
	return &s
}
