package followup

import (
	"time"

	"github.com/google/uuid"
)

// Record is the per (recruiter, candidate) follow-up state. There is at most one per pair.
type Record struct {
	RecruiterID      uuid.UUID
	CandidateID      uuid.UUID
	LastContact      *time.Time
	FollowUpDue      *time.Time
	FollowUpSent     bool
	ResponseReceived bool
	Message          string
	UpdatedAt        time.Time
}

// ScheduledRecord is the pair state right after a follow-up is queued.
func ScheduledRecord(m *ScheduledMessage, now time.Time) Record {
	due := m.ScheduledAt()
	return Record{
		RecruiterID:  m.RecruiterID(),
		CandidateID:  m.CandidateID(),
		FollowUpDue:  &due,
		FollowUpSent: false,
		Message:      m.Content(),
		UpdatedAt:    now,
	}
}

// DeliveredRecord is the pair state right after a follow-up is sent.
func DeliveredRecord(m *ScheduledMessage, now time.Time) Record {
	return Record{
		RecruiterID:  m.RecruiterID(),
		CandidateID:  m.CandidateID(),
		LastContact:  &now,
		FollowUpSent: true,
		Message:      m.Content(),
		UpdatedAt:    now,
	}
}
