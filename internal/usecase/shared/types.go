package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type CandidateSnapshot struct {
	ID            uuid.UUID
	RecruiterID   uuid.UUID
	UserID        *uuid.UUID
	FullName      string
	PipelineStage string
}

type TemplateSnapshot struct {
	ID   uuid.UUID
	Name string
	Body string
}

type UserContact struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
}

type DeliveredMessage struct {
	RecruiterID        uuid.UUID
	CandidateID        uuid.UUID
	ScheduledMessageID uuid.UUID
	Content            string
	SentAt             time.Time
}

const (
	AutomationActionFollowUpSent = "followup_sent"

	AutomationStatusSuccess = "success"
	AutomationStatusFailure = "failure"
)

type AutomationLogEntry struct {
	RecruiterID        uuid.UUID
	CandidateID        uuid.UUID
	ScheduledMessageID *uuid.UUID
	Action             string
	Status             string
	ErrorMessage       *string
	CreatedAt          time.Time
}

type InAppNotification struct {
	UserID    uuid.UUID
	Kind      string
	Title     string
	Body      string
	CreatedAt time.Time
}

const (
	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusDone       = "done"
	JobStatusFailed     = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
	Status   string
}
