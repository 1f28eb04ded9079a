package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	IsPremium   bool      `json:"is_premium"`
}

// FollowUpView is a scheduled message joined with its candidate name
type FollowUpView struct {
	ID                uuid.UUID  `json:"id"`
	RecruiterID       uuid.UUID  `json:"recruiter_id"`
	CandidateID       uuid.UUID  `json:"candidate_id"`
	CandidateName     string     `json:"candidate_name"`
	TemplateID        *uuid.UUID `json:"template_id,omitempty"`
	MessageContent    string     `json:"message_content"`
	ScheduledAt       time.Time  `json:"scheduled_at"`
	Status            string     `json:"status"`
	NextPipelineStage *string    `json:"next_pipeline_stage,omitempty"`
	Attempts          int32      `json:"attempts"`
	SentAt            *time.Time `json:"sent_at,omitempty"`
	ErrorMessage      *string    `json:"error_message,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type XPEntryView struct {
	ID        uuid.UUID  `json:"id"`
	Action    string     `json:"action"`
	Points    int32      `json:"points"`
	SourceID  *uuid.UUID `json:"source_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type XPSummaryView struct {
	Total          int64         `json:"total"`
	Level          int64         `json:"level"`
	CurrentLevelXP int64         `json:"current_level_xp"`
	NextLevelXP    int64         `json:"next_level_xp"`
	Progress       float64       `json:"progress"`
	Recent         []XPEntryView `json:"recent"`
}
