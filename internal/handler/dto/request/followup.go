package request

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleFollowUpRequest struct {
	CandidateID       uuid.UUID  `json:"candidate_id"`
	TemplateID        *uuid.UUID `json:"template_id"`
	MessageContent    *string    `json:"message_content" binding:"omitempty,max=5000"`
	ScheduledAt       time.Time  `json:"scheduled_at"`
	NextPipelineStage *string    `json:"next_pipeline_stage" binding:"omitempty,max=100"`
}

// UpdateFollowUpRequest is a partial update; nil fields keep their stored value.
type UpdateFollowUpRequest struct {
	MessageContent *string    `json:"message_content" binding:"omitempty,max=5000"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
}

func (r *UpdateFollowUpRequest) IsEmpty() bool {
	return r.MessageContent == nil && r.ScheduledAt == nil
}
