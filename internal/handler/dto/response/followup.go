package response

import (
	"time"

	"talentbridge/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FollowUpResponse struct {
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

type FollowUpListResponse struct {
	Items []*FollowUpResponse `json:"items"`
	Count int                 `json:"count"`
}

func FromFollowUpView(v *queries.FollowUpView) *FollowUpResponse {
	var res FollowUpResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromFollowUpList(items []*queries.FollowUpView) *FollowUpListResponse {
	res := make([]*FollowUpResponse, len(items))
	for i, it := range items {
		res[i] = FromFollowUpView(it)
	}
	return &FollowUpListResponse{Items: res, Count: len(res)}
}

type CandidateResponseRecorded struct {
	CandidateID      uuid.UUID `json:"candidate_id"`
	ResponseReceived bool      `json:"response_received"`
}
