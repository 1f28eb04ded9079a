//go:build unit || e2e

package builder

import (
	"time"

	"talentbridge/internal/domain/followup"
	reqdto "talentbridge/internal/handler/dto/request"
	"talentbridge/internal/usecase/queries"

	"github.com/google/uuid"
)

type FollowUpBuilder struct {
	ID                uuid.UUID
	RecruiterID       uuid.UUID
	CandidateID       uuid.UUID
	CandidateName     string
	TemplateID        *uuid.UUID
	Content           string
	ScheduledAt       time.Time
	NextPipelineStage *string
	Now               time.Time
}

func NewFollowUpBuilder() *FollowUpBuilder {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &FollowUpBuilder{
		ID:            uuid.New(),
		RecruiterID:   uuid.New(),
		CandidateID:   uuid.New(),
		CandidateName: "Jane Candidate",
		Content:       "Hi Jane, checking in on your application.",
		ScheduledAt:   now.Add(time.Hour),
		Now:           now,
	}
}

func (b *FollowUpBuilder) With(mutate func(*FollowUpBuilder)) *FollowUpBuilder {
	mutate(b)
	return b
}

func (b *FollowUpBuilder) WithRecruiter(id uuid.UUID) *FollowUpBuilder {
	b.RecruiterID = id
	return b
}

func (b *FollowUpBuilder) WithCandidate(id uuid.UUID) *FollowUpBuilder {
	b.CandidateID = id
	return b
}

func (b *FollowUpBuilder) WithContent(content string) *FollowUpBuilder {
	b.Content = content
	return b
}

func (b *FollowUpBuilder) WithScheduledAt(at time.Time) *FollowUpBuilder {
	b.ScheduledAt = at
	return b
}

func (b *FollowUpBuilder) WithTemplate(id uuid.UUID) *FollowUpBuilder {
	b.TemplateID = &id
	return b
}

func (b *FollowUpBuilder) WithNextStage(stage string) *FollowUpBuilder {
	b.NextPipelineStage = &stage
	return b
}

func (b *FollowUpBuilder) BuildDomain() (*followup.ScheduledMessage, error) {
	return followup.NewScheduledMessage(b.ID, b.RecruiterID, b.CandidateID, b.TemplateID, b.Content, b.ScheduledAt, b.NextPipelineStage, b.Now)
}

// BuildWithStatus restores a message directly into status, bypassing transitions.
// Processing messages are claimed at Now and sent ones were sent at ScheduledAt.
func (b *FollowUpBuilder) BuildWithStatus(status followup.Status) *followup.ScheduledMessage {
	var claimedAt, sentAt *time.Time
	var attempts int32
	if status != followup.StatusPending && status != followup.StatusCanceled {
		at := b.Now
		claimedAt = &at
		attempts = 1
	}
	if status == followup.StatusSent {
		at := b.ScheduledAt
		sentAt = &at
	}
	return followup.Restore(followup.RestoreParams{
		ID:                b.ID,
		RecruiterID:       b.RecruiterID,
		CandidateID:       b.CandidateID,
		TemplateID:        b.TemplateID,
		Content:           b.Content,
		ScheduledAt:       b.ScheduledAt,
		Status:            status,
		NextPipelineStage: b.NextPipelineStage,
		ClaimedAt:         claimedAt,
		Attempts:          attempts,
		SentAt:            sentAt,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	})
}

func (b *FollowUpBuilder) BuildRequest() reqdto.ScheduleFollowUpRequest {
	content := b.Content
	return reqdto.ScheduleFollowUpRequest{
		CandidateID:       b.CandidateID,
		TemplateID:        b.TemplateID,
		MessageContent:    &content,
		ScheduledAt:       b.ScheduledAt,
		NextPipelineStage: b.NextPipelineStage,
	}
}

func (b *FollowUpBuilder) BuildView() *queries.FollowUpView {
	return &queries.FollowUpView{
		ID:                b.ID,
		RecruiterID:       b.RecruiterID,
		CandidateID:       b.CandidateID,
		CandidateName:     b.CandidateName,
		TemplateID:        b.TemplateID,
		MessageContent:    b.Content,
		ScheduledAt:       b.ScheduledAt,
		Status:            string(followup.StatusPending),
		NextPipelineStage: b.NextPipelineStage,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}
