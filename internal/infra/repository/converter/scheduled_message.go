package converter

import (
	"talentbridge/internal/domain/followup"
	sqlc "talentbridge/internal/infra/sqlc/generated"
	"talentbridge/internal/pkg/pgconv"
)

func ScheduledMessageToDomain(row sqlc.ScheduledMessages) *followup.ScheduledMessage {
	return followup.Restore(followup.RestoreParams{
		ID:                row.ID,
		RecruiterID:       row.RecruiterID,
		CandidateID:       row.CandidateID,
		TemplateID:        pgconv.UUIDPtrFromPgtype(row.TemplateID),
		Content:           row.MessageContent,
		ScheduledAt:       pgconv.TimeFromPgtype(row.ScheduledAt),
		Status:            followup.Status(row.Status),
		NextPipelineStage: pgconv.StringPtrFromPgtype(row.NextPipelineStage),
		ClaimedAt:         pgconv.TimePtrFromPgtype(row.ClaimedAt),
		Attempts:          row.Attempts,
		SentAt:            pgconv.TimePtrFromPgtype(row.SentAt),
		ErrorMessage:      pgconv.StringPtrFromPgtype(row.ErrorMessage),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func ScheduledMessageToCreateParams(m *followup.ScheduledMessage) sqlc.CreateScheduledMessageParams {
	return sqlc.CreateScheduledMessageParams{
		ID:                m.ID(),
		RecruiterID:       m.RecruiterID(),
		CandidateID:       m.CandidateID(),
		TemplateID:        pgconv.UUIDPtrToPgtype(m.TemplateID()),
		MessageContent:    m.Content(),
		ScheduledAt:       pgconv.TimeToPgtype(m.ScheduledAt()),
		Status:            m.Status().String(),
		NextPipelineStage: pgconv.StringPtrToPgtype(m.NextPipelineStage()),
		CreatedAt:         pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

func ScheduledMessageToStateParams(m *followup.ScheduledMessage, expected followup.Status) sqlc.UpdateScheduledMessageStateParams {
	return sqlc.UpdateScheduledMessageStateParams{
		Status:         m.Status().String(),
		MessageContent: m.Content(),
		ScheduledAt:    pgconv.TimeToPgtype(m.ScheduledAt()),
		SentAt:         pgconv.TimePtrToPgtype(m.SentAt()),
		ErrorMessage:   pgconv.StringPtrToPgtype(m.ErrorMessage()),
		UpdatedAt:      pgconv.TimeToPgtype(m.UpdatedAt()),
		ID:             m.ID(),
		ExpectedStatus: expected.String(),
	}
}
