package commands

import (
	"context"
	"log/slog"
	"time"

	"talentbridge/internal/domain/followup"
	"talentbridge/internal/domain/xp"
	reqdto "talentbridge/internal/handler/dto/request"
	"talentbridge/internal/infra"
	"talentbridge/internal/pkg/clock"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/pkg/patch"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

// pastScheduleTolerance absorbs clock skew between client and server.
const pastScheduleTolerance = time.Minute

var (
	ErrScheduleInPast = errs.New("scheduled_at must not be in the past")
	ErrMissingContent = errs.New("message_content or template_id is required")
	ErrEmptyUpdate    = errs.New("nothing to update")
)

type FollowUpResult struct {
	ID     uuid.UUID
	Status followup.Status
}

type FollowUpCommands interface {
	Schedule(ctx context.Context, recruiterID uuid.UUID, req reqdto.ScheduleFollowUpRequest) (*FollowUpResult, error)
	Update(ctx context.Context, id, recruiterID uuid.UUID, req reqdto.UpdateFollowUpRequest) (*FollowUpResult, error)
	Cancel(ctx context.Context, id, recruiterID uuid.UUID) (*FollowUpResult, error)
	RecordResponse(ctx context.Context, recruiterID, candidateID uuid.UUID) error
}

type followUpCommandsImpl struct {
	uow             shared.UnitOfWork
	realtime        shared.RealtimePublisher
	clock           clock.Clock
	duplicateWindow time.Duration
	logger          *slog.Logger
}

func NewFollowUpCommands(
	uow shared.UnitOfWork,
	realtime shared.RealtimePublisher,
	clk clock.Clock,
	duplicateWindow time.Duration,
	logger *slog.Logger,
) FollowUpCommands {
	if duplicateWindow <= 0 {
		duplicateWindow = followup.DefaultDuplicateWindow
	}
	return &followUpCommandsImpl{
		uow:             uow,
		realtime:        realtime,
		clock:           clk,
		duplicateWindow: duplicateWindow,
		logger:          logger,
	}
}

func (c *followUpCommandsImpl) Schedule(ctx context.Context, recruiterID uuid.UUID, req reqdto.ScheduleFollowUpRequest) (*FollowUpResult, error) {
	now := c.clock.Now()
	if err := validateSchedule(req, now); err != nil {
		return nil, err
	}

	id := uuid.New()
	var points *AwardResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		candidate, err := c.loadCandidate(ctx, tx, req.CandidateID, recruiterID)
		if err != nil {
			return err
		}

		content, err := c.composeContent(ctx, tx, req, candidate, recruiterID)
		if err != nil {
			return err
		}

		msg, err := followup.NewScheduledMessage(id, recruiterID, candidate.ID, req.TemplateID, content, req.ScheduledAt, req.NextPipelineStage, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		// the lock holds until commit, so two schedulers of one pair cannot both pass the check
		if err := tx.ScheduledMessages().LockPair(ctx, recruiterID, candidate.ID); err != nil {
			return err
		}
		blocking, err := tx.ScheduledMessages().HasBlocking(ctx, recruiterID, candidate.ID, now.Add(-c.duplicateWindow))
		if err != nil {
			return err
		}
		if blocking {
			return errs.ErrDuplicateFollowUp
		}

		if err := tx.ScheduledMessages().Create(ctx, msg); err != nil {
			return err
		}
		if err := tx.FollowUps().Upsert(ctx, followup.ScheduledRecord(msg, now)); err != nil {
			return err
		}

		points, err = awardInTx(ctx, tx, recruiterID, xp.ActionFollowUpScheduled, &id, c.clock)
		return err
	})
	if err != nil {
		return nil, err
	}

	if points.Awarded {
		publishPoints(ctx, c.realtime, c.logger, recruiterID, points)
	}
	c.logger.Info("follow-up scheduled", "id", id, "recruiter_id", recruiterID, "candidate_id", req.CandidateID)
	return &FollowUpResult{ID: id, Status: followup.StatusPending}, nil
}

func (c *followUpCommandsImpl) Update(ctx context.Context, id, recruiterID uuid.UUID, req reqdto.UpdateFollowUpRequest) (*FollowUpResult, error) {
	if req.IsEmpty() {
		return nil, errs.Mark(ErrEmptyUpdate, errs.ErrDomainValidation)
	}
	now := c.clock.Now()
	if req.ScheduledAt != nil && req.ScheduledAt.Before(now.Add(-pastScheduleTolerance)) {
		return nil, errs.Mark(ErrScheduleInPast, errs.ErrDomainValidation)
	}

	var result *FollowUpResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		msg, err := c.loadOwned(ctx, tx, id, recruiterID)
		if err != nil {
			return err
		}

		if err := msg.Edit(req.MessageContent, req.ScheduledAt, now); err != nil {
			if errs.Is(err, errs.ErrFollowUpNotPending) {
				return err
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := c.save(ctx, tx, msg, followup.StatusPending); err != nil {
			return err
		}
		if err := tx.FollowUps().Upsert(ctx, followup.ScheduledRecord(msg, now)); err != nil {
			return err
		}

		result = &FollowUpResult{ID: msg.ID(), Status: msg.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *followUpCommandsImpl) Cancel(ctx context.Context, id, recruiterID uuid.UUID) (*FollowUpResult, error) {
	now := c.clock.Now()

	var result *FollowUpResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		msg, err := c.loadOwned(ctx, tx, id, recruiterID)
		if err != nil {
			return err
		}
		if err := msg.Cancel(now); err != nil {
			return errs.Mark(err, errs.ErrFollowUpNotPending)
		}
		if err := c.save(ctx, tx, msg, followup.StatusPending); err != nil {
			return err
		}

		result = &FollowUpResult{ID: msg.ID(), Status: msg.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("follow-up canceled", "id", id, "recruiter_id", recruiterID)
	return result, nil
}

func (c *followUpCommandsImpl) RecordResponse(ctx context.Context, recruiterID, candidateID uuid.UUID) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.FollowUps().MarkResponseReceived(ctx, recruiterID, candidateID, now)
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrFollowUpNotFound)
		}
		return err
	})
}

func validateSchedule(req reqdto.ScheduleFollowUpRequest, now time.Time) error {
	if req.CandidateID == uuid.Nil {
		return errs.Mark(followup.ErrMissingCandidate, errs.ErrDomainValidation)
	}
	if req.ScheduledAt.IsZero() {
		return errs.Mark(followup.ErrMissingSchedule, errs.ErrDomainValidation)
	}
	if req.ScheduledAt.Before(now.Add(-pastScheduleTolerance)) {
		return errs.Mark(ErrScheduleInPast, errs.ErrDomainValidation)
	}
	if req.TemplateID == nil && patch.TrimmedString(req.MessageContent) == "" {
		return errs.Mark(ErrMissingContent, errs.ErrDomainValidation)
	}
	return nil
}

func (c *followUpCommandsImpl) loadCandidate(ctx context.Context, tx shared.Tx, candidateID, recruiterID uuid.UUID) (*shared.CandidateSnapshot, error) {
	candidate, err := tx.Candidates().FindByID(ctx, candidateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCandidateNotFound)
		}
		return nil, err
	}
	if candidate.RecruiterID != recruiterID {
		return nil, errs.ErrCandidateNotFound
	}
	return candidate, nil
}

// composeContent fills placeholders of the explicit content, or of the template body when no content is given.
func (c *followUpCommandsImpl) composeContent(ctx context.Context, tx shared.Tx, req reqdto.ScheduleFollowUpRequest, candidate *shared.CandidateSnapshot, recruiterID uuid.UUID) (string, error) {
	body := patch.TrimmedString(req.MessageContent)
	if req.TemplateID != nil {
		tpl, err := tx.Candidates().TemplateForRecruiter(ctx, *req.TemplateID, recruiterID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return "", errs.Mark(err, errs.ErrTemplateNotFound)
			}
			return "", err
		}
		if body == "" {
			body = tpl.Body
		}
	}

	return followup.RenderTemplate(body, followup.TemplateContext{
		FirstName:     followup.FirstName(candidate.FullName),
		FullName:      candidate.FullName,
		PipelineStage: candidate.PipelineStage,
	}), nil
}

func (c *followUpCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, id, recruiterID uuid.UUID) (*followup.ScheduledMessage, error) {
	msg, err := tx.ScheduledMessages().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrFollowUpNotFound)
		}
		return nil, err
	}
	if msg.RecruiterID() != recruiterID {
		return nil, errs.ErrFollowUpNotFound
	}
	return msg, nil
}

func (c *followUpCommandsImpl) save(ctx context.Context, tx shared.Tx, msg *followup.ScheduledMessage, expected followup.Status) error {
	err := tx.ScheduledMessages().Save(ctx, msg, expected)
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, errs.ErrFollowUpNotPending)
	}
	return err
}
