package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"talentbridge/internal/domain/followup"
	"talentbridge/internal/infra"
	"talentbridge/internal/pkg/clock"
	"talentbridge/internal/pkg/metrics"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxErrorMessageLen = 500

type DispatchResult struct {
	Processed  int `json:"processed"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type DispatcherSettings struct {
	BatchSize   int32
	Lease       time.Duration
	ItemTimeout time.Duration
}

// MessageEvent is the realtime payload sent on the messages topic after delivery.
type MessageEvent struct {
	ScheduledMessageID uuid.UUID `json:"scheduled_message_id"`
	MessageID          uuid.UUID `json:"message_id"`
	RecruiterID        uuid.UUID `json:"recruiter_id"`
	CandidateID        uuid.UUID `json:"candidate_id"`
	Content            string    `json:"content"`
	SentAt             time.Time `json:"sent_at"`
}

type Dispatcher interface {
	// RunOnce claims due messages and delivers each one independently.
	RunOnce(ctx context.Context) (*DispatchResult, error)
}

type dispatcherImpl struct {
	uow      shared.UnitOfWork
	realtime shared.RealtimePublisher
	activity shared.ActivityPublisher
	clock    clock.Clock
	settings DispatcherSettings
	logger   *slog.Logger
}

func NewDispatcher(
	uow shared.UnitOfWork,
	realtime shared.RealtimePublisher,
	activity shared.ActivityPublisher,
	clk clock.Clock,
	settings DispatcherSettings,
	logger *slog.Logger,
) Dispatcher {
	if settings.BatchSize <= 0 {
		settings.BatchSize = 100
	}
	if settings.Lease <= 0 {
		settings.Lease = 5 * time.Minute
	}
	if settings.ItemTimeout <= 0 {
		settings.ItemTimeout = 10 * time.Second
	}
	return &dispatcherImpl{
		uow:      uow,
		realtime: realtime,
		activity: activity,
		clock:    clk,
		settings: settings,
		logger:   logger,
	}
}

type delivery struct {
	msg       followup.ScheduledMessage
	messageID uuid.UUID
	candidate *shared.CandidateSnapshot
}

func (d *dispatcherImpl) RunOnce(ctx context.Context) (*DispatchResult, error) {
	started := time.Now()
	defer func() { metrics.DispatchRunDuration.Observe(time.Since(started).Seconds()) }()

	now := d.clock.Now()
	var claimed []*followup.ScheduledMessage
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.ScheduledMessages().ClaimDue(ctx, now, now.Add(-d.settings.Lease), d.settings.BatchSize)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &DispatchResult{}
	for _, msg := range claimed {
		// unprocessed claims are picked up again once their lease expires
		if ctx.Err() != nil {
			d.logger.Warn("dispatch run interrupted", "remaining", len(claimed)-result.Processed, "error", ctx.Err().Error())
			break
		}

		result.Processed++
		done, err := d.deliver(ctx, msg)
		if err != nil {
			result.Failed++
			metrics.FollowUpsDispatchedTotal.WithLabelValues("failure").Inc()
			d.markFailed(ctx, msg, err)
			continue
		}
		result.Successful++
		metrics.FollowUpsDispatchedTotal.WithLabelValues("success").Inc()
		d.announce(ctx, done)
	}

	if result.Processed > 0 {
		d.logger.Info("dispatch run finished",
			"processed", result.Processed,
			"successful", result.Successful,
			"failed", result.Failed)
	}
	return result, nil
}

func (d *dispatcherImpl) deliver(ctx context.Context, claimed *followup.ScheduledMessage) (*delivery, error) {
	itemCtx, cancel := context.WithTimeout(ctx, d.settings.ItemTimeout)
	defer cancel()

	var out *delivery
	err := d.uow.Within(itemCtx, func(ctx context.Context, tx shared.Tx) error {
		// work on a copy so a retried transaction starts from the claimed state
		msg := *claimed
		now := d.clock.Now()

		candidate, err := tx.Candidates().FindByID(ctx, msg.CandidateID())
		if err != nil {
			return err
		}

		if err := msg.MarkSent(now); err != nil {
			return err
		}

		messageID, err := tx.Messages().Insert(ctx, shared.DeliveredMessage{
			RecruiterID:        msg.RecruiterID(),
			CandidateID:        msg.CandidateID(),
			ScheduledMessageID: msg.ID(),
			Content:            msg.Content(),
			SentAt:             now,
		})
		if err != nil {
			return err
		}

		if err := tx.ScheduledMessages().Save(ctx, &msg, followup.StatusProcessing); err != nil {
			return err
		}
		if err := tx.Candidates().TouchContact(ctx, candidate.ID, now, msg.NextPipelineStage()); err != nil {
			return err
		}
		if err := tx.FollowUps().Upsert(ctx, followup.DeliveredRecord(&msg, now)); err != nil {
			return err
		}

		scheduledID := msg.ID()
		if err := tx.AutomationLogs().Append(ctx, shared.AutomationLogEntry{
			RecruiterID:        msg.RecruiterID(),
			CandidateID:        msg.CandidateID(),
			ScheduledMessageID: &scheduledID,
			Action:             shared.AutomationActionFollowUpSent,
			Status:             shared.AutomationStatusSuccess,
			CreatedAt:          now,
		}); err != nil {
			return err
		}

		out = &delivery{msg: msg, messageID: messageID, candidate: candidate}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// markFailed records the failure in its own transaction; the delivery transaction has already rolled back.
func (d *dispatcherImpl) markFailed(ctx context.Context, claimed *followup.ScheduledMessage, cause error) {
	failCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.settings.ItemTimeout)
	defer cancel()

	reason := truncate(cause.Error(), maxErrorMessageLen)
	err := d.uow.Within(failCtx, func(ctx context.Context, tx shared.Tx) error {
		msg := *claimed
		now := d.clock.Now()

		if err := msg.MarkFailed(reason, now); err != nil {
			return err
		}
		if err := tx.ScheduledMessages().Save(ctx, &msg, followup.StatusProcessing); err != nil {
			return err
		}

		scheduledID := msg.ID()
		return tx.AutomationLogs().Append(ctx, shared.AutomationLogEntry{
			RecruiterID:        msg.RecruiterID(),
			CandidateID:        msg.CandidateID(),
			ScheduledMessageID: &scheduledID,
			Action:             shared.AutomationActionFollowUpSent,
			Status:             shared.AutomationStatusFailure,
			ErrorMessage:       &reason,
			CreatedAt:          now,
		})
	})

	switch {
	case err == nil:
		d.logger.Warn("follow-up delivery failed", "id", claimed.ID(), "error", reason)
	case infra.IsKind(err, infra.KindConflict):
		d.logger.Warn("follow-up left processing before it could be marked failed", "id", claimed.ID())
	default:
		// stays processing; a later run reclaims it after the lease
		d.logger.Error("failed to record follow-up failure", "id", claimed.ID(), "cause", reason, "error", err.Error())
	}
}

func (d *dispatcherImpl) announce(ctx context.Context, done *delivery) {
	msg := done.msg
	event := MessageEvent{
		ScheduledMessageID: msg.ID(),
		MessageID:          done.messageID,
		RecruiterID:        msg.RecruiterID(),
		CandidateID:        msg.CandidateID(),
		Content:            msg.Content(),
		SentAt:             *msg.SentAt(),
	}

	recipients := []uuid.UUID{msg.RecruiterID()}
	if done.candidate.UserID != nil {
		recipients = append(recipients, *done.candidate.UserID)
	}
	for _, userID := range recipients {
		if err := d.realtime.Publish(ctx, shared.TopicMessages, userID, event); err != nil {
			d.logger.Warn("failed to publish message event", "user_id", userID, "error", err.Error())
		}
	}

	err := d.activity.PublishActivity(ctx, shared.ActivityEvent{
		Type:       shared.ActivityFollowUpSent,
		UserID:     msg.RecruiterID(),
		SourceID:   msg.ID(),
		OccurredAt: *msg.SentAt(),
	})
	if err != nil {
		d.logger.Warn("failed to publish activity event", "id", msg.ID(), "error", err.Error())
	}
}

// truncate cuts s to at most n bytes without splitting a rune; PostgreSQL rejects invalid UTF-8 text.
func truncate(s string, n int) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
