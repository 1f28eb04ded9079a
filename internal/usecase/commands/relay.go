package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"time"

	"talentbridge/internal/pkg/clock"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/pkg/metrics"
	"talentbridge/internal/usecase/shared"
)

var ErrUnrenderableEmail = errs.New("email job cannot be rendered")

type RelayResult struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Retried   int `json:"retried"`
	Failed    int `json:"failed"`
}

type RelaySettings struct {
	BatchSize   int32
	MaxAttempts int32
	Backoff     time.Duration
}

func (s RelaySettings) withDefaults() RelaySettings {
	if s.BatchSize <= 0 {
		s.BatchSize = 50
	}
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = 5
	}
	if s.Backoff <= 0 {
		s.Backoff = time.Minute
	}
	return s
}

// NotificationRelay drains the email outbox written by other use cases.
type NotificationRelay interface {
	RunOnce(ctx context.Context) (*RelayResult, error)
}

type notificationRelayImpl struct {
	uow      shared.UnitOfWork
	mailer   shared.Mailer
	clock    clock.Clock
	settings RelaySettings
	logger   *slog.Logger
}

func NewNotificationRelay(uow shared.UnitOfWork, mailer shared.Mailer, clk clock.Clock, settings RelaySettings, logger *slog.Logger) NotificationRelay {
	return &notificationRelayImpl{
		uow:      uow,
		mailer:   mailer,
		clock:    clk,
		settings: settings.withDefaults(),
		logger:   logger,
	}
}

func (r *notificationRelayImpl) RunOnce(ctx context.Context) (*RelayResult, error) {
	var jobs []shared.NotificationJob
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Notifications().ClaimJobs(ctx, r.clock.Now(), r.settings.BatchSize)
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to claim notification jobs")
	}

	result := &RelayResult{}
	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		result.Processed++

		sendErr := r.deliver(ctx, job)
		status, runAt, lastErr := r.nextState(job, sendErr)
		switch status {
		case shared.JobStatusDone:
			result.Sent++
		case shared.JobStatusQueued:
			result.Retried++
		default:
			result.Failed++
		}
		metrics.EmailJobsTotal.WithLabelValues(status).Inc()

		if err := r.updateStatus(ctx, job, status, lastErr, runAt); err != nil {
			r.logger.Error("failed to update notification job", "job_id", job.ID, "status", status, "error", err.Error())
			continue
		}
		if sendErr != nil {
			r.logger.Warn("email delivery failed", "job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "next_status", status, "error", sendErr.Error())
		}
	}

	if result.Processed > 0 {
		r.logger.Info("notification relay run completed", "processed", result.Processed, "sent", result.Sent, "retried", result.Retried, "failed", result.Failed)
	}
	return result, nil
}

// nextState retries with linear backoff until attempts run out. Jobs that cannot be rendered fail at once.
func (r *notificationRelayImpl) nextState(job shared.NotificationJob, sendErr error) (string, *time.Time, *string) {
	if sendErr == nil {
		return shared.JobStatusDone, nil, nil
	}
	msg := truncate(sendErr.Error(), maxErrorMessageLen)
	if errs.Is(sendErr, ErrUnrenderableEmail) || job.Attempts >= r.settings.MaxAttempts {
		return shared.JobStatusFailed, nil, &msg
	}
	next := r.clock.Now().Add(time.Duration(job.Attempts) * r.settings.Backoff)
	return shared.JobStatusQueued, &next, &msg
}

func (r *notificationRelayImpl) updateStatus(ctx context.Context, job shared.NotificationJob, status string, lastErr *string, runAt *time.Time) error {
	return r.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().UpdateJobStatus(ctx, job.ID, status, lastErr, runAt)
	})
}

func (r *notificationRelayImpl) deliver(ctx context.Context, job shared.NotificationJob) error {
	email, err := r.render(ctx, job)
	if err != nil {
		return err
	}
	return r.mailer.Send(ctx, *email)
}

func (r *notificationRelayImpl) render(ctx context.Context, job shared.NotificationJob) (*shared.Email, error) {
	switch job.Topic {
	case EmailTopicCommission:
		var p CommissionEmailPayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "malformed commission payload"), ErrUnrenderableEmail)
		}

		var contact *shared.UserContact
		err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			c, err := tx.Users().FindContact(ctx, p.AmbassadorID)
			if err != nil {
				return err
			}
			contact = c
			return nil
		})
		if err != nil {
			return nil, err
		}

		amount := formatAmount(p.AmountCents, p.Currency)
		return &shared.Email{
			ToAddress: contact.Email,
			ToName:    contact.DisplayName,
			Subject:   "You earned a referral commission",
			Text: fmt.Sprintf("Hi %s,\n\nA user you referred upgraded to a paid plan. %s has been credited to your ambassador account.\n",
				contact.DisplayName, amount),
			HTML: fmt.Sprintf("<p>Hi %s,</p><p>A user you referred upgraded to a paid plan. <strong>%s</strong> has been credited to your ambassador account.</p>",
				html.EscapeString(contact.DisplayName), html.EscapeString(amount)),
		}, nil
	default:
		return nil, errs.Wrap(ErrUnrenderableEmail, job.Topic)
	}
}
