package commands

import (
	"context"
	"log/slog"

	"talentbridge/internal/domain/xp"
	reqdto "talentbridge/internal/handler/dto/request"
	"talentbridge/internal/pkg/clock"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/pkg/metrics"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrActionNotClaimable = errs.New("xp action is awarded by the server only")
	ErrUnsupportedEvent   = errs.New("unsupported activity event")
)

type AwardResult struct {
	Action  xp.Action
	Points  int32
	Awarded bool
	Total   int64
}

// PointsEvent is the realtime payload sent on the points topic.
type PointsEvent struct {
	Action string `json:"action"`
	Points int32  `json:"points"`
	Total  int64  `json:"total"`
}

type XPCommands interface {
	// AwardAction is the client path: only client-awardable actions are accepted.
	AwardAction(ctx context.Context, userID uuid.UUID, req reqdto.AwardXPRequest) (*AwardResult, error)
	// AwardForActivity turns a domain activity event into a ledger entry.
	AwardForActivity(ctx context.Context, ev shared.ActivityEvent) (*AwardResult, error)
}

type xpCommandsImpl struct {
	uow      shared.UnitOfWork
	realtime shared.RealtimePublisher
	clock    clock.Clock
	logger   *slog.Logger
}

func NewXPCommands(uow shared.UnitOfWork, realtime shared.RealtimePublisher, clk clock.Clock, logger *slog.Logger) XPCommands {
	return &xpCommandsImpl{
		uow:      uow,
		realtime: realtime,
		clock:    clk,
		logger:   logger,
	}
}

func (c *xpCommandsImpl) AwardAction(ctx context.Context, userID uuid.UUID, req reqdto.AwardXPRequest) (*AwardResult, error) {
	action, err := xp.ParseAction(req.Action)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnknownXPAction)
	}
	if !action.ClientAwardable() {
		return nil, ErrActionNotClaimable
	}
	return c.award(ctx, userID, action, req.SourceID)
}

func (c *xpCommandsImpl) AwardForActivity(ctx context.Context, ev shared.ActivityEvent) (*AwardResult, error) {
	switch ev.Type {
	case shared.ActivityFollowUpSent:
		source := ev.SourceID
		return c.award(ctx, ev.UserID, xp.ActionFollowUpSent, &source)
	default:
		return nil, errs.Wrap(ErrUnsupportedEvent, ev.Type)
	}
}

func (c *xpCommandsImpl) award(ctx context.Context, userID uuid.UUID, action xp.Action, sourceID *uuid.UUID) (*AwardResult, error) {
	var result *AwardResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		result, err = awardInTx(ctx, tx, userID, action, sourceID, c.clock)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Awarded {
		publishPoints(ctx, c.realtime, c.logger, userID, result)
	}
	return result, nil
}

// awardInTx appends one ledger entry inside an open transaction. A repeated source is a no-op.
func awardInTx(ctx context.Context, tx shared.Tx, userID uuid.UUID, action xp.Action, sourceID *uuid.UUID, clk clock.Clock) (*AwardResult, error) {
	entry, err := xp.NewEntry(userID, action, sourceID, clk.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnknownXPAction)
	}

	awarded, err := tx.XPLedger().Append(ctx, entry)
	if err != nil {
		return nil, err
	}

	total, err := tx.XPLedger().Total(ctx, userID)
	if err != nil {
		return nil, err
	}

	if awarded {
		metrics.XPAwardedTotal.WithLabelValues(action.String()).Inc()
	}
	return &AwardResult{
		Action:  action,
		Points:  entry.Points,
		Awarded: awarded,
		Total:   total,
	}, nil
}

func publishPoints(ctx context.Context, pub shared.RealtimePublisher, logger *slog.Logger, userID uuid.UUID, r *AwardResult) {
	err := pub.Publish(ctx, shared.TopicPoints, userID, PointsEvent{
		Action: r.Action.String(),
		Points: r.Points,
		Total:  r.Total,
	})
	if err != nil {
		logger.Warn("failed to publish points event", "user_id", userID, "error", err.Error())
	}
}
