package xp

import (
	"time"

	"talentbridge/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnknownAction = errs.New("unknown xp action")

type Action string

const (
	ActionProfileCompleted  Action = "profile_completed"
	ActionCandidateAdded    Action = "candidate_added"
	ActionMessageSent       Action = "message_sent"
	ActionFollowUpScheduled Action = "followup_scheduled"
	ActionFollowUpSent      Action = "followup_sent"
	ActionReferralCompleted Action = "referral_completed"
	ActionDailyLogin        Action = "daily_login"
)

var points = map[Action]int32{
	ActionProfileCompleted:  50,
	ActionCandidateAdded:    15,
	ActionMessageSent:       5,
	ActionFollowUpScheduled: 10,
	ActionFollowUpSent:      10,
	ActionReferralCompleted: 100,
	ActionDailyLogin:        5,
}

// Actions a client may claim directly; the rest are awarded by the server.
var clientAwardable = map[Action]bool{
	ActionProfileCompleted: true,
	ActionCandidateAdded:   true,
	ActionMessageSent:      true,
	ActionDailyLogin:       true,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) Points() (int32, bool) {
	p, ok := points[a]
	return p, ok
}

func (a Action) ClientAwardable() bool {
	return clientAwardable[a]
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := points[a]; !ok {
		return "", ErrUnknownAction
	}
	return a, nil
}

// Entry is one append-only ledger row.
type Entry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Action    Action
	Points    int32
	SourceID  *uuid.UUID
	CreatedAt time.Time
}

func NewEntry(userID uuid.UUID, action Action, sourceID *uuid.UUID, now time.Time) (Entry, error) {
	p, ok := action.Points()
	if !ok {
		return Entry{}, ErrUnknownAction
	}
	return Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		Points:    p,
		SourceID:  sourceID,
		CreatedAt: now,
	}, nil
}
