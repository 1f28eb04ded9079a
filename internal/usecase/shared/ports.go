package shared

import (
	"context"
	"encoding/json"
	"time"

	"talentbridge/internal/domain/billing"

	"github.com/google/uuid"
)

type RealtimeTopic string

const (
	TopicMessages      RealtimeTopic = "messages"
	TopicNotifications RealtimeTopic = "notifications"
	TopicPoints        RealtimeTopic = "points"
)

func (t RealtimeTopic) IsValid() bool {
	switch t {
	case TopicMessages, TopicNotifications, TopicPoints:
		return true
	default:
		return false
	}
}

// RealtimePublisher pushes a per-user event to live subscribers. Delivery is best effort.
type RealtimePublisher interface {
	Publish(ctx context.Context, topic RealtimeTopic, userID uuid.UUID, payload any) error
}

type RealtimeEvent struct {
	Topic   RealtimeTopic   `json:"topic"`
	UserID  uuid.UUID       `json:"user_id"`
	Payload json.RawMessage `json:"payload"`
}

// RealtimeSubscriber hands out per-user event streams. cancel releases the stream and closes the channel.
type RealtimeSubscriber interface {
	Subscribe(ctx context.Context, topic RealtimeTopic, userID uuid.UUID) (events <-chan RealtimeEvent, cancel func(), err error)
}

const ActivityFollowUpSent = "followup.sent"

// ActivityEvent is a domain fact broadcast to downstream consumers.
type ActivityEvent struct {
	Type       string    `json:"type"`
	UserID     uuid.UUID `json:"user_id"`
	SourceID   uuid.UUID `json:"source_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ActivityPublisher interface {
	PublishActivity(ctx context.Context, ev ActivityEvent) error
}

type Email struct {
	ToAddress string
	ToName    string
	Subject   string
	Text      string
	HTML      string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// BillingEventVerifier authenticates a raw provider webhook and decodes it.
type BillingEventVerifier interface {
	Verify(payload []byte, signatureHeader string) (*billing.Event, error)
}
