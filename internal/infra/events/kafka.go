package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"talentbridge/internal/pkg/config"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/pkg/metrics"
	"talentbridge/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const (
	handleAttempts = 3
	handleBackoff  = 500 * time.Millisecond
)

type ActivityProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewActivityProducer(cfg config.KafkaConfig) *ActivityProducer {
	return &ActivityProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.ActivityTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
		topic: cfg.ActivityTopic,
	}
}

// PublishActivity keys messages by user so one user's events stay ordered.
func (p *ActivityProducer) PublishActivity(ctx context.Context, ev shared.ActivityEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode activity event")
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.UserID.String()),
		Value: value,
	})
	if err != nil {
		metrics.KafkaPublishFailureTotal.WithLabelValues(p.topic).Inc()
		return errs.Wrap(err, "failed to write activity event")
	}
	return nil
}

func (p *ActivityProducer) Close() error {
	return p.writer.Close()
}

// NoopActivityPublisher is used when no Kafka brokers are configured.
type NoopActivityPublisher struct{}

func (NoopActivityPublisher) PublishActivity(context.Context, shared.ActivityEvent) error { return nil }

func NewActivityPublisher(cfg config.KafkaConfig, logger *slog.Logger) (shared.ActivityPublisher, func() error) {
	if !cfg.Enabled() {
		logger.Info("KAFKA_BROKERS not set, activity events are disabled")
		return NoopActivityPublisher{}, func() error { return nil }
	}
	p := NewActivityProducer(cfg)
	return p, p.Close
}

type ActivityHandler func(ctx context.Context, ev shared.ActivityEvent) error

// ActivityConsumer reads the activity topic in a consumer group and commits after each handled message.
type ActivityConsumer struct {
	reader  *kafka.Reader
	handler ActivityHandler
	backoff time.Duration
	logger  *slog.Logger
}

func NewActivityConsumer(cfg config.KafkaConfig, handler ActivityHandler, logger *slog.Logger) *ActivityConsumer {
	return &ActivityConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.Brokers,
			Topic:    cfg.ActivityTopic,
			GroupID:  cfg.GroupID,
			MaxBytes: 10e6, // 10MB
		}),
		handler: handler,
		backoff: handleBackoff,
		logger:  logger,
	}
}

// Run blocks until ctx is cancelled or the reader fails.
func (c *ActivityConsumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errs.Wrap(err, "failed to fetch activity event")
		}

		c.handle(ctx, m)

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errs.Wrap(err, "failed to commit activity event")
		}
	}
}

// handle retries transient failures a few times; poison messages are logged and skipped.
func (c *ActivityConsumer) handle(ctx context.Context, m kafka.Message) {
	var ev shared.ActivityEvent
	if err := json.Unmarshal(m.Value, &ev); err != nil {
		c.logger.Warn("skipping malformed activity event", "partition", m.Partition, "offset", m.Offset, "error", err.Error())
		return
	}

	var err error
	for attempt := 1; attempt <= handleAttempts; attempt++ {
		if err = c.handler(ctx, ev); err == nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
		time.Sleep(time.Duration(attempt) * c.backoff)
	}
	c.logger.Error("activity event dropped after retries", "type", ev.Type, "source_id", ev.SourceID, "offset", m.Offset, "error", err.Error())
}

func (c *ActivityConsumer) Close() error {
	return c.reader.Close()
}
