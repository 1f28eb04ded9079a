package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"talentbridge/internal/pkg/config"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/pkg/metrics"
	"talentbridge/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	channelPrefix = "realtime:"
	// subscriberBuffer bounds each client's backlog; slow clients drop events.
	subscriberBuffer = 32
)

var ErrUnknownTopic = errs.New("unknown realtime topic")

type subscriber struct {
	ch chan shared.RealtimeEvent
}

// feed is the single Redis pattern subscription backing one topic.
type feed struct {
	pubsub *redis.PubSub
	users  map[uuid.UUID]map[*subscriber]struct{}
	count  int
}

// Manager multiplexes local subscribers onto one Redis subscription per topic.
type Manager struct {
	client *redis.Client
	logger *slog.Logger

	mu    sync.Mutex
	feeds map[shared.RealtimeTopic]*feed
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewManager(client *redis.Client, logger *slog.Logger) *Manager {
	return &Manager{
		client: client,
		logger: logger,
		feeds:  make(map[shared.RealtimeTopic]*feed),
	}
}

func Channel(topic shared.RealtimeTopic, userID uuid.UUID) string {
	return channelPrefix + string(topic) + ":" + userID.String()
}

func pattern(topic shared.RealtimeTopic) string {
	return channelPrefix + string(topic) + ":*"
}

func parseChannel(channel string) (shared.RealtimeTopic, uuid.UUID, bool) {
	rest, ok := strings.CutPrefix(channel, channelPrefix)
	if !ok {
		return "", uuid.Nil, false
	}
	topic, user, ok := strings.Cut(rest, ":")
	if !ok {
		return "", uuid.Nil, false
	}
	id, err := uuid.Parse(user)
	if err != nil {
		return "", uuid.Nil, false
	}
	return shared.RealtimeTopic(topic), id, true
}

func (m *Manager) Publish(ctx context.Context, topic shared.RealtimeTopic, userID uuid.UUID, payload any) error {
	if !topic.IsValid() {
		return errs.Wrap(ErrUnknownTopic, string(topic))
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode realtime payload")
	}
	if err := m.client.Publish(ctx, Channel(topic, userID), data).Err(); err != nil {
		return errs.Wrap(err, "failed to publish realtime event")
	}
	return nil
}

// Subscribe registers a listener for userID on topic. The returned cancel func is idempotent and closes the channel.
func (m *Manager) Subscribe(ctx context.Context, topic shared.RealtimeTopic, userID uuid.UUID) (<-chan shared.RealtimeEvent, func(), error) {
	if !topic.IsValid() {
		return nil, nil, errs.Wrap(ErrUnknownTopic, string(topic))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.feeds[topic]
	if !ok {
		ps := m.client.PSubscribe(ctx, pattern(topic))
		if _, err := ps.Receive(ctx); err != nil {
			_ = ps.Close()
			return nil, nil, errs.Wrap(err, "failed to subscribe to realtime topic")
		}
		f = &feed{pubsub: ps, users: make(map[uuid.UUID]map[*subscriber]struct{})}
		m.feeds[topic] = f
		go m.pump(topic, f)
		m.logger.Debug("realtime feed opened", "topic", topic)
	}

	sub := &subscriber{ch: make(chan shared.RealtimeEvent, subscriberBuffer)}
	if f.users[userID] == nil {
		f.users[userID] = make(map[*subscriber]struct{})
	}
	f.users[userID][sub] = struct{}{}
	f.count++
	metrics.RealtimeSubscribers.WithLabelValues(string(topic)).Inc()

	var once sync.Once
	cancel := func() {
		once.Do(func() { m.unsubscribe(topic, f, userID, sub) })
	}
	return sub.ch, cancel, nil
}

func (m *Manager) unsubscribe(topic shared.RealtimeTopic, f *feed, userID uuid.UUID, sub *subscriber) {
	if ps := m.detach(topic, f, userID, sub); ps != nil {
		// closed outside the lock so a pump blocked on m.mu can drain
		if err := ps.Close(); err != nil {
			m.logger.Warn("failed to close realtime feed", "topic", topic, "error", err.Error())
		}
		m.logger.Debug("realtime feed closed", "topic", topic)
	}
}

// detach removes sub and returns the feed's pubsub when it was the last subscriber.
func (m *Manager) detach(topic shared.RealtimeTopic, f *feed, userID uuid.UUID, sub *subscriber) *redis.PubSub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := f.users[userID][sub]; !ok {
		return nil
	}
	delete(f.users[userID], sub)
	if len(f.users[userID]) == 0 {
		delete(f.users, userID)
	}
	close(sub.ch)
	f.count--
	metrics.RealtimeSubscribers.WithLabelValues(string(topic)).Dec()

	if f.count > 0 {
		return nil
	}
	if m.feeds[topic] == f {
		delete(m.feeds, topic)
	}
	return f.pubsub
}

// pump ends when the feed's pubsub is closed.
func (m *Manager) pump(topic shared.RealtimeTopic, f *feed) {
	for msg := range f.pubsub.Channel() {
		msgTopic, userID, ok := parseChannel(msg.Channel)
		if !ok || msgTopic != topic {
			continue
		}
		ev := shared.RealtimeEvent{Topic: topic, UserID: userID, Payload: json.RawMessage(msg.Payload)}

		m.mu.Lock()
		for sub := range f.users[userID] {
			select {
			case sub.ch <- ev:
			default:
				m.logger.Warn("dropping realtime event for slow subscriber", "topic", topic, "user_id", userID)
			}
		}
		m.mu.Unlock()
	}
}

// FeedCount reports the number of open Redis subscriptions.
func (m *Manager) FeedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.feeds)
}

func (m *Manager) Close() error {
	m.mu.Lock()
	feeds := m.feeds
	m.feeds = make(map[shared.RealtimeTopic]*feed)
	m.mu.Unlock()

	for topic, f := range feeds {
		if err := f.pubsub.Close(); err != nil {
			m.logger.Warn("failed to close realtime feed", "topic", topic, "error", err.Error())
		}
	}
	return m.client.Close()
}
