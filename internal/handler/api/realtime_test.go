//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"talentbridge/internal/handler/api"
	"talentbridge/internal/usecase/shared"
	"talentbridge/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriber struct {
	events   []shared.RealtimeEvent
	err      error
	topic    shared.RealtimeTopic
	userID   uuid.UUID
	canceled bool
}

func (f *fakeSubscriber) Subscribe(_ context.Context, topic shared.RealtimeTopic, userID uuid.UUID) (<-chan shared.RealtimeEvent, func(), error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	f.topic, f.userID = topic, userID
	ch := make(chan shared.RealtimeEvent, len(f.events))
	for _, ev := range f.events {
		ch <- ev
	}
	close(ch)
	return ch, func() { f.canceled = true }, nil
}

// gin's Stream needs http.CloseNotifier, which ResponseRecorder lacks.
type closeNotifyingRecorder struct {
	*nethttptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool { return r.closed }

func newRealtimeRouter(sub shared.RealtimeSubscriber, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := api.NewRealtimeHandler(sub, slog.New(slog.DiscardHandler))
	r.GET("/realtime/:topic", withUser(userID), h.Stream)
	return r
}

func TestRealtimeStream(t *testing.T) {
	userID := uuid.New()

	t.Run("ready event then forwarded payloads", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]any{"action": "daily_login", "points": 5})
		sub := &fakeSubscriber{events: []shared.RealtimeEvent{{Topic: shared.TopicPoints, UserID: userID, Payload: payload}}}
		router := newRealtimeRouter(sub, userID)

		rec := &closeNotifyingRecorder{ResponseRecorder: nethttptest.NewRecorder(), closed: make(chan bool, 1)}
		router.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/realtime/points", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/event-stream"), rec.Header().Get("Content-Type"))
		body := rec.Body.String()
		assert.Contains(t, body, "event:ready")
		assert.Contains(t, body, "event:points")
		assert.Contains(t, body, `"action":"daily_login"`)
		assert.Equal(t, shared.TopicPoints, sub.topic)
		assert.Equal(t, userID, sub.userID)
		assert.True(t, sub.canceled)
	})

	t.Run("unknown topic is rejected", func(t *testing.T) {
		sub := &fakeSubscriber{}
		router := newRealtimeRouter(sub, userID)

		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/realtime/weather", nil))
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Unknown topic")
	})

	t.Run("subscribe failure is 503", func(t *testing.T) {
		sub := &fakeSubscriber{err: errors.New("redis down")}
		router := newRealtimeRouter(sub, userID)

		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/realtime/messages", nil))
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Realtime feed unavailable")
	})
}
