package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"talentbridge/internal/handler/httperr"
	"talentbridge/internal/handler/middleware"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 25 * time.Second

var errUnknownTopic = errs.New("unknown realtime topic")

type RealtimeHandler struct {
	subscriber shared.RealtimeSubscriber
	logger     *slog.Logger
}

func NewRealtimeHandler(subscriber shared.RealtimeSubscriber, logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{subscriber: subscriber, logger: logger}
}

// @Summary Realtime stream
// @Description Server-Sent Events for the authenticated user on one topic
// @Tags realtime
// @Produce text/event-stream
// @Security BearerAuth
// @Param topic path string true "messages | notifications | points"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} httperr.Response
// @Router /api/realtime/{topic} [get]
func (h *RealtimeHandler) Stream(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}
	topic := shared.RealtimeTopic(c.Param("topic"))
	if !topic.IsValid() {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errUnknownTopic, string(topic)), "Unknown topic", nil)
		return
	}

	ctx := c.Request.Context()
	events, cancel, err := h.subscriber.Subscribe(ctx, topic, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Realtime feed unavailable", nil)
		return
	}
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.SSEvent("ready", gin.H{"topic": topic})
	c.Writer.Flush()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, open := <-events:
			if !open {
				return false
			}
			c.SSEvent(string(ev.Topic), ev.Payload)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
	})
	h.logger.Debug("realtime stream closed", "topic", topic, "user_id", userID)
}
