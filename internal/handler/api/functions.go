package api

import (
	"io"
	"net/http"

	"talentbridge/internal/handler/httperr"
	"talentbridge/internal/pkg/errs"
	"talentbridge/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody bounds the payload read into memory.
const maxWebhookBody = 64 << 10

// FunctionsHandler serves the machine-to-machine endpoints under /functions.
type FunctionsHandler struct {
	dispatcher commands.Dispatcher
	billing    commands.BillingCommands
	relay      commands.NotificationRelay
}

func NewFunctionsHandler(dispatcher commands.Dispatcher, billing commands.BillingCommands, relay commands.NotificationRelay) *FunctionsHandler {
	return &FunctionsHandler{dispatcher: dispatcher, billing: billing, relay: relay}
}

// @Summary Dispatch due follow-ups
// @Description Cron trigger; claims and sends every due scheduled message
// @Tags functions
// @Produce json
// @Param X-Cron-Secret header string true "Shared cron secret"
// @Success 200 {object} commands.DispatchResult
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /functions/send-scheduled-followups [post]
func (h *FunctionsHandler) SendScheduledFollowUps(c *gin.Context) {
	result, err := h.dispatcher.RunOnce(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Dispatch failed", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Relay queued emails
// @Description Cron trigger; sends queued notification emails
// @Tags functions
// @Produce json
// @Param X-Cron-Secret header string true "Shared cron secret"
// @Success 200 {object} commands.RelayResult
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /functions/process-notification-jobs [post]
func (h *FunctionsHandler) ProcessNotificationJobs(c *gin.Context) {
	result, err := h.relay.RunOnce(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Relay failed", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Stripe webhook
// @Description Verifies the Stripe-Signature header and reconciles subscriptions and referral commissions
// @Tags functions
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} commands.WebhookResult
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /functions/stripe-webhook [post]
func (h *FunctionsHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}

	result, err := h.billing.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errs.Is(err, errs.ErrInvalidSignature) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Webhook processing failed", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}
