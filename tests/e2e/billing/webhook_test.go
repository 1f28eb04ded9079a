//go:build e2e

package billing_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"talentbridge/internal/domain/user"
	"talentbridge/internal/usecase/commands"
	"talentbridge/tests/common/dbtest"
	"talentbridge/tests/common/httptest"
	"talentbridge/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v76/webhook"
)

const webhookURL = "/functions/stripe-webhook"

type webhookSuite struct {
	e2e.SharedSuite
	ambassadorID uuid.UUID
	referredID   uuid.UUID
}

func TestWebhookSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(webhookSuite))
}

func (s *webhookSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.ambassadorID = dbtest.CreateTestUser(s.T(), s.DB, "ambassador@example.com", string(user.RoleAmbassador))
	s.referredID = dbtest.CreateTestUser(s.T(), s.DB, "referred@example.com", string(user.RoleCandidate))
}

func (s *webhookSuite) post(payload string) (int, commands.WebhookResult) {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: []byte(payload),
		Secret:  s.Config.Stripe.WebhookSecret,
	})
	w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, webhookURL, signed.Payload, map[string]string{
		"Content-Type":     "application/json",
		"Stripe-Signature": signed.Header,
	})

	var res commands.WebhookResult
	if w.Code == http.StatusOK {
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	}
	return w.Code, res
}

func subscriptionEvent(eventID, eventType, subID, customerID, status string, userID uuid.UUID) string {
	return fmt.Sprintf(`{
		"id": %q, "object": "event", "type": %q, "created": %d,
		"data": {"object": {
			"id": %q, "object": "subscription", "status": %q,
			"customer": %q, "metadata": {"user_id": %q}
		}}
	}`, eventID, eventType, time.Now().Unix(), subID, status, customerID, userID)
}

func invoiceEvent(eventID, invoiceID, subID, customerID string, amount int64) string {
	return fmt.Sprintf(`{
		"id": %q, "object": "event", "type": "invoice.payment_succeeded", "created": %d,
		"data": {"object": {
			"id": %q, "object": "invoice", "amount_paid": %d, "currency": "usd",
			"subscription": %q, "customer": %q
		}}
	}`, eventID, time.Now().Unix(), invoiceID, amount, subID, customerID)
}

func (s *webhookSuite) TestSignature() {
	s.Run("署名不正は400", func() {
		w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, webhookURL, []byte(`{"id":"evt_x"}`), map[string]string{
			"Stripe-Signature": "t=1,v1=deadbeef",
		})
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
		require.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM webhook_events"))
	})
}

func (s *webhookSuite) TestSubscriptionLifecycle() {
	s.Run("作成でプレミアム化し削除で解除される", func() {
		t := s.T()

		code, res := s.post(subscriptionEvent("evt_1", "customer.subscription.created", "sub_1", "cus_1", "active", s.referredID))
		require.Equal(t, http.StatusOK, code)
		require.False(t, res.Duplicate)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM users WHERE id = $1 AND is_premium AND stripe_customer_id = 'cus_1'", s.referredID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM subscriptions WHERE provider_subscription_id = 'sub_1' AND status = 'active'"))

		// 同じイベントの再送は重複扱い
		code, res = s.post(subscriptionEvent("evt_1", "customer.subscription.created", "sub_1", "cus_1", "active", s.referredID))
		require.Equal(t, http.StatusOK, code)
		require.True(t, res.Duplicate)

		code, _ = s.post(subscriptionEvent("evt_2", "customer.subscription.deleted", "sub_1", "cus_1", "canceled", s.referredID))
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM users WHERE id = $1 AND NOT is_premium", s.referredID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM subscriptions WHERE provider_subscription_id = 'sub_1' AND status = 'canceled' AND canceled_at IS NOT NULL"))
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM webhook_events"))
	})
}

func (s *webhookSuite) TestCommission() {
	s.Run("初回支払いでコミッションが一度だけ付与される", func() {
		t := s.T()
		dbtest.SetStripeCustomer(t, s.DB, s.referredID, "cus_2")
		dbtest.CreateTestSubscription(t, s.DB, s.referredID, "sub_2", "cus_2", "active", nil)
		referralID := dbtest.CreateTestReferral(t, s.DB, s.ambassadorID, s.referredID, "AMB-1")

		code, res := s.post(invoiceEvent("evt_10", "in_1", "sub_2", "cus_2", 1900))
		require.Equal(t, http.StatusOK, code)
		require.Empty(t, res.Note)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM ambassador_referrals WHERE id = $1 AND status = 'completed'", referralID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM ambassador_earnings WHERE referral_id = $1 AND amount_cents = 2500 AND source_invoice_id = 'in_1'", referralID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM notifications WHERE user_id = $1", s.ambassadorID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM notification_jobs WHERE topic = $1 AND status = 'queued'", commands.EmailTopicCommission))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM xp_ledger WHERE user_id = $1 AND source_id = $2", s.ambassadorID, referralID))

		// 次の請求では追加で支払われない
		code, res = s.post(invoiceEvent("evt_11", "in_2", "sub_2", "cus_2", 1900))
		require.Equal(t, http.StatusOK, code)
		require.NotEmpty(t, res.Note)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM ambassador_earnings"))
	})

	s.Run("トライアル中の支払いは対象外", func() {
		t := s.T()
		trialEnd := time.Now().Add(7 * 24 * time.Hour)
		dbtest.CreateTestSubscription(t, s.DB, s.referredID, "sub_3", "cus_3", "trialing", &trialEnd)
		dbtest.CreateTestReferral(t, s.DB, s.ambassadorID, s.referredID, "AMB-2")

		code, res := s.post(invoiceEvent("evt_20", "in_3", "sub_3", "cus_3", 1900))
		require.Equal(t, http.StatusOK, code)
		require.NotEmpty(t, res.Note)
		require.Zero(t, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM ambassador_earnings"))
	})
}
