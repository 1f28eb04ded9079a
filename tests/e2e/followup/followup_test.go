//go:build e2e

package followup_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"talentbridge/internal/domain/user"
	"talentbridge/internal/handler/dto/request"
	resdto "talentbridge/internal/handler/dto/response"
	"talentbridge/internal/handler/middleware"
	"talentbridge/internal/infra/realtime"
	"talentbridge/internal/usecase/commands"
	"talentbridge/internal/usecase/shared"
	"talentbridge/tests/common/authtest"
	"talentbridge/tests/common/dbtest"
	"talentbridge/tests/common/httptest"
	"talentbridge/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	followUpsURL = "/api/followups"
	dispatchURL  = "/functions/send-scheduled-followups"
)

type followUpSuite struct {
	e2e.SharedSuite
	recruiterID uuid.UUID
	token       string
	candidateID uuid.UUID
}

func TestFollowUpSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(followUpSuite))
}

func (s *followUpSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.recruiterID, s.token = authtest.CreateAndLoginWithID(s.T(), s.DB, s.Router, "recruiter@example.com", string(user.RoleRecruiter))
	s.candidateID = dbtest.CreateTestCandidate(s.T(), s.DB, s.recruiterID, "Amy Ambrose", "screening")
}

func (s *followUpSuite) schedule(content string, at time.Time) *resdto.FollowUpResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, followUpsURL, request.ScheduleFollowUpRequest{
		CandidateID:    s.candidateID,
		MessageContent: &content,
		ScheduledAt:    at,
	}, s.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res resdto.FollowUpResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res
}

func (s *followUpSuite) dispatch(secret string) (int, commands.DispatchResult) {
	w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, dispatchURL, nil, map[string]string{
		middleware.CronSecretHeader: secret,
	})
	var res commands.DispatchResult
	if w.Code == http.StatusOK {
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	}
	return w.Code, res
}

func (s *followUpSuite) TestSchedule() {
	s.Run("テンプレート変数を展開して予約できる", func() {
		res := s.schedule("Hi {full_name}, any news?", time.Now().Add(time.Hour))

		require.Equal(s.T(), "pending", res.Status)
		require.Equal(s.T(), "Hi Amy Ambrose, any news?", res.MessageContent)
		require.Equal(s.T(), s.candidateID, res.CandidateID)
		require.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM followups WHERE candidate_id = $1", s.candidateID))
	})

	s.Run("保留中の予約がある候補者には重複予約できない", func() {
		s.schedule("first", time.Now().Add(time.Hour))

		content := "second"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, followUpsURL, request.ScheduleFollowUpRequest{
			CandidateID:    s.candidateID,
			MessageContent: &content,
			ScheduledAt:    time.Now().Add(2 * time.Hour),
		}, s.token)
		require.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("過去日時は拒否される", func() {
		content := "late"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, followUpsURL, request.ScheduleFollowUpRequest{
			CandidateID:    s.candidateID,
			MessageContent: &content,
			ScheduledAt:    time.Now().Add(-time.Hour),
		}, s.token)
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})

	s.Run("他リクルーターの候補者は見つからない", func() {
		otherID := dbtest.CreateTestUser(s.T(), s.DB, "other@example.com", string(user.RoleRecruiter))
		foreign := dbtest.CreateTestCandidate(s.T(), s.DB, otherID, "Bob Brown", "sourced")

		content := "hello"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, followUpsURL, request.ScheduleFollowUpRequest{
			CandidateID:    foreign,
			MessageContent: &content,
			ScheduledAt:    time.Now().Add(time.Hour),
		}, s.token)
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})

	s.Run("候補者ロールは予約できない", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "candidate@example.com", string(user.RoleCandidate))

		content := "hello"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, followUpsURL, request.ScheduleFollowUpRequest{
			CandidateID:    s.candidateID,
			MessageContent: &content,
			ScheduledAt:    time.Now().Add(time.Hour),
		}, token)
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}

func (s *followUpSuite) TestListAndCancel() {
	s.Run("一覧取得とキャンセル", func() {
		t := s.T()
		created := s.schedule("ping", time.Now().Add(time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, followUpsURL+"?status=pending", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)
		var list resdto.FollowUpListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Equal(t, 1, list.Count)
		require.Equal(t, created.ID, list.Items[0].ID)
		require.Equal(t, "Amy Ambrose", list.Items[0].CandidateName)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("%s/%s/cancel", followUpsURL, created.ID), nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var canceled resdto.FollowUpResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &canceled))
		require.Equal(t, "canceled", canceled.Status)

		// キャンセル済みは再キャンセルできない
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("%s/%s/cancel", followUpsURL, created.ID), nil, s.token)
		require.Equal(t, http.StatusConflict, w.Code)

		// キャンセル後は再予約できる
		s.schedule("pong", time.Now().Add(time.Hour))
	})

	s.Run("不正なステータスフィルタ", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, followUpsURL+"?status=bogus", nil, s.token)
		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *followUpSuite) TestDispatch() {
	s.Run("期限到来分だけが送信される", func() {
		t := s.T()
		due := dbtest.CreateTestScheduledMessage(t, s.DB, s.recruiterID, s.candidateID, "due now", time.Now().Add(-time.Minute))
		other := dbtest.CreateTestCandidate(t, s.DB, s.recruiterID, "Cara Cole", "sourced")
		future := dbtest.CreateTestScheduledMessage(t, s.DB, s.recruiterID, other, "later", time.Now().Add(time.Hour))

		// リクルーター宛ての realtime イベントを購読しておく
		sub := s.Redis.Subscribe(t.Context(), realtime.Channel(shared.TopicMessages, s.recruiterID))
		defer sub.Close()
		_, err := sub.Receive(t.Context())
		require.NoError(t, err)

		code, res := s.dispatch(s.Config.Functions.CronSecret)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, commands.DispatchResult{Processed: 1, Successful: 1}, res)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM scheduled_messages WHERE id = $1 AND status = 'sent' AND sent_at IS NOT NULL", due))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM scheduled_messages WHERE id = $1 AND status = 'pending'", future))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM candidate_messages WHERE scheduled_message_id = $1", due))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM automation_logs WHERE scheduled_message_id = $1 AND status = 'success'", due))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM candidates WHERE id = $1 AND last_contact_at IS NOT NULL", s.candidateID))

		select {
		case msg := <-sub.Channel():
			var ev commands.MessageEvent
			require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
			require.Equal(t, due, ev.ScheduledMessageID)
			require.Equal(t, "due now", ev.Content)
		case <-time.After(5 * time.Second):
			t.Fatal("realtime イベントが届かない")
		}

		// 二回目は何もしない
		code, res = s.dispatch(s.Config.Functions.CronSecret)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, commands.DispatchResult{}, res)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM candidate_messages"))
	})

	s.Run("シークレットなしは拒否される", func() {
		dbtest.CreateTestScheduledMessage(s.T(), s.DB, s.recruiterID, s.candidateID, "due now", time.Now().Add(-time.Minute))

		code, _ := s.dispatch("")
		require.Equal(s.T(), http.StatusUnauthorized, code)

		code, _ = s.dispatch("wrong-secret")
		require.Equal(s.T(), http.StatusUnauthorized, code)
		require.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM candidate_messages"))
	})
}
