//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"talentbridge/internal/domain/followup"
	"talentbridge/internal/pkg/clock"
	"talentbridge/internal/usecase/commands"
	"talentbridge/internal/usecase/shared"
	"talentbridge/tests/common/builder"
	"talentbridge/tests/common/memstore"
	sharedmock "talentbridge/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DispatcherTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *memstore.Store
	realtime *sharedmock.MockRealtimePublisher
	activity *sharedmock.MockActivityPublisher
	clock    *clock.MockClock
	sut      commands.Dispatcher

	recruiterID uuid.UUID
	now         time.Time
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = memstore.New()
	s.realtime = sharedmock.NewMockRealtimePublisher(s.ctrl)
	s.activity = sharedmock.NewMockActivityPublisher(s.ctrl)
	s.now = time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.recruiterID = uuid.New()
	s.sut = commands.NewDispatcher(s.store, s.realtime, s.activity, s.clock, commands.DispatcherSettings{
		BatchSize:   10,
		Lease:       5 * time.Minute,
		ItemTimeout: time.Second,
	}, slog.New(slog.DiscardHandler))
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

// addCandidate registers a candidate of the suite recruiter and returns a builder for its messages.
func (s *DispatcherTestSuite) addCandidate(userID *uuid.UUID) *builder.FollowUpBuilder {
	fb := builder.NewFollowUpBuilder().WithRecruiter(s.recruiterID)
	s.store.AddCandidate(shared.CandidateSnapshot{
		ID:            fb.CandidateID,
		RecruiterID:   s.recruiterID,
		UserID:        userID,
		FullName:      fb.CandidateName,
		PipelineStage: "applied",
	})
	return fb
}

func (s *DispatcherTestSuite) expectAnnounced(times int) {
	s.realtime.EXPECT().Publish(gomock.Any(), shared.TopicMessages, gomock.Any(), gomock.Any()).Return(nil).Times(times)
	s.activity.EXPECT().PublishActivity(gomock.Any(), gomock.Any()).Return(nil).Times(times)
}

func (s *DispatcherTestSuite) TestRunOnce() {
	s.Run("正常系: 期限到来分だけ送信し、未来の予定は残す", func() {
		s.SetupTest()
		candidateUser := uuid.New()
		due := s.addCandidate(&candidateUser).
			WithScheduledAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
			WithNextStage("screening")
		s.store.AddMessage(due.BuildWithStatus(followup.StatusPending))
		future := s.addCandidate(nil).WithScheduledAt(time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC))
		s.store.AddMessage(future.BuildWithStatus(followup.StatusPending))

		s.realtime.EXPECT().Publish(gomock.Any(), shared.TopicMessages, s.recruiterID, gomock.Any()).Return(nil)
		s.realtime.EXPECT().Publish(gomock.Any(), shared.TopicMessages, candidateUser, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.RealtimeTopic, _ uuid.UUID, payload any) error {
				ev := payload.(commands.MessageEvent)
				s.Equal(due.ID, ev.ScheduledMessageID)
				s.Equal(s.now, ev.SentAt)
				return nil
			})
		s.activity.EXPECT().PublishActivity(gomock.Any(), shared.ActivityEvent{
			Type:       shared.ActivityFollowUpSent,
			UserID:     s.recruiterID,
			SourceID:   due.ID,
			OccurredAt: s.now,
		}).Return(nil)

		res, err := s.sut.RunOnce(context.Background())

		s.Require().NoError(err)
		s.Equal(&commands.DispatchResult{Processed: 1, Successful: 1}, res)

		sent, _ := s.store.Message(due.ID)
		s.Equal(followup.StatusSent, sent.Status())
		s.Equal(s.now, *sent.SentAt())
		s.Equal(int32(1), sent.Attempts())

		pending, _ := s.store.Message(future.ID)
		s.Equal(followup.StatusPending, pending.Status())

		delivered := s.store.Delivered()
		s.Require().Len(delivered, 1)
		s.Equal(due.ID, delivered[0].ScheduledMessageID)

		s.Equal("screening", s.store.Candidate(due.CandidateID).PipelineStage)
		contacted, ok := s.store.LastContacted(due.CandidateID)
		s.True(ok)
		s.Equal(s.now, contacted)

		rec, _ := s.store.FollowUp(s.recruiterID, due.CandidateID)
		s.True(rec.FollowUpSent)
		s.Equal(s.now, *rec.LastContact)

		logs := s.store.Logs()
		s.Require().Len(logs, 1)
		s.Equal(shared.AutomationStatusSuccess, logs[0].Status)
		s.Equal(shared.AutomationActionFollowUpSent, logs[0].Action)
	})

	s.Run("正常系: 2回目の実行では何も送らない", func() {
		s.SetupTest()
		due := s.addCandidate(nil).WithScheduledAt(s.now.Add(-time.Minute))
		s.store.AddMessage(due.BuildWithStatus(followup.StatusPending))
		s.expectAnnounced(1)

		_, err := s.sut.RunOnce(context.Background())
		s.Require().NoError(err)

		res, err := s.sut.RunOnce(context.Background())

		s.Require().NoError(err)
		s.Equal(&commands.DispatchResult{}, res)
		s.Len(s.store.Delivered(), 1)
	})

	s.Run("異常系: 候補者が消えていれば failed にして他は続行する", func() {
		s.SetupTest()
		ok := s.addCandidate(nil).WithScheduledAt(s.now.Add(-2 * time.Minute))
		s.store.AddMessage(ok.BuildWithStatus(followup.StatusPending))
		orphan := builder.NewFollowUpBuilder().
			WithRecruiter(s.recruiterID).
			WithScheduledAt(s.now.Add(-time.Minute))
		s.store.AddMessage(orphan.BuildWithStatus(followup.StatusPending))
		s.expectAnnounced(1)

		res, err := s.sut.RunOnce(context.Background())

		s.Require().NoError(err)
		s.Equal(&commands.DispatchResult{Processed: 2, Successful: 1, Failed: 1}, res)

		failed, _ := s.store.Message(orphan.ID)
		s.Equal(followup.StatusFailed, failed.Status())
		s.Require().NotNil(failed.ErrorMessage())
		s.Contains(*failed.ErrorMessage(), "candidate not found")

		var failures []shared.AutomationLogEntry
		for _, l := range s.store.Logs() {
			if l.Status == shared.AutomationStatusFailure {
				failures = append(failures, l)
			}
		}
		s.Require().Len(failures, 1)
		s.Equal(orphan.ID, *failures[0].ScheduledMessageID)
		s.NotNil(failures[0].ErrorMessage)
	})

	s.Run("異常系: 配信の書き込み失敗はロールバックされ failed が残る", func() {
		s.SetupTest()
		due := s.addCandidate(nil).WithScheduledAt(s.now.Add(-time.Minute))
		s.store.AddMessage(due.BuildWithStatus(followup.StatusPending))
		s.store.FailOn("Messages.Insert", errors.New("insert failed"))

		res, err := s.sut.RunOnce(context.Background())

		s.Require().NoError(err)
		s.Equal(1, res.Failed)
		s.Empty(s.store.Delivered())
		_, touched := s.store.LastContacted(due.CandidateID)
		s.False(touched)
		msg, _ := s.store.Message(due.ID)
		s.Equal(followup.StatusFailed, msg.Status())
	})

	s.Run("正常系: リースの切れた processing は再取得する", func() {
		s.SetupTest()
		stale := s.addCandidate(nil).With(func(b *builder.FollowUpBuilder) {
			b.ScheduledAt = s.now.Add(-time.Hour)
			b.Now = s.now.Add(-6 * time.Minute)
		})
		s.store.AddMessage(stale.BuildWithStatus(followup.StatusProcessing))
		fresh := s.addCandidate(nil).With(func(b *builder.FollowUpBuilder) {
			b.ScheduledAt = s.now.Add(-time.Hour)
			b.Now = s.now.Add(-time.Minute)
		})
		s.store.AddMessage(fresh.BuildWithStatus(followup.StatusProcessing))
		s.expectAnnounced(1)

		res, err := s.sut.RunOnce(context.Background())

		s.Require().NoError(err)
		s.Equal(1, res.Successful)
		reclaimed, _ := s.store.Message(stale.ID)
		s.Equal(followup.StatusSent, reclaimed.Status())
		s.Equal(int32(2), reclaimed.Attempts())
		inFlight, _ := s.store.Message(fresh.ID)
		s.Equal(followup.StatusProcessing, inFlight.Status())
	})

	s.Run("正常系: 取り消し済みは送らない", func() {
		s.SetupTest()
		canceled := s.addCandidate(nil).WithScheduledAt(s.now.Add(-time.Minute))
		s.store.AddMessage(canceled.BuildWithStatus(followup.StatusCanceled))

		res, err := s.sut.RunOnce(context.Background())

		s.Require().NoError(err)
		s.Zero(res.Processed)
	})

	s.Run("正常系: 配信後の通知失敗は結果に影響しない", func() {
		s.SetupTest()
		due := s.addCandidate(nil).WithScheduledAt(s.now.Add(-time.Minute))
		s.store.AddMessage(due.BuildWithStatus(followup.StatusPending))
		s.realtime.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		s.activity.EXPECT().PublishActivity(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

		res, err := s.sut.RunOnce(context.Background())

		s.Require().NoError(err)
		s.Equal(1, res.Successful)
	})

	s.Run("異常系: 取得に失敗したらエラーを返す", func() {
		s.SetupTest()
		s.store.FailOn("ScheduledMessages.ClaimDue", errors.New("db down"))

		res, err := s.sut.RunOnce(context.Background())

		s.Error(err)
		s.Nil(res)
	})

	s.Run("正常系: バッチサイズを超える分は次回に回す", func() {
		s.SetupTest()
		s.sut = commands.NewDispatcher(s.store, s.realtime, s.activity, s.clock, commands.DispatcherSettings{BatchSize: 2}, slog.New(slog.DiscardHandler))
		for i := 0; i < 3; i++ {
			fb := s.addCandidate(nil).WithScheduledAt(s.now.Add(-time.Duration(i+1) * time.Minute))
			s.store.AddMessage(fb.BuildWithStatus(followup.StatusPending))
		}
		s.expectAnnounced(3)

		first, err := s.sut.RunOnce(context.Background())
		s.Require().NoError(err)
		second, err := s.sut.RunOnce(context.Background())
		s.Require().NoError(err)

		s.Equal(2, first.Processed)
		s.Equal(1, second.Processed)
	})
}
