package experience_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-progression/internal/engine/mock"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	apperrors "github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/experience"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/gameevents"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	mockclock "github.com/KirkDiggler/rpg-progression/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/leveltitle"
	profilerepo "github.com/KirkDiggler/rpg-progression/internal/repositories/profile"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/store"
	experiencesvc "github.com/KirkDiggler/rpg-progression/internal/services/experience"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockEngine *enginemock.MockEngine
	mockClock  *mockclock.MockClock
	ctx        context.Context
	now        time.Time

	profiles     profilerepo.Repository
	bus          events.EventBus
	levelUps     []events.Event
	orchestrator *experience.Orchestrator
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = testutils.TestNow
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	st, err := store.New(&store.Config[*entities.Profile]{
		Backend: store.NewMemoryBackend(),
		New:     func() *entities.Profile { return &entities.Profile{} },
	})
	s.Require().NoError(err)
	s.profiles, err = profilerepo.NewStore(&profilerepo.Config{Store: st})
	s.Require().NoError(err)

	titles, err := leveltitle.NewFile(&leveltitle.Config{Path: filepath.Join(s.T().TempDir(), "titles.json")})
	s.Require().NoError(err)
	s.Require().NoError(titles.Load(s.ctx))

	s.levelUps = nil
	s.bus = events.NewBus()
	s.bus.SubscribeFunc(gameevents.ExperienceLevelUp, 0, func(_ context.Context, e events.Event) error {
		s.levelUps = append(s.levelUps, e)
		return nil
	})

	s.orchestrator, err = experience.New(&experience.Config{
		ProfileRepo: s.profiles,
		TitleRepo:   titles,
		Engine:      s.mockEngine,
		Clock:       s.mockClock,
		IDGenerator: idgen.NewSequential("voice"),
		EventBus:    s.bus,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectMessageXP(xp int64) {
	mocks.ExpectMessageXP(s.ctx, s.mockEngine, xp)
}

func (s *OrchestratorTestSuite) expectVoiceXP(seconds, xp int64) {
	mocks.ExpectVoiceXP(s.ctx, s.mockEngine, seconds, xp)
}

func (s *OrchestratorTestSuite) message(length int) *experiencesvc.AddMessageXPOutput {
	out, err := s.orchestrator.AddMessageXP(s.ctx, &experiencesvc.AddMessageXPInput{
		Identity:      testutils.TestIdentity(),
		MessageLength: length,
	})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := experience.New(&experience.Config{})
	s.Error(err)
	s.True(apperrors.IsInvalidArgument(err))

	_, err = experience.New(nil)
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestAddMessageXPCreatesProfile() {
	mocks.ExpectMessageXPFor(s.ctx, s.mockEngine, &engine.CalculateMessageXPInput{
		MessageLength:      40,
		FirstActivityToday: true,
	}, 18)

	out := s.message(40)

	s.Equal(int64(18), out.XPGained)
	s.Equal(1, out.PreviousLevel)
	s.False(out.LeveledUp)
	s.Equal(testutils.TestUserID, out.Profile.ID)
	s.Equal(testutils.TestDisplayName, out.Profile.DisplayName)
	s.Equal(int64(1), out.Profile.MessageCount)
	s.Equal(1, out.Profile.StreakDays)
	s.Equal(s.now, out.Profile.LastMessageAt)

	stored, err := s.profiles.Get(s.ctx, profilerepo.GetInput{ID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(int64(18), stored.Profile.XP)
	s.Empty(s.levelUps)
}

func (s *OrchestratorTestSuite) TestAddMessageXPReadsPreviousMessage() {
	s.expectMessageXP(10)
	s.message(5)

	s.now = s.now.Add(10 * time.Second)
	mocks.ExpectMessageXPFor(s.ctx, s.mockEngine, &engine.CalculateMessageXPInput{
		MessageLength:      5,
		StreakDays:         1,
		SinceLastMessage:   10 * time.Second,
		HasPreviousMessage: true,
	}, 3)

	out := s.message(5)

	s.Equal(int64(13), out.Profile.XP)
	s.Equal(int64(2), out.Profile.MessageCount)
}

func (s *OrchestratorTestSuite) TestAddMessageXPStreak() {
	mocks.ExpectMessageXP(s.ctx, s.mockEngine, 10).Times(4)

	s.message(1)
	s.now = s.now.Add(24 * time.Hour)
	s.Equal(2, s.message(1).Profile.StreakDays)
	s.now = s.now.Add(2 * time.Hour)
	s.Equal(2, s.message(1).Profile.StreakDays)
	s.now = s.now.Add(72 * time.Hour)
	s.Equal(1, s.message(1).Profile.StreakDays)
}

func (s *OrchestratorTestSuite) TestAddMessageXPLevelUpPublishes() {
	s.expectMessageXP(400)

	out := s.message(10)

	s.True(out.LeveledUp)
	s.Equal(1, out.PreviousLevel)
	s.Equal(3, out.Profile.Level)
	s.Require().Len(s.levelUps, 1)
	s.Equal(testutils.TestUserID, s.levelUps[0].Source().GetID())
	level, ok := s.levelUps[0].Context().Get(gameevents.KeyNewLevel)
	s.True(ok)
	s.Equal(3, level)
}

func (s *OrchestratorTestSuite) TestAddMessageXPValidation() {
	_, err := s.orchestrator.AddMessageXP(s.ctx, &experiencesvc.AddMessageXPInput{
		Identity: entities.Identity{ID: "not-a-snowflake"},
	})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.orchestrator.AddMessageXP(s.ctx, nil)
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.orchestrator.AddMessageXP(s.ctx, &experiencesvc.AddMessageXPInput{
		Identity:      testutils.TestIdentity(),
		MessageLength: -1,
	})
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddMessageXPEngineErrorPersistsNothing() {
	mocks.ExpectMessageXPError(s.ctx, s.mockEngine, apperrors.Internal("roller failed"))

	_, err := s.orchestrator.AddMessageXP(s.ctx, &experiencesvc.AddMessageXPInput{
		Identity: testutils.TestIdentity(),
	})
	s.Error(err)

	_, err = s.profiles.Get(s.ctx, profilerepo.GetInput{ID: testutils.TestUserID})
	s.True(apperrors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAwardVoiceTime() {
	s.expectVoiceXP(600, 21)

	out, err := s.orchestrator.AwardVoiceTime(s.ctx, &experiencesvc.AwardVoiceTimeInput{
		Identity: testutils.TestIdentity(),
		Seconds:  600,
	})

	s.Require().NoError(err)
	s.False(out.Discarded)
	s.Equal(int64(21), out.XPGained)
	s.Equal(int64(600), out.Profile.VoiceTimeSeconds)
	s.Zero(out.Profile.MessageCount)
	s.Zero(out.Profile.StreakDays)
}

func (s *OrchestratorTestSuite) TestAwardVoiceTimeBelowMinimum() {
	out, err := s.orchestrator.AwardVoiceTime(s.ctx, &experiencesvc.AwardVoiceTimeInput{
		Identity: testutils.TestIdentity(),
		Seconds:  engine.VoiceMinSessionSeconds - 1,
	})

	s.Require().NoError(err)
	s.True(out.Discarded)
	s.Nil(out.Profile)

	_, err = s.profiles.Get(s.ctx, profilerepo.GetInput{ID: testutils.TestUserID})
	s.True(apperrors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestVoiceJoinTwiceKeepsSession() {
	first, err := s.orchestrator.TrackVoiceJoin(s.ctx, &experiencesvc.TrackVoiceJoinInput{Identity: testutils.TestIdentity()})
	s.Require().NoError(err)
	s.False(first.AlreadyTracking)

	s.now = s.now.Add(time.Minute)
	second, err := s.orchestrator.TrackVoiceJoin(s.ctx, &experiencesvc.TrackVoiceJoinInput{Identity: testutils.TestIdentity()})
	s.Require().NoError(err)
	s.True(second.AlreadyTracking)
	s.Equal(first.SessionID, second.SessionID)
	s.Equal(first.JoinedAt, second.JoinedAt)
}

func (s *OrchestratorTestSuite) TestVoiceLeaveAwardsSession() {
	_, err := s.orchestrator.TrackVoiceJoin(s.ctx, &experiencesvc.TrackVoiceJoinInput{Identity: testutils.TestIdentity()})
	s.Require().NoError(err)

	s.now = s.now.Add(10 * time.Minute)
	s.expectVoiceXP(600, 20)

	out, err := s.orchestrator.TrackVoiceLeave(s.ctx, &experiencesvc.TrackVoiceLeaveInput{UserID: testutils.TestUserID})

	s.Require().NoError(err)
	s.Equal("voice_1", out.SessionID)
	s.Equal(int64(600), out.Seconds)
	s.Equal(int64(20), out.Award.XPGained)

	_, err = s.orchestrator.TrackVoiceLeave(s.ctx, &experiencesvc.TrackVoiceLeaveInput{UserID: testutils.TestUserID})
	s.True(apperrors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestVoiceLeaveShortSessionDiscarded() {
	_, err := s.orchestrator.TrackVoiceJoin(s.ctx, &experiencesvc.TrackVoiceJoinInput{Identity: testutils.TestIdentity()})
	s.Require().NoError(err)

	s.now = s.now.Add(10 * time.Second)

	out, err := s.orchestrator.TrackVoiceLeave(s.ctx, &experiencesvc.TrackVoiceLeaveInput{UserID: testutils.TestUserID})

	s.Require().NoError(err)
	s.True(out.Award.Discarded)
}

func (s *OrchestratorTestSuite) TestFlushVoiceSessions() {
	_, err := s.orchestrator.TrackVoiceJoin(s.ctx, &experiencesvc.TrackVoiceJoinInput{Identity: testutils.TestIdentity()})
	s.Require().NoError(err)
	s.now = s.now.Add(20 * time.Second)
	_, err = s.orchestrator.TrackVoiceJoin(s.ctx, &experiencesvc.TrackVoiceJoinInput{
		Identity: testutils.IdentityFor(testutils.TestOtherUserID),
	})
	s.Require().NoError(err)
	s.now = s.now.Add(25 * time.Second)

	s.expectVoiceXP(45, 2)
	out, err := s.orchestrator.FlushVoiceSessions(s.ctx, &experiencesvc.FlushVoiceSessionsInput{})

	s.Require().NoError(err)
	s.Equal(2, out.Sessions)
	s.Equal(1, out.Awarded)
	s.Equal(int64(2), out.XPAwarded)
	s.Zero(out.Failed)

	// the skipped session keeps accruing; the flushed one restarts
	s.now = s.now.Add(20 * time.Second)
	s.expectVoiceXP(45, 2)
	out, err = s.orchestrator.FlushVoiceSessions(s.ctx, &experiencesvc.FlushVoiceSessionsInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Awarded)

	stored, err := s.profiles.Get(s.ctx, profilerepo.GetInput{ID: testutils.TestOtherUserID})
	s.Require().NoError(err)
	s.Equal(int64(45), stored.Profile.VoiceTimeSeconds)
}

func (s *OrchestratorTestSuite) TestFlushCountsFailures() {
	_, err := s.orchestrator.TrackVoiceJoin(s.ctx, &experiencesvc.TrackVoiceJoinInput{Identity: testutils.TestIdentity()})
	s.Require().NoError(err)
	s.now = s.now.Add(time.Minute)

	mocks.ExpectVoiceXPError(s.ctx, s.mockEngine, apperrors.Internal("boom"))

	out, err := s.orchestrator.FlushVoiceSessions(s.ctx, &experiencesvc.FlushVoiceSessionsInput{})

	s.Require().NoError(err)
	s.Equal(1, out.Failed)
	s.Zero(out.Awarded)
}

func (s *OrchestratorTestSuite) TestGetProfile() {
	s.Require().NoError(s.createProfile(testutils.TestOtherUserID, 5000))
	s.Require().NoError(s.createProfile(testutils.TestUserID, 1300))

	out, err := s.orchestrator.GetProfile(s.ctx, &experiencesvc.GetProfileInput{UserID: testutils.TestUserID})

	s.Require().NoError(err)
	s.Equal(2, out.Rank)
	s.Equal(4, out.Progress.Level)
	s.Equal(int64(900), out.Progress.LevelStartXP)
	s.Equal(int64(1600), out.Progress.NextLevelXP)
	s.Require().NotNil(out.Title)
	s.Equal("Newcomer", out.Title.Title)
}

func (s *OrchestratorTestSuite) TestGetProfileMissing() {
	_, err := s.orchestrator.GetProfile(s.ctx, &experiencesvc.GetProfileInput{UserID: testutils.TestUserID})
	s.True(apperrors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetTopProfilesAndRank() {
	s.Require().NoError(s.createProfile(testutils.TestUserID, 100))
	s.Require().NoError(s.createProfile(testutils.TestOtherUserID, 300))
	s.Require().NoError(s.createProfile(testutils.TestThirdUserID, 200))

	top, err := s.orchestrator.GetTopProfiles(s.ctx, &experiencesvc.GetTopProfilesInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(top.Profiles, 2)
	s.Equal(testutils.TestOtherUserID, top.Profiles[0].ID)
	s.Equal(testutils.TestThirdUserID, top.Profiles[1].ID)

	rank, err := s.orchestrator.GetRank(s.ctx, &experiencesvc.GetRankInput{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Equal(3, rank.Rank)
	s.Equal(3, rank.Total)
}

func (s *OrchestratorTestSuite) TestLevelTitles() {
	out, err := s.orchestrator.GetLevelTitle(s.ctx, &experiencesvc.GetLevelTitleInput{Level: 12})
	s.Require().NoError(err)
	s.Equal("Active Member", out.Title.Title)

	list, err := s.orchestrator.ListLevelTitles(s.ctx, &experiencesvc.ListLevelTitlesInput{})
	s.Require().NoError(err)
	s.Len(list.Titles, len(leveltitle.DefaultTitles()))

	_, err = s.orchestrator.GetLevelTitle(s.ctx, &experiencesvc.GetLevelTitleInput{Level: 0})
	s.True(apperrors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) createProfile(id string, xp int64) error {
	_, err := s.profiles.Create(s.ctx, profilerepo.CreateInput{Profile: testutils.CreateTestProfile(id, xp)})
	return err
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
