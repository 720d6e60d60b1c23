package experience_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	enginemock "github.com/KirkDiggler/rpg-progression/internal/engine/mock"
	apperrors "github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/experience"
	mockclock "github.com/KirkDiggler/rpg-progression/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/gameevents"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/leveltitle"
	profilerepo "github.com/KirkDiggler/rpg-progression/internal/repositories/profile"
	profilemock "github.com/KirkDiggler/rpg-progression/internal/repositories/profile/mock"
	experiencesvc "github.com/KirkDiggler/rpg-progression/internal/services/experience"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/mocks"
)

type SaveFailureTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *profilemock.MockRepository
	mockEngine   *enginemock.MockEngine
	mockClock    *mockclock.MockClock
	ctx          context.Context
	levelUps     []events.Event
	orchestrator *experience.Orchestrator
}

func (s *SaveFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = profilemock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.mockClock.EXPECT().Now().Return(testutils.TestNow).AnyTimes()

	titles, err := leveltitle.NewFile(&leveltitle.Config{Path: filepath.Join(s.T().TempDir(), "titles.json")})
	s.Require().NoError(err)
	s.Require().NoError(titles.Load(s.ctx))

	bus := events.NewBus()
	s.levelUps = nil
	bus.SubscribeFunc(gameevents.ExperienceLevelUp, 0, func(_ context.Context, e events.Event) error {
		s.levelUps = append(s.levelUps, e)
		return nil
	})

	s.orchestrator, err = experience.New(&experience.Config{
		ProfileRepo: s.mockRepo,
		TitleRepo:   titles,
		Engine:      s.mockEngine,
		Clock:       s.mockClock,
		EventBus:    bus,
	})
	s.Require().NoError(err)
}

func (s *SaveFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SaveFailureTestSuite) TestAddMessageXPUpdateFailure() {
	stored := testutils.CreateTestProfile(testutils.TestUserID, 95)
	stored.LastMessageAt = testutils.TestNow.Add(-time.Hour)
	s.mockRepo.EXPECT().
		Get(s.ctx, profilerepo.GetInput{ID: testutils.TestUserID}).
		Return(&profilerepo.GetOutput{Profile: stored.Clone()}, nil)
	mocks.ExpectMessageXP(s.ctx, s.mockEngine, 10)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, apperrors.Internal("disk full"))

	out, err := s.orchestrator.AddMessageXP(s.ctx, &experiencesvc.AddMessageXPInput{
		Identity:      testutils.TestIdentity(),
		MessageLength: 12,
	})

	s.True(apperrors.IsInternal(err))
	s.Nil(out)
	s.Empty(s.levelUps)
	s.Equal(int64(95), stored.XP)
}

func (s *SaveFailureTestSuite) TestAddMessageXPCreateFailure() {
	s.mockRepo.EXPECT().
		Get(s.ctx, profilerepo.GetInput{ID: testutils.TestUserID}).
		Return(nil, apperrors.NotFound("profile not found"))
	mocks.ExpectMessageXP(s.ctx, s.mockEngine, 150)
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input profilerepo.CreateInput) (*profilerepo.CreateOutput, error) {
			s.Equal(int64(150), input.Profile.XP)
			return nil, apperrors.Internal("disk full")
		})

	out, err := s.orchestrator.AddMessageXP(s.ctx, &experiencesvc.AddMessageXPInput{
		Identity:      testutils.TestIdentity(),
		MessageLength: 12,
	})

	s.True(apperrors.IsInternal(err))
	s.Nil(out)
	s.Empty(s.levelUps)
}

func (s *SaveFailureTestSuite) TestAwardVoiceTimeUpdateFailure() {
	stored := testutils.CreateTestProfile(testutils.TestUserID, 0)
	s.mockRepo.EXPECT().
		Get(s.ctx, profilerepo.GetInput{ID: testutils.TestUserID}).
		Return(&profilerepo.GetOutput{Profile: stored.Clone()}, nil)
	mocks.ExpectVoiceXP(s.ctx, s.mockEngine, 600, 40)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, apperrors.Internal("disk full"))

	_, err := s.orchestrator.AwardVoiceTime(s.ctx, &experiencesvc.AwardVoiceTimeInput{
		Identity: testutils.TestIdentity(),
		Seconds:  600,
	})

	s.True(apperrors.IsInternal(err))
	s.Zero(stored.VoiceTimeSeconds)
}

func TestSaveFailureTestSuite(t *testing.T) {
	suite.Run(t, new(SaveFailureTestSuite))
}
