package narrative_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
	"github.com/hearthfire/story-api/internal/pkg/clock"
	playerrepo "github.com/hearthfire/story-api/internal/repositories/player"
	playermock "github.com/hearthfire/story-api/internal/repositories/player/mock"
	narrativesvc "github.com/hearthfire/story-api/internal/services/narrative"
)

type HardeningTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	content *content.Content
	ctx     context.Context
}

func (s *HardeningTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.content = content.Default()
	s.ctx = context.Background()
}

func (s *HardeningTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HardeningTestSuite) snapshot() *entities.Player {
	return &entities.Player{
		ID:              testPlayerID,
		Name:            "Aela",
		CurrentLocation: content.LocationSquare,
		CurrentHealth:   10,
		MaxHealth:       10,
	}
}

func (s *HardeningTestSuite) TestPatchWriteRetriesOnce() {
	mockRepo := playermock.NewMockRepository(s.ctrl)
	svc := newTestService(s.T(), mockRepo, s.content)

	moved := s.snapshot()
	moved.CurrentLocation = content.LocationTavern

	mockRepo.EXPECT().
		Get(gomock.Any(), playerrepo.GetInput{ID: testPlayerID}).
		Return(&playerrepo.GetOutput{Player: s.snapshot()}, nil)
	gomock.InOrder(
		mockRepo.EXPECT().
			ApplyPatch(gomock.Any(), gomock.Any()).
			Return(nil, errors.Unavailable("connection refused")),
		mockRepo.EXPECT().
			ApplyPatch(gomock.Any(), gomock.Any()).
			Return(&playerrepo.ApplyPatchOutput{Player: moved}, nil),
	)

	output, err := svc.Route(s.ctx, &narrativesvc.RouteInput{
		PlayerID: testPlayerID,
		Token:    "enter_village_tavern",
	})
	s.Require().NoError(err)
	s.Equal(narrativesvc.ResultMoved, output.Result.Kind)
	s.Equal(content.LocationTavern, output.Player.CurrentLocation)
}

func (s *HardeningTestSuite) TestPersistentStorageFailureDegrades() {
	mockRepo := playermock.NewMockRepository(s.ctrl)
	svc := newTestService(s.T(), mockRepo, s.content)

	mockRepo.EXPECT().
		Get(gomock.Any(), playerrepo.GetInput{ID: testPlayerID}).
		Return(&playerrepo.GetOutput{Player: s.snapshot()}, nil)
	mockRepo.EXPECT().
		ApplyPatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("connection refused")).
		Times(2)

	output, err := svc.Route(s.ctx, &narrativesvc.RouteInput{
		PlayerID: testPlayerID,
		Token:    "enter_village_tavern",
	})
	s.Require().NoError(err)
	s.Equal(narrativesvc.ResultNarration, output.Result.Kind)
	s.Contains(output.Result.Narrative, "try again")
	// The snapshot still reflects the pre-action state
	s.Equal(content.LocationSquare, output.Player.CurrentLocation)
}

// slowRepository widens the window between snapshot load and patch write,
// the interleaving that loses an update without per-player serialization.
type slowRepository struct {
	playerrepo.Repository
	delay time.Duration
}

func (r *slowRepository) Get(ctx context.Context, input playerrepo.GetInput) (*playerrepo.GetOutput, error) {
	output, err := r.Repository.Get(ctx, input)
	time.Sleep(r.delay)
	return output, err
}

func (s *HardeningTestSuite) TestConcurrentActionsDoNotLoseUpdates() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	defer mr.Close()

	repo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{
		Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
		Clock:  &clock.Fixed{T: time.Unix(1700000000, 0)},
	})
	s.Require().NoError(err)

	_, err = repo.Create(s.ctx, playerrepo.CreateInput{Player: s.snapshot()})
	s.Require().NoError(err)

	svc := newTestService(s.T(), &slowRepository{Repository: repo, delay: 50 * time.Millisecond}, s.content)

	// A double-click: quest accept and movement land at the same time
	var wg sync.WaitGroup
	for _, token := range []string{"choice_elder_accept_main_quest", "enter_village_tavern"} {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			_, routeErr := svc.Route(s.ctx, &narrativesvc.RouteInput{
				PlayerID: testPlayerID,
				Token:    token,
			})
			s.NoError(routeErr)
		}(token)
	}
	wg.Wait()

	// Both independent patches must survive
	stored, err := repo.Get(s.ctx, playerrepo.GetInput{ID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(content.LocationTavern, stored.Player.CurrentLocation)
	progress, started := stored.Player.QuestProgressFor(content.QuestMain)
	s.Require().True(started)
	s.Equal(entities.QuestStatusAccepted, progress.Status)
}

func TestHardeningSuite(t *testing.T) {
	suite.Run(t, new(HardeningTestSuite))
}
