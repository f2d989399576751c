package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/engine/world"
	"github.com/hearthfire/story-api/internal/errors"
	playerorch "github.com/hearthfire/story-api/internal/orchestrators/player"
	"github.com/hearthfire/story-api/internal/pkg/clock"
	playerrepo "github.com/hearthfire/story-api/internal/repositories/player"
	playersvc "github.com/hearthfire/story-api/internal/services/player"
)

const testPlayerID = "player_123"

type OrchestratorTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	orch      playersvc.Service
	ctx       context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	repo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{
		Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
		Clock:  &clock.Fixed{T: time.Unix(1700000000, 0)},
	})
	s.Require().NoError(err)

	cnt := content.Default()
	graph, err := world.New(&world.Config{Content: cnt})
	s.Require().NoError(err)

	orch, err := playerorch.New(&playerorch.Config{
		PlayerRepo: repo,
		World:      graph,
		Content:    cnt,
	})
	s.Require().NoError(err)
	s.orch = orch

	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *OrchestratorTestSuite) register() *playersvc.RegisterOutput {
	output, err := s.orch.Register(s.ctx, &playersvc.RegisterInput{
		PlayerID: testPlayerID,
		Name:     "Aela",
	})
	s.Require().NoError(err)
	return output
}

func (s *OrchestratorTestSuite) TestRegister() {
	s.Run("creates a fresh player at home", func() {
		output := s.register()
		s.Equal("Aela", output.Player.Name)
		s.Empty(output.Player.Class)
		s.Equal(int32(1), output.Player.Level)
		s.Equal(content.LocationHome, output.Player.CurrentLocation)
		s.Equal(int32(10), output.Player.CurrentHealth)
		s.Equal(int32(10), output.Player.MaxHealth)
		s.Equal([]string{"barbarian", "bard", "paladin"}, output.Classes)
	})

	s.Run("registering twice fails", func() {
		_, err := s.orch.Register(s.ctx, &playersvc.RegisterInput{
			PlayerID: testPlayerID,
			Name:     "Aela",
		})
		s.Require().Error(err)
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("name is required", func() {
		_, err := s.orch.Register(s.ctx, &playersvc.RegisterInput{PlayerID: "player_456"})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestChooseClass() {
	s.Run("unregistered player", func() {
		_, err := s.orch.ChooseClass(s.ctx, &playersvc.ChooseClassInput{
			PlayerID: testPlayerID,
			Class:    "bard",
		})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("unknown class", func() {
		s.register()
		_, err := s.orch.ChooseClass(s.ctx, &playersvc.ChooseClassInput{
			PlayerID: testPlayerID,
			Class:    "necromancer",
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("assigns the class starting stats", func() {
		output, err := s.orch.ChooseClass(s.ctx, &playersvc.ChooseClassInput{
			PlayerID: testPlayerID,
			Class:    "barbarian",
		})
		s.Require().NoError(err)
		s.Equal("barbarian", output.Player.Class)
		s.Equal(int32(18), output.Player.Strength)
		s.Equal(int32(14), output.Player.Dexterity)
		s.Equal(int32(10), output.Player.Intelligence)
		s.Equal(int32(12), output.Player.Charisma)
	})

	s.Run("class cannot be changed", func() {
		_, err := s.orch.ChooseClass(s.ctx, &playersvc.ChooseClassInput{
			PlayerID: testPlayerID,
			Class:    "paladin",
		})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestStats() {
	s.Run("unregistered player", func() {
		_, err := s.orch.Stats(s.ctx, &playersvc.StatsInput{PlayerID: testPlayerID})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})

	s.Run("returns the character sheet", func() {
		s.register()
		output, err := s.orch.Stats(s.ctx, &playersvc.StatsInput{PlayerID: testPlayerID})
		s.Require().NoError(err)
		s.Equal("Aela", output.Player.Name)
	})
}

func (s *OrchestratorTestSuite) TestWhereAmI() {
	s.register()

	output, err := s.orch.WhereAmI(s.ctx, &playersvc.WhereAmIInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(content.LocationHome, output.Location.ID)
	s.Equal("Hearthfire", output.Location.Name)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
