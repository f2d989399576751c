package rumor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/engine/rumor"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
)

type PoolTestSuite struct {
	suite.Suite
	pool *rumor.Pool
}

func TestPoolSuite(t *testing.T) {
	suite.Run(t, new(PoolTestSuite))
}

func (s *PoolTestSuite) SetupTest() {
	pool, err := rumor.New(&rumor.Config{
		Content: content.Default(),
		Rand:    rand.New(rand.NewSource(42)), // #nosec G404
	})
	s.Require().NoError(err)
	s.pool = pool
}

func (s *PoolTestSuite) TestNextNeverRepeats() {
	poolSize := len(content.Default().Rumors)
	journal := entities.Journal{}

	for i := 0; i < poolSize; i++ {
		next, err := s.pool.Next(journal)
		s.Require().NoError(err)
		s.Assert().NotContains(journal.Rumors, next)
		journal.Rumors = append(journal.Rumors, next)
	}

	s.Assert().Len(journal.Rumors, poolSize)
}

func (s *PoolTestSuite) TestNextExhausted() {
	journal := entities.Journal{Rumors: content.Default().Rumors}

	_, err := s.pool.Next(journal)
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))
}

func (s *PoolTestSuite) TestNextDoesNotMutateJournal() {
	journal := entities.Journal{}

	_, err := s.pool.Next(journal)
	s.Require().NoError(err)
	s.Assert().Empty(journal.Rumors)
}

func (s *PoolTestSuite) TestNextOnlyDrawsFromPool() {
	poolRumors := content.Default().Rumors
	journal := entities.Journal{}

	for i := 0; i < 10; i++ {
		next, err := s.pool.Next(journal)
		if errors.IsResourceExhausted(err) {
			break
		}
		s.Require().NoError(err)
		s.Assert().Contains(poolRumors, next)
		journal.Rumors = append(journal.Rumors, next)
	}
}
