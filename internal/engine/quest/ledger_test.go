package quest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/engine/quest"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
	"github.com/hearthfire/story-api/internal/pkg/clock"
)

var testTime = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type LedgerTestSuite struct {
	suite.Suite
	ledger *quest.Ledger
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	ledger, err := quest.New(&quest.Config{
		Content: content.Default(),
		Clock:   &clock.Fixed{T: testTime},
	})
	s.Require().NoError(err)
	s.ledger = ledger
}

func (s *LedgerTestSuite) TestAccept() {
	progress, err := s.ledger.Accept(nil, content.QuestMain, "Investigate the woods")
	s.Require().NoError(err)

	entry := progress[content.QuestMain]
	s.Assert().Equal(entities.QuestStatusAccepted, entry.Status)
	s.Assert().Equal("Investigate the woods", entry.CurrentObjective)
	s.Assert().Equal(testTime.Unix(), entry.UpdatedAt)
}

func (s *LedgerTestSuite) TestAcceptIsIdempotent() {
	progress, err := s.ledger.Accept(nil, content.QuestMain, "first")
	s.Require().NoError(err)

	again, err := s.ledger.Accept(progress, content.QuestMain, "second")
	s.Require().NoError(err)
	s.Assert().Equal("first", again[content.QuestMain].CurrentObjective)
}

func (s *LedgerTestSuite) TestAcceptUnknownQuest() {
	_, err := s.ledger.Accept(nil, "no_such_quest", "objective")
	s.Require().Error(err)
	s.Assert().True(errors.IsContentDefect(err))
}

func (s *LedgerTestSuite) TestAdvanceObjectiveCompletesQuest() {
	progress, err := s.ledger.Accept(nil, content.QuestCollectHerbs, "Gather an herb")
	s.Require().NoError(err)

	progress, completed, err := s.ledger.AdvanceObjective(progress, content.QuestCollectHerbs, "collect_herbs", 1)
	s.Require().NoError(err)
	s.Assert().True(completed)
	s.Assert().Equal(entities.QuestStatusCompleted, progress[content.QuestCollectHerbs].Status)

	// a second advance on a completed quest is a no-op
	after, completed, err := s.ledger.AdvanceObjective(progress, content.QuestCollectHerbs, "collect_herbs", 5)
	s.Require().NoError(err)
	s.Assert().False(completed)
	s.Assert().Equal(progress[content.QuestCollectHerbs], after[content.QuestCollectHerbs])
}

func (s *LedgerTestSuite) TestAdvanceObjectiveBelowRequired() {
	progress, err := s.ledger.Accept(nil, content.QuestMain, "Investigate")
	s.Require().NoError(err)

	progress, completed, err := s.ledger.AdvanceObjective(progress, content.QuestMain, "investigate_woods", 0)
	s.Require().NoError(err)
	s.Assert().False(completed)
	s.Assert().Equal(entities.QuestStatusAccepted, progress[content.QuestMain].Status)
}

func (s *LedgerTestSuite) TestAdvanceObjectiveIsAbsoluteSet() {
	c := content.Default()
	c.Quests["gather_supplies"] = &entities.QuestDefinition{
		ID:   "gather_supplies",
		Name: "Gather Supplies",
		Objectives: []entities.QuestObjective{
			{ID: "firewood", Description: "Collect firewood", Required: 3},
			{ID: "water", Description: "Fetch water", Required: 1},
		},
	}
	ledger, err := quest.New(&quest.Config{Content: c, Clock: &clock.Fixed{T: testTime}})
	s.Require().NoError(err)

	progress, err := ledger.Accept(nil, "gather_supplies", "Collect firewood")
	s.Require().NoError(err)

	progress, completed, err := ledger.AdvanceObjective(progress, "gather_supplies", "firewood", 2)
	s.Require().NoError(err)
	s.Assert().False(completed)

	// a lower snapshot than previously stored regresses displayed progress
	progress, completed, err = ledger.AdvanceObjective(progress, "gather_supplies", "firewood", 1)
	s.Require().NoError(err)
	s.Assert().False(completed)
	s.Assert().Equal(1, progress["gather_supplies"].ObjectiveCounts["firewood"])

	// completion requires every objective at its required count
	progress, completed, err = ledger.AdvanceObjective(progress, "gather_supplies", "firewood", 3)
	s.Require().NoError(err)
	s.Assert().False(completed)

	progress, completed, err = ledger.AdvanceObjective(progress, "gather_supplies", "water", 1)
	s.Require().NoError(err)
	s.Assert().True(completed)
	s.Assert().Equal(entities.QuestStatusCompleted, progress["gather_supplies"].Status)
}

func (s *LedgerTestSuite) TestAdvanceObjectiveUnstartedQuest() {
	_, _, err := s.ledger.AdvanceObjective(nil, content.QuestMain, "investigate_woods", 1)
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *LedgerTestSuite) TestAdvanceObjectiveToleratesOverflow() {
	progress, err := s.ledger.Accept(nil, content.QuestCollectHerbs, "Gather an herb")
	s.Require().NoError(err)

	progress, completed, err := s.ledger.AdvanceObjective(progress, content.QuestCollectHerbs, "collect_herbs", 7)
	s.Require().NoError(err)
	s.Assert().True(completed)
	s.Assert().Equal(7, progress[content.QuestCollectHerbs].ObjectiveCounts["collect_herbs"])
}

func (s *LedgerTestSuite) TestApplyDispatchesOnStatus() {
	progress, err := s.ledger.Apply(nil, &entities.QuestUpdate{
		QuestID:   content.QuestMain,
		Status:    entities.QuestStatusAccepted,
		Objective: "Investigate",
	})
	s.Require().NoError(err)
	s.Assert().Equal(entities.QuestStatusAccepted, progress[content.QuestMain].Status)

	progress, err = s.ledger.Apply(progress, &entities.QuestUpdate{
		QuestID: content.QuestMain,
		Status:  entities.QuestStatusCompleted,
	})
	s.Require().NoError(err)
	s.Assert().Equal(entities.QuestStatusCompleted, progress[content.QuestMain].Status)
}

func (s *LedgerTestSuite) TestSnapshotIsNotMutated() {
	original := map[string]entities.QuestProgress{
		content.QuestMain: {
			Status:          entities.QuestStatusAccepted,
			ObjectiveCounts: map[string]int{"investigate_woods": 0},
		},
	}

	_, _, err := s.ledger.AdvanceObjective(original, content.QuestMain, "investigate_woods", 1)
	s.Require().NoError(err)
	s.Assert().Equal(0, original[content.QuestMain].ObjectiveCounts["investigate_woods"])
	s.Assert().Equal(entities.QuestStatusAccepted, original[content.QuestMain].Status)
}

func (s *LedgerTestSuite) TestSummarize() {
	player := &entities.Player{
		QuestProgress: map[string]entities.QuestProgress{
			content.QuestMain: {
				Status:          entities.QuestStatusAccepted,
				ObjectiveCounts: map[string]int{"investigate_woods": 0},
			},
		},
	}

	summary := s.ledger.Summarize(player)
	s.Require().Len(summary.Active, 1)
	s.Require().Len(summary.Available, 1)
	s.Assert().Empty(summary.Completed)

	s.Assert().Equal("Whispers Beneath Whiterun", summary.Active[0].Name)
	s.Require().Len(summary.Active[0].Objectives, 1)
	s.Assert().Equal("0/1", summary.Active[0].Objectives[0].Progress)
	s.Assert().Equal("Collect Herbs", summary.Available[0].Name)
	s.Assert().Equal("Lillith the Innkeeper", summary.Available[0].Giver)
}

func (s *LedgerTestSuite) TestSummarizeCompleted() {
	player := &entities.Player{
		QuestProgress: map[string]entities.QuestProgress{
			content.QuestCollectHerbs: {
				Status:          entities.QuestStatusCompleted,
				ObjectiveCounts: map[string]int{"collect_herbs": 1},
			},
		},
	}

	summary := s.ledger.Summarize(player)
	s.Require().Len(summary.Completed, 1)
	s.Assert().Equal("Collect Herbs", summary.Completed[0].Name)
	s.Assert().Equal(int32(10), summary.Completed[0].Rewards.Gold)
}
