package content_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
)

type ContentTestSuite struct {
	suite.Suite
}

func TestContentSuite(t *testing.T) {
	suite.Run(t, new(ContentTestSuite))
}

func (s *ContentTestSuite) TestDefaultContentIsValid() {
	s.Assert().NoError(content.Default().Validate())
}

func (s *ContentTestSuite) TestTravelToUnknownLocation() {
	c := content.Default()
	c.Locations["home"].AvailableActions = append(
		c.Locations["home"].AvailableActions, "enter_dragonsreach")

	err := c.Validate()
	s.Require().Error(err)
	s.Assert().True(errors.IsContentDefect(err))
	s.Assert().Contains(err.Error(), "dragonsreach")
}

func (s *ContentTestSuite) TestDialogueWithoutFallback() {
	c := content.Default()
	c.Dialogues["talk_to_bard"].Conversations = []entities.Conversation{
		{
			Condition: &entities.Condition{
				Kind:    entities.ConditionQuestMissing,
				QuestID: content.QuestMain,
			},
			Text: "conditional only",
		},
	}

	err := c.Validate()
	s.Require().Error(err)
	s.Assert().True(errors.IsContentDefect(err))
	s.Assert().Contains(err.Error(), "fallback")
}

func (s *ContentTestSuite) TestDuplicateChoiceAction() {
	c := content.Default()
	conv := &c.Dialogues["talk_to_bard"].Conversations[0]
	conv.Choices = append(conv.Choices, entities.Choice{
		Label:  "again",
		Action: "request_song",
	})

	err := c.Validate()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "duplicate choice action")
}

func (s *ContentTestSuite) TestUnknownQuestReference() {
	c := content.Default()
	conv := &c.Dialogues["talk_to_bard"].Conversations[0]
	conv.Choices[0].QuestUpdate = &entities.QuestUpdate{
		QuestID: "quest_that_does_not_exist",
		Status:  entities.QuestStatusAccepted,
	}

	err := c.Validate()
	s.Require().Error(err)
	s.Assert().True(errors.IsContentDefect(err))
}

func (s *ContentTestSuite) TestBrokenConversationChain() {
	c := content.Default()
	conv := &c.Dialogues["talk_to_bard"].Conversations[0]
	conv.Choices[0].NextConversationID = "missing_conversation"

	err := c.Validate()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "missing_conversation")
}

func (s *ContentTestSuite) TestDuplicateRumor() {
	c := content.Default()
	c.Rumors = append(c.Rumors, c.Rumors[0])

	err := c.Validate()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "duplicate rumor")
}
