package action_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hearthfire/story-api/internal/engine/action"
)

type ParseTestSuite struct {
	suite.Suite
}

func TestParseSuite(t *testing.T) {
	suite.Run(t, new(ParseTestSuite))
}

func (s *ParseTestSuite) TestParse() {
	testCases := []struct {
		name     string
		token    string
		expected action.Action
	}{
		{
			name:     "rest",
			token:    "rest",
			expected: action.Action{Kind: action.KindRest, Token: "rest"},
		},
		{
			name:     "talk",
			token:    "talk_to_elder",
			expected: action.Action{Kind: action.KindTalk, Token: "talk_to_elder", NPC: "elder"},
		},
		{
			name:     "listen",
			token:    "listen_to_rumors",
			expected: action.Action{Kind: action.KindListen, Token: "listen_to_rumors", Key: "rumors"},
		},
		{
			name:     "enter movement",
			token:    "enter_village_square",
			expected: action.Action{Kind: action.KindMove, Token: "enter_village_square", Destination: "village_square"},
		},
		{
			name:     "visit movement",
			token:    "visit_forest_path",
			expected: action.Action{Kind: action.KindMove, Token: "visit_forest_path", Destination: "forest_path"},
		},
		{
			name:     "return movement",
			token:    "return_home",
			expected: action.Action{Kind: action.KindMove, Token: "return_home", Destination: "home"},
		},
		{
			name:  "choice with multi segment action",
			token: "choice_elder_accept_main_quest",
			expected: action.Action{
				Kind:   action.KindChoice,
				Token:  "choice_elder_accept_main_quest",
				NPC:    "elder",
				Choice: "accept_main_quest",
			},
		},
		{
			name:     "go menu movement",
			token:    "go_enter_village_tavern",
			expected: action.Action{Kind: action.KindMove, Token: "enter_village_tavern", Destination: "village_tavern"},
		},
		{
			name:     "examine fallback",
			token:    "look_in_mirror",
			expected: action.Action{Kind: action.KindExamine, Token: "look_in_mirror", Key: "look_in_mirror"},
		},
		{
			name:     "malformed choice falls back to examine",
			token:    "choice_elder",
			expected: action.Action{Kind: action.KindExamine, Token: "choice_elder", Key: "choice_elder"},
		},
		{
			name:     "go without movement verb falls back to examine",
			token:    "go_nowhere",
			expected: action.Action{Kind: action.KindExamine, Token: "go_nowhere", Key: "go_nowhere"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, action.Parse(tc.token))
		})
	}
}

func (s *ParseTestSuite) TestMovementVerbsAreEquivalent() {
	for _, token := range []string{"enter_home", "visit_home", "return_home"} {
		s.Assert().True(action.IsMovement(token))

		destination, ok := action.Destination(token)
		s.Assert().True(ok)
		s.Assert().Equal("home", destination)
	}

	s.Assert().False(action.IsMovement("talk_to_elder"))
	_, ok := action.Destination("rest")
	s.Assert().False(ok)
}
