// Package content holds the static story data the engine resolves against:
// the location graph, NPC dialogue trees, quest definitions, and the rumor
// pool. Content is constructed once, validated, and never mutated.
package content

import (
	"github.com/hearthfire/story-api/internal/engine/action"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
)

// Content is the immutable story data set an engine instance runs on.
// Multiple engine instances may share one Content.
type Content struct {
	Locations map[string]*entities.Location
	// Dialogues are keyed by the talk action that opens them,
	// e.g. "talk_to_elder"
	Dialogues map[string]*entities.Dialogue
	Quests    map[string]*entities.QuestDefinition
	Rumors    []string

	// RestLocationID is the only location where resting is allowed
	RestLocationID string
	// RumorLocationID is the only location where rumors can be overheard
	RumorLocationID string
}

// Validate checks content for authoring defects: dangling location
// references, dialogues without an unconditional fallback conversation,
// duplicate choice actions, and quest references that resolve to nothing.
// Run once at startup; a failure here is a bug in the data, not in the
// engine.
func (c *Content) Validate() error {
	if len(c.Locations) == 0 {
		return errors.ContentDefect("content has no locations")
	}

	if c.RestLocationID != "" {
		if _, ok := c.Locations[c.RestLocationID]; !ok {
			return errors.ContentDefectf("rest location %q does not exist", c.RestLocationID)
		}
	}
	if c.RumorLocationID != "" {
		if _, ok := c.Locations[c.RumorLocationID]; !ok {
			return errors.ContentDefectf("rumor location %q does not exist", c.RumorLocationID)
		}
	}

	for id, location := range c.Locations {
		if location.ID != id {
			return errors.ContentDefectf("location %q is keyed as %q", location.ID, id)
		}
		for _, token := range location.AvailableActions {
			destination, ok := action.Destination(token)
			if !ok {
				continue
			}
			if _, exists := c.Locations[destination]; !exists {
				return errors.ContentDefectf(
					"location %q offers travel to unknown location %q", id, destination)
			}
		}
	}

	for key, dialogue := range c.Dialogues {
		if err := c.validateDialogue(key, dialogue); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(c.Rumors))
	for _, rumor := range c.Rumors {
		if seen[rumor] {
			return errors.ContentDefectf("duplicate rumor in pool: %q", rumor)
		}
		seen[rumor] = true
	}

	return nil
}

func (c *Content) validateDialogue(key string, dialogue *entities.Dialogue) error {
	if len(dialogue.Conversations) == 0 {
		return errors.ContentDefectf("dialogue %q has no conversations", key)
	}

	hasFallback := false
	for i := range dialogue.Conversations {
		conversation := &dialogue.Conversations[i]

		if conversation.Condition == nil {
			hasFallback = true
		} else if err := c.validateQuestRef(key, conversation.Condition.QuestID); err != nil {
			return err
		}

		if conversation.QuestInfo != "" {
			if err := c.validateQuestRef(key, conversation.QuestInfo); err != nil {
				return err
			}
		}

		actions := make(map[string]bool, len(conversation.Choices))
		for _, choice := range conversation.Choices {
			if actions[choice.Action] {
				return errors.ContentDefectf(
					"dialogue %q has duplicate choice action %q", key, choice.Action)
			}
			actions[choice.Action] = true

			if choice.QuestUpdate != nil {
				if err := c.validateQuestRef(key, choice.QuestUpdate.QuestID); err != nil {
					return err
				}
			}
			if choice.NextConversationID != "" {
				if dialogue.ConversationByID(choice.NextConversationID) == nil {
					return errors.ContentDefectf(
						"dialogue %q chains to unknown conversation %q",
						key, choice.NextConversationID)
				}
			}
		}
	}

	if !hasFallback {
		return errors.ContentDefectf("dialogue %q has no unconditional fallback conversation", key)
	}
	return nil
}

func (c *Content) validateQuestRef(dialogueKey, questID string) error {
	if questID == "" {
		return errors.ContentDefectf("dialogue %q references an empty quest id", dialogueKey)
	}
	if _, ok := c.Quests[questID]; !ok {
		return errors.ContentDefectf("dialogue %q references unknown quest %q", dialogueKey, questID)
	}
	return nil
}
