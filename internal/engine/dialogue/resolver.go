// Package dialogue selects NPC conversations against player state and
// resolves choices into their effects.
package dialogue

import (
	"fmt"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/engine/action"
	"github.com/hearthfire/story-api/internal/engine/quest"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
)

// Resolver runs the conversation selection and choice resolution rules.
// It computes patches and never persists anything itself.
type Resolver struct {
	dialogues map[string]*entities.Dialogue
	ledger    *quest.Ledger
}

// Config holds the dependencies for the dialogue resolver
type Config struct {
	Content *content.Content
	Ledger  *quest.Ledger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}
	return vb.Build()
}

// New creates a dialogue resolver
func New(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{dialogues: cfg.Content.Dialogues, ledger: cfg.Ledger}, nil
}

// ForNPC looks up the dialogue opened by talking to the given NPC id.
// An unknown NPC is a content defect: the talk action came from authored
// location data.
func (r *Resolver) ForNPC(npcID string) (*entities.Dialogue, error) {
	dialogue, ok := r.dialogues[action.TalkPrefix+npcID]
	if !ok {
		return nil, errors.ContentDefectf("no dialogue for npc %q", npcID)
	}
	return dialogue, nil
}

// SelectConversation picks the active conversation for a player: the first
// conversation in declared order whose condition holds, falling back to
// the first unconditional one. A dialogue where neither exists is a
// content defect.
func (r *Resolver) SelectConversation(
	dialogue *entities.Dialogue,
	player *entities.Player,
) (*entities.Conversation, error) {
	for i := range dialogue.Conversations {
		conversation := &dialogue.Conversations[i]
		if conversation.Condition != nil && evaluate(conversation.Condition, player) {
			return conversation, nil
		}
	}

	for i := range dialogue.Conversations {
		conversation := &dialogue.Conversations[i]
		if conversation.Condition == nil {
			return conversation, nil
		}
	}

	return nil, errors.ContentDefectf("dialogue %q has no valid conversation", dialogue.ID)
}

// evaluate interprets a condition against player state. Conditions are
// pure and safe to evaluate repeatedly.
func evaluate(condition *entities.Condition, player *entities.Player) bool {
	progress, started := player.QuestProgressFor(condition.QuestID)

	switch condition.Kind {
	case entities.ConditionQuestMissing:
		return !started
	case entities.ConditionQuestStatus:
		return started && progress.Status == condition.Status
	default:
		return false
	}
}

// ResolveChoice finds the choice matching an action token within the
// selected conversation only. Choices from sibling conversations are not
// visible: a choice reference is only meaningful relative to the
// conversation that presented it.
func (r *Resolver) ResolveChoice(
	conversation *entities.Conversation,
	actionToken string,
) (*entities.Choice, error) {
	for i := range conversation.Choices {
		if conversation.Choices[i].Action == actionToken {
			return &conversation.Choices[i], nil
		}
	}
	return nil, errors.NotFoundf("choice %q is not part of this conversation", actionToken)
}

// ChoiceOutcome is the computed result of picking a choice
type ChoiceOutcome struct {
	// Narrative is the NPC response plus any item-received note
	Narrative string
	// Patch describes the state changes to persist
	Patch entities.PlayerPatch
	// UpdatedQuestID is set when the choice carried a quest update
	UpdatedQuestID string
	// FollowUp is the chained conversation to present next, if any.
	// It is surfaced as a second interaction, never auto-applied.
	FollowUp *entities.Conversation
}

// ApplyChoiceEffects computes the outcome of a choice: quest transition,
// item reward, response narrative, and conversation chaining, in that
// order. Side-effect free; the caller persists the returned patch.
func (r *Resolver) ApplyChoiceEffects(
	dialogue *entities.Dialogue,
	choice *entities.Choice,
	player *entities.Player,
) (*ChoiceOutcome, error) {
	outcome := &ChoiceOutcome{Narrative: choice.Response}

	if choice.QuestUpdate != nil {
		progress, err := r.ledger.Apply(player.QuestProgress, choice.QuestUpdate)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to apply quest update for choice %q", choice.Action)
		}
		outcome.Patch.QuestProgress = progress
		outcome.UpdatedQuestID = choice.QuestUpdate.QuestID
	}

	if choice.ItemReward != "" {
		outcome.Patch.InventoryAppend = []string{choice.ItemReward}
		outcome.Narrative = fmt.Sprintf("%s\n\nReceived: %s", outcome.Narrative, choice.ItemReward)
	}

	if choice.NextConversationID != "" {
		followUp := dialogue.ConversationByID(choice.NextConversationID)
		if followUp == nil {
			return nil, errors.ContentDefectf(
				"dialogue %q chains to unknown conversation %q",
				dialogue.ID, choice.NextConversationID)
		}
		outcome.FollowUp = followUp
	}

	return outcome, nil
}
