package chat

import (
	"fmt"
	"strings"

	"github.com/hearthfire/story-api/internal/engine/action"
	"github.com/hearthfire/story-api/internal/engine/quest"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
	narrativesvc "github.com/hearthfire/story-api/internal/services/narrative"
	playersvc "github.com/hearthfire/story-api/internal/services/player"
)

// Renderer turns service outputs into chat messages
type Renderer struct {
	quests *quest.Ledger
}

// Config holds the dependencies for the renderer
type Config struct {
	// Quests annotates dialogue and choice messages with quest names
	Quests *quest.Ledger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Quests == nil {
		vb.RequiredField("Quests")
	}
	return vb.Build()
}

// New creates a renderer
func New(cfg *Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Renderer{quests: cfg.Quests}, nil
}

// Look renders a location with one button per available action
func (r *Renderer) Look(output *narrativesvc.LookOutput) *Message {
	return r.locationMessage(output.Location)
}

func (r *Renderer) locationMessage(location *entities.Location) *Message {
	msg := &Message{
		Title:       location.Name,
		Description: location.Description,
	}
	for _, token := range location.AvailableActions {
		msg.Buttons = append(msg.Buttons, Button{Label: Humanize(token), Token: token})
	}
	return msg
}

// TravelMenu renders the travel options, labeled by destination name
func (r *Renderer) TravelMenu(output *narrativesvc.TravelMenuOutput) *Message {
	if len(output.Options) == 0 {
		return &Message{Description: "There's nowhere to go from here."}
	}

	msg := &Message{Title: "Where would you like to go?"}
	for _, option := range output.Options {
		msg.Buttons = append(msg.Buttons, Button{
			Label: option.Destination.Name,
			Token: action.MenuGoPrefix + option.Token,
		})
	}
	return msg
}

// TalkMenu renders the conversation partners at the player's location
func (r *Renderer) TalkMenu(output *narrativesvc.TalkMenuOutput) *Message {
	if len(output.Options) == 0 {
		return &Message{Description: "There's no one here to talk to."}
	}

	msg := &Message{Title: "Who would you like to talk to?"}
	for _, option := range output.Options {
		msg.Buttons = append(msg.Buttons, Button{
			Label: Humanize(option.NPC),
			Token: option.Token,
		})
	}
	return msg
}

// Result renders a routing result. A choice that chains into a follow-up
// conversation renders as two messages: the response, then the follow-up
// prompt with its own choices.
func (r *Renderer) Result(result *narrativesvc.Result) []*Message {
	switch result.Kind {
	case narrativesvc.ResultDialogue:
		return []*Message{r.conversationMessage(
			fmt.Sprintf("Talking to %s", result.NPCName),
			result.NPC,
			result.Conversation,
		)}

	case narrativesvc.ResultChoice:
		response := &Message{
			Title:       fmt.Sprintf("%s's Response", result.NPCName),
			Description: result.Narrative,
		}
		if result.UpdatedQuestID != "" {
			if definition, err := r.quests.Definition(result.UpdatedQuestID); err == nil {
				response.Fields = append(response.Fields, Field{
					Name:  "Quest Updated",
					Value: definition.Name,
				})
			}
		}
		messages := []*Message{response}
		if result.Conversation != nil {
			messages = append(messages, r.conversationMessage(
				fmt.Sprintf("Talking to %s", result.NPCName),
				result.NPC,
				result.Conversation,
			))
		}
		return messages

	case narrativesvc.ResultMoved:
		return []*Message{r.locationMessage(result.Location)}

	default:
		return []*Message{{Description: result.Narrative}}
	}
}

func (r *Renderer) conversationMessage(title, npcID string, conversation *entities.Conversation) *Message {
	msg := &Message{
		Title:       title,
		Description: conversation.Text,
	}
	if conversation.QuestInfo != "" {
		if definition, err := r.quests.Definition(conversation.QuestInfo); err == nil {
			msg.Fields = append(msg.Fields, Field{Name: "Quest", Value: definition.Name})
		}
	}
	for _, choice := range conversation.Choices {
		msg.Buttons = append(msg.Buttons, Button{
			Label: choice.Label,
			Token: action.ChoicePrefix + npcID + "_" + choice.Action,
		})
	}
	return msg
}

// QuestJournal renders the quest journal summary
func (r *Renderer) QuestJournal(output *narrativesvc.QuestJournalOutput) *Message {
	msg := &Message{
		Title:       "Quest Journal",
		Description: "Your current quest progress and available adventures.",
	}

	active := "No active quests."
	if len(output.Summary.Active) > 0 {
		blocks := make([]string, 0, len(output.Summary.Active))
		for _, q := range output.Summary.Active {
			lines := make([]string, 0, len(q.Objectives))
			for _, objective := range q.Objectives {
				lines = append(lines, fmt.Sprintf("- %s: %s", objective.Description, objective.Progress))
			}
			blocks = append(blocks, fmt.Sprintf("**%s**\n%s\n\nObjectives:\n%s\n\nRewards:\n%s",
				q.Name, q.Description, strings.Join(lines, "\n"), formatRewards(q.Rewards)))
		}
		active = strings.Join(blocks, "\n\n")
	}
	msg.Fields = append(msg.Fields, Field{Name: "📋 Active Quests", Value: active})

	if len(output.Summary.Available) > 0 {
		blocks := make([]string, 0, len(output.Summary.Available))
		for _, q := range output.Summary.Available {
			blocks = append(blocks, fmt.Sprintf("**%s**\n%s\nGiven by: %s", q.Name, q.Description, q.Giver))
		}
		msg.Fields = append(msg.Fields, Field{Name: "❗ Available Quests", Value: strings.Join(blocks, "\n\n")})
	}

	completed := "No completed quests."
	if len(output.Summary.Completed) > 0 {
		names := make([]string, 0, len(output.Summary.Completed))
		for _, q := range output.Summary.Completed {
			names = append(names, fmt.Sprintf("**%s**", q.Name))
		}
		completed = strings.Join(names, "\n")
	}
	msg.Fields = append(msg.Fields, Field{Name: "✅ Completed Quests", Value: completed})

	return msg
}

// Journal renders the player's written record
func (r *Renderer) Journal(name string, output *narrativesvc.JournalOutput) *Message {
	if len(output.Journal.Entries) == 0 && len(output.Journal.Rumors) == 0 {
		return &Message{Description: "Your journal is empty."}
	}

	msg := &Message{
		Title:       fmt.Sprintf("%s's Journal", name),
		Description: "Check what you've written down so far!",
	}
	if len(output.Journal.Rumors) > 0 {
		msg.Fields = append(msg.Fields, Field{
			Name:  "Rumors Collected",
			Value: strings.Join(output.Journal.Rumors, "\n"),
		})
	}
	if len(output.Journal.Entries) > 0 {
		msg.Fields = append(msg.Fields, Field{
			Name:  "Journal Entries",
			Value: strings.Join(output.Journal.Entries, "\n"),
		})
	}
	return msg
}

// Welcome renders the post-registration class selection prompt
func (r *Renderer) Welcome(output *playersvc.RegisterOutput) *Message {
	msg := &Message{
		Title:       fmt.Sprintf("Welcome, %s!", output.Player.Name),
		Description: "Choose your class to begin your adventure.",
	}
	for _, class := range output.Classes {
		msg.Buttons = append(msg.Buttons, Button{Label: Humanize(class), Token: class})
	}
	return msg
}

// Stats renders the character sheet
func (r *Renderer) Stats(output *playersvc.StatsOutput) *Message {
	p := output.Player
	return &Message{
		Title: fmt.Sprintf("%s the %s", p.Name, Humanize(p.Class)),
		Fields: []Field{
			{Name: "Level", Value: fmt.Sprintf("%d", p.Level)},
			{Name: "Experience", Value: fmt.Sprintf("%d", p.ExperiencePoints)},
			{Name: "Health", Value: fmt.Sprintf("%d/%d", p.CurrentHealth, p.MaxHealth)},
			{Name: "Strength", Value: fmt.Sprintf("%d", p.Strength)},
			{Name: "Dexterity", Value: fmt.Sprintf("%d", p.Dexterity)},
			{Name: "Intelligence", Value: fmt.Sprintf("%d", p.Intelligence)},
			{Name: "Charisma", Value: fmt.Sprintf("%d", p.Charisma)},
		},
	}
}

// WhereAmI renders the player's current location one-liner
func (r *Renderer) WhereAmI(output *playersvc.WhereAmIOutput) *Message {
	return &Message{
		Description: fmt.Sprintf("You are currently at: %s", output.Location.Name),
	}
}

func formatRewards(rewards entities.QuestRewards) string {
	lines := make([]string, 0, 2+len(rewards.Items))
	if rewards.Gold > 0 {
		lines = append(lines, fmt.Sprintf("- %d gold", rewards.Gold))
	}
	if rewards.Experience > 0 {
		lines = append(lines, fmt.Sprintf("- %d experience", rewards.Experience))
	}
	for _, item := range rewards.Items {
		lines = append(lines, fmt.Sprintf("- %s", item))
	}
	if len(lines) == 0 {
		return "- None"
	}
	return strings.Join(lines, "\n")
}
