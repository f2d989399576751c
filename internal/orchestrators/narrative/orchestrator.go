// Package narrative implements the narrative orchestrator
package narrative

import (
	"context"
	"strings"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/engine/action"
	"github.com/hearthfire/story-api/internal/engine/dialogue"
	"github.com/hearthfire/story-api/internal/engine/quest"
	"github.com/hearthfire/story-api/internal/engine/rumor"
	"github.com/hearthfire/story-api/internal/engine/world"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
	playerrepo "github.com/hearthfire/story-api/internal/repositories/player"
	"github.com/hearthfire/story-api/internal/services/narrative"
)

// Config holds the dependencies for the narrative orchestrator
type Config struct {
	PlayerRepo playerrepo.Repository
	World      *world.Graph
	Dialogue   *dialogue.Resolver
	Quests     *quest.Ledger
	Rumors     *rumor.Pool
	Content    *content.Content
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.Dialogue == nil {
		vb.RequiredField("Dialogue")
	}
	if c.Quests == nil {
		vb.RequiredField("Quests")
	}
	if c.Rumors == nil {
		vb.RequiredField("Rumors")
	}
	if c.Content == nil {
		vb.RequiredField("Content")
	}

	return vb.Build()
}

// Orchestrator implements the narrative.Service interface
type Orchestrator struct {
	playerRepo playerrepo.Repository
	world      *world.Graph
	dialogue   *dialogue.Resolver
	quests     *quest.Ledger
	rumors     *rumor.Pool
	content    *content.Content
	locks      *playerLocks
}

// New creates a new narrative orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		playerRepo: cfg.PlayerRepo,
		world:      cfg.World,
		dialogue:   cfg.Dialogue,
		quests:     cfg.Quests,
		rumors:     cfg.Rumors,
		content:    cfg.Content,
		locks:      newPlayerLocks(),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ narrative.Service = (*Orchestrator)(nil)

func (o *Orchestrator) loadPlayer(ctx context.Context, playerID string) (*entities.Player, error) {
	output, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: playerID})
	if err != nil {
		return nil, err
	}
	return output.Player, nil
}

// Look describes the player's current location
func (o *Orchestrator) Look(ctx context.Context, input *narrative.LookInput) (*narrative.LookOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	player, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	location, err := o.world.Location(player.CurrentLocation)
	if err != nil {
		return nil, err
	}

	return &narrative.LookOutput{Player: player, Location: location}, nil
}

// TravelMenu lists the movement options from the player's location
func (o *Orchestrator) TravelMenu(ctx context.Context, input *narrative.TravelMenuInput) (*narrative.TravelMenuOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	player, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	location, err := o.world.Location(player.CurrentLocation)
	if err != nil {
		return nil, err
	}

	options, err := o.world.TravelOptions(player.CurrentLocation)
	if err != nil {
		return nil, err
	}

	return &narrative.TravelMenuOutput{Location: location, Options: options}, nil
}

// TalkMenu lists the NPCs the player can talk to from their location
func (o *Orchestrator) TalkMenu(ctx context.Context, input *narrative.TalkMenuInput) (*narrative.TalkMenuOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	player, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	location, err := o.world.Location(player.CurrentLocation)
	if err != nil {
		return nil, err
	}

	options := make([]narrative.TalkOption, 0)
	for _, token := range location.AvailableActions {
		if strings.HasPrefix(token, action.TalkPrefix) {
			options = append(options, narrative.TalkOption{
				Token: token,
				NPC:   strings.TrimPrefix(token, action.TalkPrefix),
			})
		}
	}

	return &narrative.TalkMenuOutput{Location: location, Options: options}, nil
}

// QuestJournal summarizes every quest by the player's status for it
func (o *Orchestrator) QuestJournal(ctx context.Context, input *narrative.QuestJournalInput) (*narrative.QuestJournalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	player, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &narrative.QuestJournalOutput{Summary: o.quests.Summarize(player)}, nil
}

// Journal returns the player's written record
func (o *Orchestrator) Journal(ctx context.Context, input *narrative.JournalInput) (*narrative.JournalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	player, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &narrative.JournalOutput{Journal: player.Journal}, nil
}
