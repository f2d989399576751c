// Package player implements the player account orchestrator
package player

import (
	"context"
	"log/slog"
	"sort"

	"github.com/hearthfire/story-api/internal/content"
	"github.com/hearthfire/story-api/internal/engine/world"
	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
	playerrepo "github.com/hearthfire/story-api/internal/repositories/player"
	"github.com/hearthfire/story-api/internal/services/player"
)

// classStats holds the starting ability scores per class
type classStats struct {
	Strength     int32
	Dexterity    int32
	Intelligence int32
	Charisma     int32
}

var startingStats = map[string]classStats{
	"barbarian": {Strength: 18, Dexterity: 14, Intelligence: 10, Charisma: 12},
	"bard":      {Strength: 10, Dexterity: 14, Intelligence: 12, Charisma: 18},
	"paladin":   {Strength: 16, Dexterity: 10, Intelligence: 14, Charisma: 14},
}

const (
	startingLevel     = int32(1)
	startingHealth    = int32(10)
	startingMaxHealth = int32(10)
)

// Config holds the dependencies for the player orchestrator
type Config struct {
	PlayerRepo playerrepo.Repository
	World      *world.Graph
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
	if c.Content == nil {
		vb.RequiredField("Content")
	}

	return vb.Build()
}

// Orchestrator implements the player.Service interface
type Orchestrator struct {
	playerRepo playerrepo.Repository
	world      *world.Graph
	content    *content.Content
}

// New creates a new player orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		playerRepo: cfg.PlayerRepo,
		world:      cfg.World,
		content:    cfg.Content,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ player.Service = (*Orchestrator)(nil)

// Classes returns the choosable class ids in stable order
func Classes() []string {
	classes := make([]string, 0, len(startingStats))
	for class := range startingStats {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// Register creates a new player record. The class is chosen in a second
// step; until then the record has no ability scores.
func (o *Orchestrator) Register(ctx context.Context, input *player.RegisterInput) (*player.RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.PlayerID == "" {
		vb.RequiredField("playerID")
	}
	if input.Name == "" {
		vb.RequiredField("name")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record := &entities.Player{
		ID:              input.PlayerID,
		Name:            input.Name,
		Level:           startingLevel,
		CurrentLocation: o.content.RestLocationID,
		CurrentHealth:   startingHealth,
		MaxHealth:       startingMaxHealth,
	}

	output, err := o.playerRepo.Create(ctx, playerrepo.CreateInput{Player: record})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "player registered",
		"player_id", input.PlayerID,
		"name", input.Name)

	return &player.RegisterOutput{Player: output.Player, Classes: Classes()}, nil
}

// ChooseClass assigns a class and its starting ability scores
func (o *Orchestrator) ChooseClass(ctx context.Context, input *player.ChooseClassInput) (*player.ChooseClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	stats, ok := startingStats[input.Class]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown class %q", input.Class)
	}

	getOutput, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	record := getOutput.Player

	if record.Class != "" {
		return nil, errors.FailedPreconditionf("class already chosen: %s", record.Class)
	}

	record.Class = input.Class
	record.Strength = stats.Strength
	record.Dexterity = stats.Dexterity
	record.Intelligence = stats.Intelligence
	record.Charisma = stats.Charisma

	output, err := o.playerRepo.Update(ctx, playerrepo.UpdateInput{Player: record})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "player class chosen",
		"player_id", input.PlayerID,
		"class", input.Class)

	return &player.ChooseClassOutput{Player: output.Player}, nil
}

// Stats returns the player's character sheet
func (o *Orchestrator) Stats(ctx context.Context, input *player.StatsInput) (*player.StatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	output, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &player.StatsOutput{Player: output.Player}, nil
}

// WhereAmI returns the player's current location
func (o *Orchestrator) WhereAmI(ctx context.Context, input *player.WhereAmIInput) (*player.WhereAmIOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	getOutput, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	location, err := o.world.Location(getOutput.Player.CurrentLocation)
	if err != nil {
		return nil, err
	}

	return &player.WhereAmIOutput{Player: getOutput.Player, Location: location}, nil
}
