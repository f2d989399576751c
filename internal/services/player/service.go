// Package player defines the interface for player account operations
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playersvcmock github.com/hearthfire/story-api/internal/services/player Service

import (
	"context"

	"github.com/hearthfire/story-api/internal/entities"
)

// Service defines the interface for player account operations
type Service interface {
	// Register creates a new player record with no class assigned.
	// Returns errors.AlreadyExists if the player is already registered
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// ChooseClass assigns a class and its starting ability scores.
	// Returns errors.NotFound if the player is not registered
	// Returns errors.FailedPrecondition if a class was already chosen
	ChooseClass(ctx context.Context, input *ChooseClassInput) (*ChooseClassOutput, error)

	// Stats returns the player's character sheet.
	// Returns errors.NotFound if the player is not registered
	Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error)

	// WhereAmI returns the player's current location.
	// Returns errors.NotFound if the player is not registered
	WhereAmI(ctx context.Context, input *WhereAmIInput) (*WhereAmIOutput, error)
}

// RegisterInput defines the request for registering a player
type RegisterInput struct {
	PlayerID string
	Name     string
}

// RegisterOutput defines the response for registering a player
type RegisterOutput struct {
	Player *entities.Player
	// Classes lists the class ids the player may choose from
	Classes []string
}

// ChooseClassInput defines the request for choosing a class
type ChooseClassInput struct {
	PlayerID string
	Class    string
}

// ChooseClassOutput defines the response for choosing a class
type ChooseClassOutput struct {
	Player *entities.Player
}

// StatsInput defines the request for the character sheet
type StatsInput struct {
	PlayerID string
}

// StatsOutput defines the response for the character sheet
type StatsOutput struct {
	Player *entities.Player
}

// WhereAmIInput defines the request for the current location
type WhereAmIInput struct {
	PlayerID string
}

// WhereAmIOutput defines the response for the current location
type WhereAmIOutput struct {
	Player   *entities.Player
	Location *entities.Location
}
