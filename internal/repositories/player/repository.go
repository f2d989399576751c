// Package player provides the interface for player record persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/hearthfire/story-api/internal/repositories/player Repository

import (
	"context"

	"github.com/hearthfire/story-api/internal/entities"
)

// Repository defines the interface for player persistence. Each player is
// a single record; patches are partial-field updates applied atomically
// per call.
type Repository interface {
	// Get retrieves a player by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Unavailable for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Create creates a new player record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a player with the same ID exists
	// Returns errors.Unavailable for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update replaces an existing player record
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Unavailable for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ApplyPatch applies a partial update to an existing player record as
	// a single atomic write
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Unavailable for storage failures
	ApplyPatch(ctx context.Context, input ApplyPatchInput) (*ApplyPatchOutput, error)
}

// GetInput defines the input for getting a player
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Player *entities.Player
}

// CreateInput defines the input for creating a player
type CreateInput struct {
	Player *entities.Player
}

// CreateOutput defines the output for creating a player
type CreateOutput struct {
	Player *entities.Player
}

// UpdateInput defines the input for updating a player
type UpdateInput struct {
	Player *entities.Player
}

// UpdateOutput defines the output for updating a player
type UpdateOutput struct {
	Player *entities.Player
}

// ApplyPatchInput defines the input for patching a player
type ApplyPatchInput struct {
	ID    string
	Patch entities.PlayerPatch
}

// ApplyPatchOutput defines the output for patching a player
type ApplyPatchOutput struct {
	Player *entities.Player
}
