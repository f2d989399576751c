package player

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/hearthfire/story-api/internal/entities"
	"github.com/hearthfire/story-api/internal/errors"
	"github.com/hearthfire/story-api/internal/pkg/clock"
	redisclient "github.com/hearthfire/story-api/internal/redis"
)

const (
	playerKeyPrefix = "player:"

	// Error messages
	errPlayerNil     = "player cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get player")
	}

	var record entities.Player
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player record")
	}

	return &GetOutput{Player: &record}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.Player.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("player with ID %s already exists", input.Player.ID)
	}

	record := *input.Player
	now := r.clock.Now().Unix()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := r.set(ctx, key, &record); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "player record created",
		"player_id", record.ID,
		"location", record.CurrentLocation)

	return &CreateOutput{Player: &record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.Player.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("player with ID %s not found", input.Player.ID)
	}

	record := *input.Player
	record.UpdatedAt = r.clock.Now().Unix()

	if err := r.set(ctx, key, &record); err != nil {
		return nil, err
	}

	return &UpdateOutput{Player: &record}, nil
}

func (r *redisRepository) ApplyPatch(ctx context.Context, input ApplyPatchInput) (*ApplyPatchOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Patch.IsZero() {
		return nil, errors.InvalidArgument("patch cannot be empty")
	}

	getOutput, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	record := getOutput.Player

	applyPatch(record, input.Patch)
	record.UpdatedAt = r.clock.Now().Unix()

	key := playerKeyPrefix + input.ID
	if err := r.set(ctx, key, record); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "player patch applied",
		"player_id", input.ID,
		"location_changed", input.Patch.CurrentLocation != nil,
		"health_changed", input.Patch.CurrentHealth != nil,
		"quests_changed", input.Patch.QuestProgress != nil)

	return &ApplyPatchOutput{Player: record}, nil
}

func (r *redisRepository) set(ctx context.Context, key string, record *entities.Player) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal player record")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil { // No TTL for players
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write player record")
	}
	return nil
}

// applyPatch folds a partial update into a loaded record. Rumor appends
// skip strings already present: journal rumors never contain duplicates.
func applyPatch(record *entities.Player, patch entities.PlayerPatch) {
	if patch.CurrentLocation != nil {
		record.CurrentLocation = *patch.CurrentLocation
	}
	if patch.CurrentHealth != nil {
		record.CurrentHealth = *patch.CurrentHealth
	}
	if patch.QuestProgress != nil {
		record.QuestProgress = patch.QuestProgress
	}
	record.Inventory = append(record.Inventory, patch.InventoryAppend...)
	record.Journal.Entries = append(record.Journal.Entries, patch.JournalEntriesAppend...)

	for _, rumor := range patch.JournalRumorsAppend {
		duplicate := false
		for _, heard := range record.Journal.Rumors {
			if heard == rumor {
				duplicate = true
				break
			}
		}
		if !duplicate {
			record.Journal.Rumors = append(record.Journal.Rumors, rumor)
		}
	}
}
