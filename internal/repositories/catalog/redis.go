package catalog

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-room-mirror/internal/redis"
)

// Every key carries the {catalog} hash tag so the multi-key reads and
// transactions below stay on one cluster slot.
const (
	itemKeyPrefix = "{catalog}:item:"
	itemIndexKey  = "{catalog}:items"
	recolorsKey   = "{catalog}:recolors"

	// Error messages
	errDefinitionIDEmpty = "definition ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) GetDefinition(ctx context.Context, input *GetDefinitionInput) (*GetDefinitionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDefinitionIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item definition %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item definition %s", input.ID)
	}

	var def entities.ItemDefinition
	if err := json.Unmarshal([]byte(result), &def); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item definition %s", input.ID)
	}

	return &GetDefinitionOutput{Definition: &def}, nil
}

func (r *redisRepository) ListDefinitions(ctx context.Context, _ *ListDefinitionsInput) (*ListDefinitionsOutput, error) {
	ids, err := r.client.SMembers(ctx, itemIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list item definitions")
	}
	if len(ids) == 0 {
		return &ListDefinitionsOutput{}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = GetKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item definitions")
	}

	defs := make([]entities.ItemDefinition, 0, len(values))
	for i, value := range values {
		// index entries whose value was deleted come back nil
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var def entities.ItemDefinition
		if err := json.Unmarshal([]byte(raw), &def); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal item definition %s", ids[i])
		}
		defs = append(defs, def)
	}

	return &ListDefinitionsOutput{Definitions: defs}, nil
}

func (r *redisRepository) PutDefinitions(ctx context.Context, input *PutDefinitionsInput) (*PutDefinitionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Definitions) == 0 {
		return &PutDefinitionsOutput{}, nil
	}

	pipe := r.client.TxPipeline()
	for _, def := range input.Definitions {
		if def.ID == "" {
			return nil, errors.InvalidArgument(errDefinitionIDEmpty)
		}
		data, err := json.Marshal(def)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal item definition %s", def.ID)
		}
		pipe.Set(ctx, GetKey(def.ID), data, 0)
		pipe.SAdd(ctx, itemIndexKey, def.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store item definitions")
	}

	return &PutDefinitionsOutput{Stored: len(input.Definitions)}, nil
}

func (r *redisRepository) GetRecolors(ctx context.Context, _ *GetRecolorsInput) (*GetRecolorsOutput, error) {
	recolors, err := r.client.LRange(ctx, recolorsKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get recolor palette")
	}
	return &GetRecolorsOutput{Recolors: recolors}, nil
}

func (r *redisRepository) SetRecolors(ctx context.Context, input *SetRecolorsInput) (*SetRecolorsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, recolorsKey)
	if len(input.Recolors) > 0 {
		values := make([]interface{}, len(input.Recolors))
		for i, hex := range input.Recolors {
			values[i] = hex
		}
		pipe.RPush(ctx, recolorsKey, values...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store recolor palette")
	}

	return &SetRecolorsOutput{}, nil
}

// GetKey returns the Redis key for an item definition
// Exposed for testing purposes
func GetKey(definitionID string) string {
	return itemKeyPrefix + definitionID
}
