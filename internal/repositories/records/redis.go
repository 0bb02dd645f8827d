package records

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	redisclient "github.com/phnks/webfg-app-sub004/internal/redis"
)

const keyNamespace = "webfg"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis record repository.
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

// NewRedis creates a new Redis-backed record repository. Records are stored as
// JSON strings.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Key returns the Redis key for a record. Every key of one kind shares a hash
// tag so batch reads stay in one cluster slot.
func Key(kind, id string) string {
	return fmt.Sprintf("%s:{%s}:%s", keyNamespace, kind, id)
}

func (r *redisRepository) GetCharacter(ctx context.Context, input GetCharacterInput) (*GetCharacterOutput, error) {
	char, err := getRecord[entities.Character](ctx, r.client, kindCharacter, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: char}, nil
}

func (r *redisRepository) PutCharacter(ctx context.Context, input PutCharacterInput) (*PutCharacterOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if err := putRecord(ctx, r.client, kindCharacter, input.Character.ID, input.Character); err != nil {
		return nil, err
	}
	return &PutCharacterOutput{Character: input.Character}, nil
}

func (r *redisRepository) BatchGetItems(ctx context.Context, input BatchGetItemsInput) (*BatchGetItemsOutput, error) {
	items, err := batchGetRecords[entities.Item](ctx, r.client, kindItem, input.IDs)
	if err != nil {
		return nil, err
	}
	return &BatchGetItemsOutput{Items: items}, nil
}

func (r *redisRepository) PutItem(ctx context.Context, input PutItemInput) (*PutItemOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}
	if err := putRecord(ctx, r.client, kindItem, input.Item.ID, input.Item); err != nil {
		return nil, err
	}
	return &PutItemOutput{Item: input.Item}, nil
}

func (r *redisRepository) BatchGetConditions(
	ctx context.Context,
	input BatchGetConditionsInput,
) (*BatchGetConditionsOutput, error) {
	conditions, err := batchGetRecords[entities.Condition](ctx, r.client, kindCondition, input.IDs)
	if err != nil {
		return nil, err
	}
	return &BatchGetConditionsOutput{Conditions: conditions}, nil
}

func (r *redisRepository) PutCondition(ctx context.Context, input PutConditionInput) (*PutConditionOutput, error) {
	if input.Condition == nil {
		return nil, errors.InvalidArgument("condition is required")
	}
	if err := putRecord(ctx, r.client, kindCondition, input.Condition.ID, input.Condition); err != nil {
		return nil, err
	}
	return &PutConditionOutput{Condition: input.Condition}, nil
}

func (r *redisRepository) GetAction(ctx context.Context, input GetActionInput) (*GetActionOutput, error) {
	act, err := getRecord[entities.Action](ctx, r.client, kindAction, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetActionOutput{Action: act}, nil
}

func (r *redisRepository) BatchGetActions(ctx context.Context, input BatchGetActionsInput) (*BatchGetActionsOutput, error) {
	actions, err := batchGetRecords[entities.Action](ctx, r.client, kindAction, input.IDs)
	if err != nil {
		return nil, err
	}
	return &BatchGetActionsOutput{Actions: actions}, nil
}

func (r *redisRepository) PutAction(ctx context.Context, input PutActionInput) (*PutActionOutput, error) {
	if input.Action == nil {
		return nil, errors.InvalidArgument("action is required")
	}
	if err := putRecord(ctx, r.client, kindAction, input.Action.ID, input.Action); err != nil {
		return nil, err
	}
	return &PutActionOutput{Action: input.Action}, nil
}

func getRecord[T any](ctx context.Context, client redisclient.Client, kind, id string) (*T, error) {
	if id == "" {
		return nil, errors.InvalidArgumentf("%s ID cannot be empty", kind)
	}

	result, err := client.Get(ctx, Key(kind, id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s %s not found", kind, id).WithMeta(kind+"_id", id)
		}
		return nil, errors.Wrapf(err, "failed to get %s %s", kind, id)
	}

	var record T
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal %s %s", kind, id)
	}
	return &record, nil
}

func putRecord(ctx context.Context, client redisclient.Client, kind, id string, record any) error {
	if id == "" {
		return errors.InvalidArgumentf("%s ID cannot be empty", kind)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s %s", kind, id)
	}

	if err := client.Set(ctx, Key(kind, id), string(data), 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store %s %s", kind, id)
	}
	return nil
}

// batchGetRecords reads all IDs with one MGET and drops the ones that are missing
func batchGetRecords[T any](ctx context.Context, client redisclient.Client, kind string, ids []string) ([]*T, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []*T{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = Key(kind, id)
	}

	values, err := client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %d %s records", len(keys), kind)
	}

	out := make([]*T, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var record T
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s %s", kind, ids[i])
		}
		out = append(out, &record)
	}
	return out, nil
}
