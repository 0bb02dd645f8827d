package attempts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/phnks/webfg-app-sub004/internal/errors"
	redisclient "github.com/phnks/webfg-app-sub004/internal/redis"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis attempt history. Each character's
// history is one list, newest first, expiring as a whole.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Key returns the list key holding a character's history
func Key(characterID string) string {
	return fmt.Sprintf("webfg:attempts:%s", characterID)
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal attempt %s", input.Record.AttemptID)
	}

	key := Key(input.Record.SourceCharacterID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, string(data))
	pipe.LTrim(ctx, key, 0, MaxPerCharacter-1)
	pipe.Expire(ctx, key, normalizeTTL(input.TTL))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store attempt %s", input.Record.AttemptID)
	}

	return &AppendOutput{Record: input.Record}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	values, err := r.client.LRange(ctx, Key(input.CharacterID), 0, int64(normalizeLimit(input.Limit)-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list attempts of %s", input.CharacterID)
	}

	records := make([]*Record, 0, len(values))
	for _, v := range values {
		var rec Record
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal attempt of %s", input.CharacterID)
		}
		records = append(records, &rec)
	}
	return &ListOutput{Records: records}, nil
}
