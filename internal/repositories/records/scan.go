package records

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	redis "github.com/redis/go-redis/v9"

	"github.com/phnks/webfg-app-sub004/internal/entities"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	redisclient "github.com/phnks/webfg-app-sub004/internal/redis"
)

const scanBatch = 200

// Corrupt is a stored value that no longer decodes as the record its key names
type Corrupt struct {
	Key    string
	Kind   string
	Reason string
}

// ScanOutput reports one pass over the record keys
type ScanOutput struct {
	Checked int
	Corrupt []Corrupt
}

// ScanRedis walks every record key and reports values that fail to decode or
// whose ID does not match their key. Each kind lives in one hash slot, so in
// cluster mode every master is scanned.
func ScanRedis(ctx context.Context, client redisclient.Client) (*ScanOutput, error) {
	out := &ScanOutput{Corrupt: []Corrupt{}}
	var mu sync.Mutex

	for _, kind := range []string{kindCharacter, kindItem, kindCondition, kindAction} {
		pattern := Key(kind, "*")
		// ForEachMaster runs nodes concurrently
		err := forEachNode(ctx, client, func(ctx context.Context, node redis.Cmdable) error {
			checked, corrupt, err := scanNode(ctx, node, kind, pattern)
			if err != nil {
				return err
			}
			mu.Lock()
			out.Checked += checked
			out.Corrupt = append(out.Corrupt, corrupt...)
			mu.Unlock()
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s records", kind)
		}
	}
	return out, nil
}

// DeleteKeys removes the given keys one at a time and returns how many were
// deleted. Keys are deleted singly because they may span hash slots.
func DeleteKeys(ctx context.Context, client redisclient.Client, keys []string) (int, error) {
	deleted := 0
	for _, key := range keys {
		n, err := client.Del(ctx, key).Result()
		if err != nil {
			return deleted, errors.Wrapf(err, "failed to delete %s", key)
		}
		deleted += int(n)
	}
	return deleted, nil
}

func forEachNode(ctx context.Context, client redisclient.Client, fn func(context.Context, redis.Cmdable) error) error {
	if cluster, ok := client.(*redis.ClusterClient); ok {
		return cluster.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
			return fn(ctx, node)
		})
	}
	return fn(ctx, client)
}

func scanNode(ctx context.Context, node redis.Cmdable, kind, pattern string) (int, []Corrupt, error) {
	var (
		checked int
		corrupt []Corrupt
	)

	iter := node.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		checked++

		data, err := node.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return 0, nil, err
		}

		if reason := checkRecord(kind, key, data); reason != "" {
			corrupt = append(corrupt, Corrupt{Key: key, Kind: kind, Reason: reason})
		}
	}
	if err := iter.Err(); err != nil {
		return 0, nil, err
	}
	return checked, corrupt, nil
}

func checkRecord(kind, key, data string) string {
	var id string
	var err error
	switch kind {
	case kindCharacter:
		id, err = decodeID[entities.Character](data, func(c *entities.Character) string { return c.ID })
	case kindItem:
		id, err = decodeID[entities.Item](data, func(i *entities.Item) string { return i.ID })
	case kindCondition:
		id, err = decodeID[entities.Condition](data, func(c *entities.Condition) string { return c.ID })
	case kindAction:
		id, err = decodeID[entities.Action](data, func(a *entities.Action) string { return a.ID })
	}
	if err != nil {
		return "undecodable: " + err.Error()
	}

	if id != strings.TrimPrefix(key, Key(kind, "")) {
		return "id " + id + " does not match key"
	}
	return ""
}

func decodeID[T any](data string, id func(*T) string) (string, error) {
	var record T
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return "", err
	}
	return id(&record), nil
}
