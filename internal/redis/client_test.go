package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/redis"
)

func TestOptionsValidate(t *testing.T) {
	testCases := []struct {
		name    string
		opts    *redis.Options
		wantErr string
	}{
		{name: "nil", opts: nil, wantErr: "redis options cannot be nil"},
		{name: "no address", opts: &redis.Options{}, wantErr: "addrs: is required"},
		{
			name:    "single with two addresses",
			opts:    &redis.Options{Addrs: []string{"a:6379", "b:6379"}},
			wantErr: "single mode takes one address",
		},
		{
			name:    "cluster with db",
			opts:    &redis.Options{Mode: redis.ModeCluster, Addrs: []string{"a:6379"}, DB: 2},
			wantErr: "cluster mode only has database 0",
		},
		{
			name:    "failover without master",
			opts:    &redis.Options{Mode: redis.ModeFailover, Addrs: []string{"s:26379"}},
			wantErr: "master_name: is required",
		},
		{
			name:    "unknown mode",
			opts:    &redis.Options{Mode: "sharded", Addrs: []string{"a:6379"}},
			wantErr: "mode: is invalid: sharded",
		},
		{name: "single", opts: &redis.Options{Addrs: []string{"localhost:6379"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNewPicksClientForMode(t *testing.T) {
	cluster, err := redis.New(&redis.Options{Mode: redis.ModeCluster, Addrs: []string{"a:7000", "b:7000"}})
	require.NoError(t, err)
	defer cluster.Close()
	assert.IsType(t, &goredis.ClusterClient{}, cluster)

	failover, err := redis.New(&redis.Options{
		Mode:       redis.ModeFailover,
		Addrs:      []string{"s:26379"},
		MasterName: "webfg",
	})
	require.NoError(t, err)
	defer failover.Close()
	assert.IsType(t, &goredis.Client{}, failover)
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.New(&redis.Options{Addrs: []string{mr.Addr()}})
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, redis.Ping(ctx, client, time.Second))

	mr.Close()
	err = redis.Ping(ctx, client, 200*time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}
