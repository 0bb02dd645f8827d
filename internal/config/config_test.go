package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phnks/webfg-app-sub004/internal/config"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/redis"
)

func noDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 24*time.Hour, cfg.AttemptTTL)
	assert.Equal(t, []string{"localhost:6379"}, cfg.Redis.Addrs)
	assert.Empty(t, cfg.RulesPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WEBFG_GRPC_PORT", "6000")
	t.Setenv("WEBFG_STORE", "redis")
	t.Setenv("WEBFG_REDIS_MODE", "cluster")
	t.Setenv("WEBFG_REDIS_ADDRS", "r1:7000,r2:7000,r3:7000")
	t.Setenv("WEBFG_REDIS_PING_TIMEOUT", "2s")
	t.Setenv("WEBFG_RULES_PATH", "house_rules.yaml")

	cfg, err := config.Load(noDotenv(t))
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, 2*time.Second, cfg.Redis.PingTimeout)
	assert.Equal(t, "house_rules.yaml", cfg.RulesPath)

	opts := cfg.RedisOptions()
	assert.Equal(t, redis.ModeCluster, opts.Mode)
	assert.Equal(t, []string{"r1:7000", "r2:7000", "r3:7000"}, opts.Addrs)
	assert.Equal(t, 3, opts.MaxRetries)
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.env")
	require.NoError(t, os.WriteFile(path, []byte("WEBFG_LOG_LEVEL=debug\nWEBFG_SEED_PATH=records.yaml\n"), 0o600))
	t.Setenv("WEBFG_LOG_LEVEL", "warn")
	// Registered for cleanup so the dotenv value does not leak into other tests
	t.Setenv("WEBFG_SEED_PATH", "")
	require.NoError(t, os.Unsetenv("WEBFG_SEED_PATH"))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "records.yaml", cfg.SeedPath)
}

func TestLoadRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "port out of range",
			env:     map[string]string{"WEBFG_GRPC_PORT": "70000"},
			wantErr: "WEBFG_GRPC_PORT",
		},
		{
			name:    "zero attempt ttl",
			env:     map[string]string{"WEBFG_ATTEMPT_TTL": "0s"},
			wantErr: "WEBFG_ATTEMPT_TTL",
		},
		{
			name:    "port not a number",
			env:     map[string]string{"WEBFG_GRPC_PORT": "grpc"},
			wantErr: "failed to parse environment",
		},
		{
			name:    "unknown store",
			env:     map[string]string{"WEBFG_STORE": "postgres"},
			wantErr: "WEBFG_STORE",
		},
		{
			name:    "unknown log level",
			env:     map[string]string{"WEBFG_LOG_LEVEL": "chatty"},
			wantErr: "WEBFG_LOG_LEVEL",
		},
		{
			name: "failover without master",
			env: map[string]string{
				"WEBFG_STORE":      "redis",
				"WEBFG_REDIS_MODE": "failover",
			},
			wantErr: "master_name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(noDotenv(t))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "warn", LogFormat: config.LogFormatJSON}

	logger := cfg.NewLogger(&buf)
	logger.Info("Hidden")
	logger.Warn("Shown", "attribute", "ARMOUR")

	assert.NotContains(t, buf.String(), "Hidden")
	assert.Contains(t, buf.String(), `"attribute":"ARMOUR"`)
}
