// Package config reads server settings from the environment
package config

import (
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/redis"
)

// Record store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Log output formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds everything the server needs at startup
type Config struct {
	GRPCPort        int           `env:"WEBFG_GRPC_PORT" envDefault:"50051"`
	LogLevel        string        `env:"WEBFG_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"WEBFG_LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"WEBFG_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// RulesPath points at a YAML rule set replacing the built-in one
	RulesPath string `env:"WEBFG_RULES_PATH"`
	Store     string `env:"WEBFG_STORE" envDefault:"memory"`
	// SeedPath is a YAML record bundle loaded into the store at startup
	SeedPath string `env:"WEBFG_SEED_PATH"`
	// AttemptTTL is how long a character's attempt history outlives its
	// last attempt
	AttemptTTL time.Duration `env:"WEBFG_ATTEMPT_TTL" envDefault:"24h"`

	Redis RedisConfig `envPrefix:"WEBFG_REDIS_"`
}

// RedisConfig is read when Store is redis
type RedisConfig struct {
	Mode        string        `env:"MODE" envDefault:"single"`
	Addrs       []string      `env:"ADDRS" envSeparator:"," envDefault:"localhost:6379"`
	MasterName  string        `env:"MASTER_NAME"`
	Password    string        `env:"PASSWORD"`
	DB          int           `env:"DB"`
	PoolSize    int           `env:"POOL_SIZE"`
	MaxRetries  int           `env:"MAX_RETRIES" envDefault:"3"`
	UseTLS      bool          `env:"TLS"`
	PingTimeout time.Duration `env:"PING_TIMEOUT" envDefault:"5s"`
}

// Load reads dotenv files, then the environment. Variables already set in
// the environment win over dotenv values. Missing dotenv files are ignored.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, path := range dotenvFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read "+path)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		vb.Fieldf("WEBFG_GRPC_PORT", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.InvalidField("WEBFG_LOG_LEVEL", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		vb.InvalidField("WEBFG_LOG_FORMAT", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		vb.Field("WEBFG_SHUTDOWN_TIMEOUT", "must be positive")
	}
	if c.AttemptTTL <= 0 {
		vb.Field("WEBFG_ATTEMPT_TTL", "must be positive")
	}

	switch c.Store {
	case StoreMemory:
	case StoreRedis:
		if err := c.RedisOptions().Validate(); err != nil {
			vb.InvalidField("WEBFG_REDIS", errors.GetMessage(err))
		}
	default:
		vb.InvalidField("WEBFG_STORE", c.Store)
	}
	return vb.Build()
}

// RedisOptions converts the Redis settings for the client factory
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Mode:       redis.Mode(c.Redis.Mode),
		Addrs:      c.Redis.Addrs,
		MasterName: c.Redis.MasterName,
		Password:   c.Redis.Password,
		DB:         c.Redis.DB,
		PoolSize:   c.Redis.PoolSize,
		MaxRetries: c.Redis.MaxRetries,
		UseTLS:     c.Redis.UseTLS,
	}
}

// NewLogger builds the process logger
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	return level, err
}
