// Package redis builds go-redis clients for the record store
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phnks/webfg-app-sub004/internal/errors"
)

// Mode selects the Redis deployment the client talks to
type Mode string

// Supported deployment modes
const (
	ModeSingle   Mode = "single"
	ModeCluster  Mode = "cluster"
	ModeFailover Mode = "failover"
)

// Options configures a client. Addrs holds the node address for single
// mode, seed nodes for cluster mode and sentinels for failover mode.
type Options struct {
	Mode            Mode
	Addrs           []string
	MasterName      string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	// ReadOnly routes cluster reads to replicas
	ReadOnly bool
}

// Validate checks that the options describe a reachable deployment
func (o *Options) Validate() error {
	if o == nil {
		return errors.InvalidArgument("redis options cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if len(o.Addrs) == 0 {
		vb.RequiredField("addrs")
	}
	switch o.Mode {
	case "", ModeSingle:
		if len(o.Addrs) > 1 {
			vb.InvalidField("addrs", "single mode takes one address")
		}
	case ModeCluster:
		if o.DB != 0 {
			vb.InvalidField("db", "cluster mode only has database 0")
		}
	case ModeFailover:
		errors.ValidateRequired("master_name", o.MasterName, vb)
	default:
		vb.InvalidField("mode", string(o.Mode))
	}
	return vb.Build()
}

// New creates a client for the configured mode. go-redis connects lazily,
// so an unreachable server only shows up on first use or Ping.
func New(opts *Options) (Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var tlsConfig *tls.Config
	if opts.UseTLS {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	switch opts.Mode {
	case ModeCluster:
		return redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           opts.Addrs,
			Password:        opts.Password,
			PoolSize:        opts.PoolSize,
			MinIdleConns:    opts.MinIdleConns,
			ConnMaxIdleTime: opts.ConnMaxIdleTime,
			MaxRetries:      opts.MaxRetries,
			ReadOnly:        opts.ReadOnly,
			TLSConfig:       tlsConfig,
		}), nil
	case ModeFailover:
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:      opts.MasterName,
			SentinelAddrs:   opts.Addrs,
			Password:        opts.Password,
			DB:              opts.DB,
			PoolSize:        opts.PoolSize,
			MinIdleConns:    opts.MinIdleConns,
			ConnMaxIdleTime: opts.ConnMaxIdleTime,
			MaxRetries:      opts.MaxRetries,
			TLSConfig:       tlsConfig,
		}), nil
	default:
		return redis.NewClient(&redis.Options{
			Addr:            opts.Addrs[0],
			Password:        opts.Password,
			DB:              opts.DB,
			PoolSize:        opts.PoolSize,
			MinIdleConns:    opts.MinIdleConns,
			ConnMaxIdleTime: opts.ConnMaxIdleTime,
			MaxRetries:      opts.MaxRetries,
			TLSConfig:       tlsConfig,
		}), nil
	}
}

// Ping checks the server answers within timeout
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable")
	}
	return nil
}
