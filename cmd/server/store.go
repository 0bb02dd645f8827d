package main

import (
	"context"
	"log/slog"

	"github.com/phnks/webfg-app-sub004/internal/config"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/pkg/clock"
	"github.com/phnks/webfg-app-sub004/internal/redis"
	"github.com/phnks/webfg-app-sub004/internal/repositories/attempts"
	"github.com/phnks/webfg-app-sub004/internal/repositories/records"
)

// stores holds the repositories backed by the configured store
type stores struct {
	Records  records.Repository
	Attempts attempts.Repository
}

// openStore connects the configured store. The returned close function is
// safe to call more than once.
func openStore(ctx context.Context, cfg *config.Config) (*stores, func(), error) {
	if cfg.Store == config.StoreMemory {
		slog.InfoContext(ctx, "Using in-memory record store")
		return &stores{
			Records:  records.NewInMemory(),
			Attempts: attempts.NewInMemory(clock.New()),
		}, func() {}, nil
	}

	client, closeFn, err := connectRedis(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	recordRepo, err := records.NewRedis(&records.RedisConfig{Client: client})
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	attemptRepo, err := attempts.NewRedis(&attempts.RedisConfig{Client: client})
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	slog.InfoContext(ctx, "Connected to redis record store",
		"mode", cfg.Redis.Mode,
		"addrs", cfg.Redis.Addrs)
	return &stores{Records: recordRepo, Attempts: attemptRepo}, closeFn, nil
}

// connectRedis creates the configured client and checks it answers
func connectRedis(ctx context.Context, cfg *config.Config) (redis.Client, func(), error) {
	client, err := redis.New(cfg.RedisOptions())
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}
	closeFn := func() {
		_ = client.Close()
	}

	if err := redis.Ping(ctx, client, cfg.Redis.PingTimeout); err != nil {
		closeFn()
		return nil, nil, err
	}
	return client, closeFn, nil
}

// seedStore loads a YAML bundle into repo
func seedStore(ctx context.Context, repo records.Repository, path string) error {
	bundle, err := records.LoadBundle(path)
	if err != nil {
		return err
	}

	if err := records.Seed(ctx, repo, bundle); err != nil {
		return errors.Wrapf(err, "failed to seed records from %s", path)
	}

	slog.InfoContext(ctx, "Seeded records",
		"path", path,
		"characters", len(bundle.Characters),
		"items", len(bundle.Items),
		"conditions", len(bundle.Conditions),
		"actions", len(bundle.Actions))
	return nil
}
