package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phnks/webfg-app-sub004/internal/config"
	"github.com/phnks/webfg-app-sub004/internal/errors"
)

var seedCmd = &cobra.Command{
	Use:   "seed [records.yaml]",
	Short: "Load a YAML record bundle into the Redis store",
	Long: `Load characters, items, conditions and actions from a YAML bundle into the
configured Redis store. Existing records with the same IDs are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	if cfg.Store != config.StoreRedis {
		return errors.FailedPrecondition("seeding needs WEBFG_STORE=redis; the memory store is seeded with WEBFG_SEED_PATH")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return seedStore(ctx, store.Records, args[0])
}
