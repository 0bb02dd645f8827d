package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phnks/webfg-app-sub004/internal/config"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/repositories/records"
)

var deleteCorrupt bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find stored records that no longer decode",
	Long: `Walk every record in the Redis store and report values that fail to decode
or whose ID does not match their key. With --delete the reported keys are
removed; reseed them afterwards.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&deleteCorrupt, "delete", false, "delete corrupt records")
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	if cfg.Store != config.StoreRedis {
		return errors.FailedPrecondition("scanning needs WEBFG_STORE=redis")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, closeClient, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeClient()

	out, err := records.ScanRedis(ctx, client)
	if err != nil {
		return err
	}

	fmt.Printf("Checked %d records, found %d corrupt\n", out.Checked, len(out.Corrupt))
	if len(out.Corrupt) == 0 {
		return nil
	}

	keys := make([]string, 0, len(out.Corrupt))
	for _, c := range out.Corrupt {
		fmt.Printf("  %s (%s)\n", c.Key, c.Reason)
		keys = append(keys, c.Key)
	}

	if !deleteCorrupt {
		fmt.Println("\nRun again with --delete to remove them")
		return nil
	}

	deleted, err := records.DeleteKeys(ctx, client, keys)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "Deleted corrupt records", "deleted", deleted)
	return nil
}
