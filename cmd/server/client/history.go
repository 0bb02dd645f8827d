package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phnks/webfg-app-sub004/internal/handlers/engine/v1alpha1"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [character-id]",
	Short: "List a character's recent attempts, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  listHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum attempts to show")
}

func listHistory(_ *cobra.Command, args []string) error {
	client, cleanup, err := createEngineClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListAttempts(ctx, &v1alpha1.ListAttemptsRequest{CharacterID: args[0], Limit: historyLimit})
	if err != nil {
		return callError("failed to list attempts", err)
	}

	if asJSON {
		return printJSON(resp)
	}

	if len(resp.Attempts) == 0 {
		fmt.Printf("No recent attempts for %s\n", args[0])
		return nil
	}

	for _, a := range resp.Attempts {
		target := a.TargetCharacterID
		if target == "" {
			target = a.TargetObjectID
		}
		outcome := "fail"
		if a.Success {
			outcome = "ok"
		}
		fmt.Printf("%s  %-12s %-14s -> %-14s %4d  %-4s %s\n",
			a.AttemptedAt.Format("2006-01-02 15:04:05"), a.AttemptID, a.ActionName, target, a.Difficulty, outcome, a.Description)
	}
	return nil
}
