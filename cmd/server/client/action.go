package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phnks/webfg-app-sub004/internal/engine"
	"github.com/phnks/webfg-app-sub004/internal/handlers/engine/v1alpha1"
)

var (
	targetCharacter string
	targetObject    string
	actionMode      string
)

var testActionCmd = &cobra.Command{
	Use:   "test-action [action-id] [source-character-id]",
	Short: "Measure an action without rolling",
	Long: `Show difficulty, band, roll needed and the chain an action sets off. Examples:

  test-action act-hit char-brakka --target-character char-goblin
  test-action act-break char-brakka --target-object item-door --mode equipment`,
	Args: cobra.ExactArgs(2),
	RunE: testAction,
}

var attemptCmd = &cobra.Command{
	Use:   "attempt [action-id] [source-character-id]",
	Short: "Measure an action and roll for it",
	Args:  cobra.ExactArgs(2),
	RunE:  attemptAction,
}

func init() {
	for _, cmd := range []*cobra.Command{testActionCmd, attemptCmd} {
		cmd.Flags().StringVar(&targetCharacter, "target-character", "", "target character ID")
		cmd.Flags().StringVar(&targetObject, "target-object", "", "target object (item) ID")
		cmd.Flags().StringVar(&actionMode, "mode", "", "ready or equipment (default ready)")
		cmd.MarkFlagsOneRequired("target-character", "target-object")
		cmd.MarkFlagsMutuallyExclusive("target-character", "target-object")
	}
}

func actionRequest(args []string) v1alpha1.TestActionRequest {
	return v1alpha1.TestActionRequest{
		ActionID:          args[0],
		SourceCharacterID: args[1],
		TargetCharacterID: targetCharacter,
		TargetObjectID:    targetObject,
		Mode:              actionMode,
	}
}

func testAction(_ *cobra.Command, args []string) error {
	client, cleanup, err := createEngineClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := actionRequest(args)
	resp, err := client.TestAction(ctx, &req)
	if err != nil {
		return callError("failed to test action", err)
	}

	if asJSON {
		return printJSON(resp)
	}
	printTest(resp.Result)
	return nil
}

func attemptAction(_ *cobra.Command, args []string) error {
	client, cleanup, err := createEngineClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AttemptAction(ctx, &v1alpha1.AttemptActionRequest{TestActionRequest: actionRequest(args)})
	if err != nil {
		return callError("failed to attempt action", err)
	}

	if asJSON {
		return printJSON(resp)
	}
	printTest(resp.Result)

	outcome := "FAILURE"
	if resp.Attempt.Success {
		outcome = "SUCCESS"
	}
	fmt.Printf("\nAttempt %s at %s\n", resp.AttemptID, resp.AttemptedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  %s: %s\n", outcome, resp.Attempt.Description)
	return nil
}

func printTest(result *engine.TestActionOutput) {
	eval := result.Evaluation
	fmt.Printf("%s: difficulty %d (%s)\n", eval.ActionName, eval.Difficulty, eval.Band)
	fmt.Printf("  Source %s: %d, target: %d\n", eval.RollNeeded.Attribute, result.SourceValue, result.TargetValue)
	fmt.Printf("  Needed: %s (%.0f%%)\n", eval.RollNeeded.Label, eval.RollNeeded.Chance*100)

	if result.Chain == nil {
		return
	}
	fmt.Printf("\nChain (%s):\n", result.Chain.Termination)
	for _, node := range result.Chain.Nodes {
		fmt.Printf("  %d. %-16s %4d  %s\n", node.Position, node.ActionName, node.Difficulty, node.Band)
	}
}
