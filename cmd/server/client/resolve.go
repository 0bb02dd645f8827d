package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phnks/webfg-app-sub004/internal/engine"
	"github.com/phnks/webfg-app-sub004/internal/handlers/engine/v1alpha1"
)

var (
	resolveMode        string
	resolvePrecomputed float64
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [character-id] [attribute]",
	Short: "Resolve one attribute of a character",
	Long: `Resolve a grouped attribute and show how it was built. Examples:

  resolve char-brakka ARMOUR
  resolve char-brakka ARMOUR --mode equipment
  resolve char-brakka STRENGTH --precomputed 12`,
	Args: cobra.ExactArgs(2),
	RunE: resolveAttribute,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveMode, "mode", "", "ready or equipment (default ready)")
	resolveCmd.Flags().Float64Var(&resolvePrecomputed, "precomputed", 0, "grouped value held elsewhere")
}

func resolveAttribute(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createEngineClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.ResolveAttributeRequest{
		CharacterID: args[0],
		Attribute:   args[1],
		Mode:        resolveMode,
	}
	if cmd.Flags().Changed("precomputed") {
		req.Precomputed = &resolvePrecomputed
	}

	resp, err := client.ResolveAttribute(ctx, req)
	if err != nil {
		return callError("failed to resolve attribute", err)
	}

	if asJSON {
		return printJSON(resp)
	}
	printResolution(resp.Resolution)
	return nil
}

func printResolution(r *engine.AttributeResolution) {
	fmt.Printf("%s (%s): %d\n", r.Attribute, r.Mode, r.Value)
	fmt.Printf("  Roll:  %s\n", r.Roll)
	if r.Die > 0 {
		fmt.Printf("  Range: %d to %d\n", r.Range.Min, r.Range.Max)
	}
	if r.Corrected {
		fmt.Printf("  Precomputed value was replaced\n")
	}

	for _, c := range r.Conditions {
		fmt.Printf("  Condition %s: %s %g\n", c.Name, c.Polarity, c.Amount)
	}
	for _, step := range r.Breakdown {
		fmt.Printf("  %d. %-20s %6.2f -> %d  %s\n",
			step.Step, step.EntityName, step.Value, step.DisplayTotal(), step.Formula)
	}
	for _, skipped := range r.Skipped {
		fmt.Printf("  -  %-20s skipped: %s\n", skipped.EntityName, skipped.Formula)
	}
}
