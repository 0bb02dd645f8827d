package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phnks/webfg-app-sub004/internal/handlers/engine/v1alpha1"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet [character-id]",
	Short: "Show every attribute of a character in both modes",
	Args:  cobra.ExactArgs(1),
	RunE:  showSheet,
}

func showSheet(_ *cobra.Command, args []string) error {
	client, cleanup, err := createEngineClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResolveCharacter(ctx, &v1alpha1.ResolveCharacterRequest{CharacterID: args[0]})
	if err != nil {
		return callError("failed to resolve character", err)
	}

	if asJSON {
		return printJSON(resp)
	}

	fmt.Printf("%s (%s)\n", resp.Sheet.Name, resp.Sheet.CharacterID)
	fmt.Printf("%-14s %10s %10s  %s\n", "ATTRIBUTE", "EQUIPMENT", "READY", "ROLL")
	for _, entry := range resp.Sheet.Attributes {
		fmt.Printf("%-14s %10d %10d  %s\n",
			entry.Attribute, entry.Equipment.Value, entry.Ready.Value, entry.Ready.Roll)
	}
	return nil
}
