// Package main is the entry point for the engine gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phnks/webfg-app-sub004/cmd/server/client"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "webfg-engine",
	Short: "Stat resolution and action difficulty engine",
	Long: `webfg-engine resolves grouped character attributes and measures how hard
actions are, serving both over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"},
		"dotenv files read before the environment")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
