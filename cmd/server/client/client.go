// Package client provides test commands for the engine gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/handlers/engine/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	asJSON     bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the engine",
	Long:  `Client commands exercise a running engine server with real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print the raw response as JSON")

	ClientCmd.AddCommand(resolveCmd)
	ClientCmd.AddCommand(sheetCmd)
	ClientCmd.AddCommand(testActionCmd)
	ClientCmd.AddCommand(attemptCmd)
	ClientCmd.AddCommand(historyCmd)
}

// createEngineClient creates an engine service client
func createEngineClient() (v1alpha1.EngineServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewEngineServiceClient(conn), cleanup, nil
}

// callError turns a status back into an application error so the exit
// message shows the code and message only
func callError(what string, err error) error {
	return errors.Wrap(errors.FromGRPCError(err), what)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
