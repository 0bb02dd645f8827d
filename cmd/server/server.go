package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/phnks/webfg-app-sub004/internal/config"
	"github.com/phnks/webfg-app-sub004/internal/engine"
	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/handlers/engine/v1alpha1"
	"github.com/phnks/webfg-app-sub004/internal/orchestrators/resolution"
	"github.com/phnks/webfg-app-sub004/internal/pkg/clock"
	"github.com/phnks/webfg-app-sub004/internal/pkg/idgen"
	"github.com/phnks/webfg-app-sub004/internal/rules"
)

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the engine gRPC server backed by the configured record store.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port, overrides WEBFG_GRPC_PORT")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ruleSet, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.SeedPath != "" {
		if err := seedStore(ctx, store.Records, cfg.SeedPath); err != nil {
			return err
		}
	}

	eng, err := engine.New(&engine.Config{Rules: ruleSet})
	if err != nil {
		return err
	}

	resolutionService, err := resolution.NewOrchestrator(&resolution.Config{
		Repository:  store.Records,
		Attempts:    store.Attempts,
		Engine:      eng,
		IDGenerator: idgen.NewUUID("attempt"),
		Clock:       clock.New(),
		AttemptTTL:  cfg.AttemptTTL,
	})
	if err != nil {
		return err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ResolutionService: resolutionService,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(logger)
	healthServer := registerServices(srv, handler)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.GRPCPort,
			"store", cfg.Store,
			"fatigue_rule", ruleSet.FatigueRule)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger),
				grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_recovery.UnaryServerInterceptor(
				grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
	)
}

// registerServices installs the engine and health services. The engine
// service is JSON-coded and has no descriptor, so no reflection is offered.
func registerServices(srv *grpc.Server, handler v1alpha1.EngineServiceServer) *health.Server {
	v1alpha1.RegisterEngineServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	return healthServer
}

// interceptorLogger adapts slog to the middleware's logger; the level values
// line up one to one
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "Recovered from panic in handler", "panic", p)
	return errors.ToGRPCError(errors.Internal("internal error"))
}
