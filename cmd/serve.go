package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dockwatch/agent/internal/config"
	"github.com/dockwatch/agent/internal/docker"
	"github.com/dockwatch/agent/internal/engine"
	"github.com/dockwatch/agent/internal/hostmetrics"
	"github.com/dockwatch/agent/internal/server"
)

// shutdownTimeout bounds how long in-flight requests may run after SIGTERM.
const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the agent HTTP server",
	Long: `Serve starts the agent's HTTP API and blocks until interrupted.

The server comes up even when the Docker daemon is unreachable at startup:
engine-backed endpoints then answer 503 while the banner and health endpoints
keep reporting the degraded state, so the central dashboard can tell a dead
agent from a dead daemon.`,
	RunE: runServe,
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cfg == nil {
		if errConfigLoad != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", errConfigLoad)
			os.Exit(2)
		}
		return errors.New("configuration not loaded")
	}

	logger, err := buildLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	avail := initEngine(cmd.Context(), cfg, logger)
	if eng, ok := avail.Engine(); ok {
		defer func() { _ = eng.Close() }()
	}

	gin.SetMode(gin.ReleaseMode)
	router := server.New(avail, cfg.Agent.Token, logger).Router()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Agent.Host, cfg.Agent.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("agent listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	return nil
}

// initEngine connects to the Docker daemon and wraps the result in the
// availability variant. Startup failure does not abort the process; the
// transport reports the recorded reason instead.
func initEngine(ctx context.Context, cfg *config.Config, logger *zap.Logger) engine.Availability {
	cli, err := docker.NewClient(cfg.Docker.SocketPath)
	if err != nil {
		logger.Error("docker client initialization failed", zap.Error(err))
		return engine.Unavailable(fmt.Sprintf("Failed to initialize Docker client: %v", err))
	}

	if err := cli.Ping(ctx); err != nil {
		logger.Error("docker daemon unreachable", zap.Error(err))
		_ = cli.Close()
		return engine.Unavailable(fmt.Sprintf("Failed to connect to Docker daemon: %v", err))
	}

	logger.Info("docker client initialized", zap.String("socket", cfg.Docker.SocketPath))
	sampler := hostmetrics.NewSystemSampler(cfg.Host.DiskPath)
	return engine.Ready(engine.New(cli, sampler, logger))
}

func buildLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(parsed)
	return zapCfg.Build()
}
