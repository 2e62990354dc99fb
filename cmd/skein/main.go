// Skein server — agent-driven code generation: HTTP API, pipeline
// orchestration, billing ledger, and git-backed project versioning.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/skein-dev/skein/pkg/agent"
	"github.com/skein-dev/skein/pkg/api"
	"github.com/skein-dev/skein/pkg/billing"
	"github.com/skein-dev/skein/pkg/cleanup"
	"github.com/skein-dev/skein/pkg/database"
	"github.com/skein-dev/skein/pkg/gitstore"
	"github.com/skein-dev/skein/pkg/pipeline"
	"github.com/skein-dev/skein/pkg/pricing"
	"github.com/skein-dev/skein/pkg/services"
	"github.com/skein-dev/skein/pkg/settings"
	"github.com/skein-dev/skein/pkg/tools"
	"github.com/skein-dev/skein/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envPath := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	projectsRoot := getEnv("PROJECTS_ROOT", "data/projects")

	slog.Info("Starting skein",
		"version", version.Full(),
		"http_port", httpPort,
		"projects_root", projectsRoot)

	ctx := context.Background()

	// 1. Database
	dbConfig := database.LoadConfigFromEnv()
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Database ready", "path", dbConfig.Path)

	// 2. Core collaborators
	cfg := settings.New(dbClient.Client)
	engine := pricing.NewEngine(cfg)
	ledger := billing.NewLedger(dbClient.Client, engine)
	limiter := billing.NewLimiter(dbClient.Client, cfg)
	registry := agent.NewRegistry(cfg)

	versions, err := gitstore.New(projectsRoot, cfg)
	if err != nil {
		slog.Error("Failed to initialize version store", "error", err)
		os.Exit(1)
	}

	projectService := services.NewProjectService(dbClient.Client, versions)
	chatService := services.NewChatService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client)
	usageService := services.NewUsageService(dbClient.Client)
	snapshotService := services.NewSnapshotService(dbClient.Client)

	// 3. Startup recovery: orphaned provisional billing rows and runs that
	// were in flight when the previous process died.
	if swept, err := ledger.SweepOrphans(ctx); err != nil {
		slog.Error("Failed to sweep orphaned provisional usage", "error", err)
	} else if swept > 0 {
		slog.Info("Swept orphaned provisional usage rows", "count", swept)
	}
	if n, err := runService.MarkInterrupted(ctx); err != nil {
		slog.Error("Failed to mark interrupted runs", "error", err)
	} else if n > 0 {
		slog.Info("Marked interrupted runs", "count", n)
	}

	// 4. Model-call client.
	// Note: grpc.NewClient uses lazy dialing; the connection happens on the
	// first RPC call.
	modelAddr := getEnv("MODEL_SERVICE_ADDR", "localhost:50051")
	caller, err := agent.NewGRPCModelCaller(modelAddr)
	if err != nil {
		slog.Error("Failed to initialize model client", "addr", modelAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := caller.Close(); err != nil {
			slog.Error("Error closing model client", "error", err)
		}
	}()
	slog.Info("Model client initialized", "addr", modelAddr)

	// 5. Orchestrator and event bus
	bus := pipeline.NewBus()
	toolRunner := tools.NewRunner(cfg)
	orch := pipeline.New(dbClient.Client, cfg, ledger, limiter, registry, caller, versions, snapshotService, toolRunner, bus)

	// 5a. Background retention
	janitor := cleanup.NewService(cleanup.DefaultConfig(), projectService, snapshotService, versions)
	janitor.Start(ctx)
	defer janitor.Stop()

	// 6. HTTP server
	server := api.NewServer(api.Deps{
		DB:           dbClient.DB(),
		Projects:     projectService,
		Chats:        chatService,
		Runs:         runService,
		Usage:        usageService,
		Snapshots:    snapshotService,
		Settings:     cfg,
		Pricing:      engine,
		Versions:     versions,
		Orchestrator: orch,
		Bus:          bus,
	})

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Skein started successfully")

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: stop accepting requests, let in-flight runs
	// abort through their contexts.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
