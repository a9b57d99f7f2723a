package main

import (
	"context"
	"fmt"
	"modwatch/commands"
	"modwatch/domain"
	"modwatch/infrastructure/platform"
	"modwatch/observability"
	"modwatch/pipeline"
	"modwatch/repositories"
	"modwatch/runtime/workers"
	"modwatch/services"
	"modwatch/sink"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer (database cleanup included)
// executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if config.Token == "" {
		return fmt.Errorf("BOT_TOKEN is not set: the bot cannot authenticate against the platform")
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB, audit archive)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories & Services
	watchlistRepository, err := repositories.NewWatchlistRepository(config.WatchlistFilepath, log)
	if err != nil {
		return fmt.Errorf("watchlist store setup failed: %w", err)
	}
	auditRepository := repositories.NewAuditRepository(db, log)
	watchlistService := services.NewWatchlistService(watchlistRepository, log)

	// 4. Gateway, Pipeline & Sinks
	gateway := platform.NewClient(config.PlatformAPIURL, config.Token, log)
	classifier := pipeline.NewClassifier(watchlistService, log)
	resolver := pipeline.NewChannelResolver(gateway, config.AuditChannelName, config.AuditChannelTopic, log)
	stats := observability.NewManager()
	auditPipeline := pipeline.NewPipeline(
		classifier,
		sink.NewChannelSink(resolver, gateway, log),
		stats,
		log,
		sink.NewDiskSink(auditRepository, log),
	)

	// 5. Workers under supervision
	messages := make(chan domain.Message, config.BufferSize)
	invocations := make(chan commands.Invocation, config.BufferSize)
	handler := commands.NewHandler(watchlistService, gateway, log)

	// Command parsing belongs to the platform front end; once the audit
	// path is done the message is handed back to it, whatever the outcome.
	forward := func(_ context.Context, msg domain.Message) {
		log.Debug("Message passed through to command front end", "message", msg.ID)
	}

	supervisor := workers.NewSupervisor(log)
	supervisor.Add(
		workers.NewPipelineWorker(auditPipeline, messages, forward, log),
		workers.NewCommandWorker(handler, invocations, log),
		workers.NewHeartbeatWorker(log, stats, config.HeartbeatInterval),
	)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go supervisor.Run(ctx)

	// 7. Webhook server for inbound platform events
	webhook := platform.NewWebhook(messages, invocations, log)
	server := &http.Server{Addr: config.ListenAddr, Handler: webhook.Router()}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting webhook server", "address", config.ListenAddr, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("webhook server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	supervisor.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
