package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"message-lab/api"
	"message-lab/repositories"
	"message-lab/runtime/workers"
	"message-lab/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (database close included)
// executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Book catalog database (BadgerDB, in-memory unless a path is set)
	options := badger.DefaultOptions(config.BookDBPath).WithLoggingLevel(badger.WARNING)
	if config.BookDBPath == "" {
		options = options.WithInMemory(true)
	}
	db, err := badger.Open(options)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories & Services
	messageRepository := repositories.NewMessageRepository(log, config.MaxContentLength)
	bookRepository := repositories.NewBookRepository(db, log)
	messageService := services.NewMessageService(messageRepository)
	bookService := services.NewBookService(bookRepository)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background workers under supervision
	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	supervisor.Add(
		workers.NewStatisticsWorker(log, messageRepository, config.ReportInterval, config.RecentWindowDays),
		workers.NewHealthWorker(log, config.HealthInterval),
	)
	go supervisor.Run(ctx)

	// 6. HTTP Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	router := api.NewRouter(log, messageService, bookService)
	server := &http.Server{Addr: address, Handler: router}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	supervisor.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
