package main

import (
	server2 "cinema-lab/grpc/server"
	pb "cinema-lab/proto/cinema"
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinema-lab/catalog"
	"cinema-lab/feed"
	"cinema-lab/random"
	"cinema-lab/runtime/workers"
	"cinema-lab/services"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() error {
	// 1. Configuration & Logger
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Catalog, delta feed and the shared seeded generator
	store, err := catalog.NewSeededStore()
	if err != nil {
		return fmt.Errorf("catalog seeding failed: %w", err)
	}
	notifier := feed.NewNotifier()
	rnd := random.NewSource(config.RandomSeed)

	// 3. Supervised background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewScreeningGeneratorWorker(
		log, store, notifier, rnd, config.GeneratorInterval, time.Now()))
	sup.Add(workers.NewSeatPurchaserWorker(
		log, store, rnd, config.PurchaserInterval))
	sup.Add(workers.NewTelemetryWorker(log, store, config.TelemetryInterval))

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 5. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer()
	cinemaService := services.NewCinemaService(log, store, notifier)
	server := server2.NewCinemaServer(log, cinemaService,
		config.DeltaCheckInterval, config.ConnectionBufferSize)
	pb.RegisterCinemaServer(s, server)

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup
	s.GracefulStop()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
