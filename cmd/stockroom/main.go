// Stockroom - handmade goods inventory core
//
// This is the main entry point for the Stockroom service. It owns the
// embedded SQLite store and exposes the inventory service the desktop UI
// binds to: filtered views over products and components, low-stock
// reports, and stock mutations with a movement ledger.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quietloom/stockroom/internal/infrastructure/config"
	"github.com/quietloom/stockroom/internal/infrastructure/database"
	"github.com/quietloom/stockroom/internal/infrastructure/logging"
	"github.com/quietloom/stockroom/internal/inventory"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	seed := flag.Bool("seed", false, "load development seed data into the store")
	flag.Parse()

	if err := run(ctx, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
func run(ctx context.Context, seed bool) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Stockroom",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		InMemory:    cfg.Database.InMemory,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", db.Path(), "in_memory", db.InMemory())

	// Create the schema if it does not exist yet
	if err := db.InitSchema(ctx); err != nil {
		return fmt.Errorf("initialising schema: %w", err)
	}
	log.Info("database schema ready")

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	// Wire the inventory service
	repo := inventory.NewSQLiteRepository(db)
	svc := inventory.NewService(repo)
	svc.SetLogger(log.With("component", "inventory"))

	if seed {
		if err := svc.Seed(ctx, seedRows, seedOrder); err != nil {
			return fmt.Errorf("loading seed data: %w", err)
		}
		log.Info("development seed data loaded")
	}

	// Mark svc as used (the desktop UI binds to it over the service API)
	_ = svc

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("Stockroom stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses STOCKROOM_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("STOCKROOM_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// Development seed data: a small halloween-themed catalogue that exercises
// every table, loaded with -seed. Parent tables come first so foreign keys
// resolve.
var seedOrder = []string{"Design", "ProductType", "Component", "Product", "MadeUsing"}

var seedRows = map[string][][]any{
	"Design": {
		{"Web", "halloween"},
		{"Pumpkin", "halloween"},
		{"Planets", "space"},
	},
	"ProductType": {
		{"Metal chain necklace", "necklace", "metal chain"},
		{"Stud earring", "earring", "stud"},
		{"Bauble", "bauble", nil},
	},
	"Component": {
		{"Chain", 8, 5},
		{"Pendant", 12, 4},
		{"Stud back", 30, 10},
		{"String", 20, 5},
	},
	"Product": {
		{"Web necklace", "black", 3, 1, 1, 1},
		{"Pumpkin studs", "orange", 6, 2, 2, 2},
		{"Planet bauble", "yellow", 2, 1, 3, 3},
	},
	"MadeUsing": {
		{1, 1, 1},
		{1, 2, 1},
		{2, 3, 2},
		{3, 4, 1},
	},
}
