// Package main is the entry point for the order-taking service.
// It wires together all modules and starts the HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/internal/platform/eventbus"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/internal/platform/httpserver"
	platformspanner "github.com/Takeda-Takumi/domain-modeling-made-functional/internal/platform/spanner"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/notifications"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/infrastructure/address"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/infrastructure/catalog"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/infrastructure/persistence"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/transaction"
)

func main() {
	// Initialize logger
	slogOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	slogJsonHandler := slog.NewJSONHandler(os.Stdout, slogOptions)
	logger := slog.New(slogJsonHandler)
	slog.SetDefault(logger)

	logger.Info("starting order-taking service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage: Spanner when configured, in-memory otherwise.
	var (
		repo    domain.PlacedOrderRepository
		txScope transaction.Scope
	)
	if projectID := os.Getenv("SPANNER_PROJECT_ID"); projectID != "" {
		spannerCfg := platformspanner.Config{
			ProjectID:  projectID,
			InstanceID: getEnv("SPANNER_INSTANCE_ID", "local-instance"),
			DatabaseID: getEnv("SPANNER_DATABASE_ID", "ordertaking-db"),
		}

		spannerClient, err := platformspanner.NewClient(ctx, spannerCfg)
		if err != nil {
			logger.Error("failed to create spanner client", slog.Any("error", err))
			os.Exit(1)
		}
		defer spannerClient.Close()

		logger.Info("connected to spanner", slog.String("dsn", spannerCfg.DSN()))

		repo = persistence.NewSpannerRepository(spannerClient)
		txScope = platformspanner.NewReadWriteTransactionScope(spannerClient)
	} else {
		logger.Info("using in-memory storage")
		repo = persistence.NewInMemoryRepository()
		txScope = transaction.Passthrough{}
	}

	// Event handler registry (for inter-module communication)
	registry := eventbus.NewEventHandlerRegistry(logger)

	// Product catalog
	products := catalog.NewInMemoryCatalog()
	if err := seedCatalog(products); err != nil {
		logger.Error("failed to seed catalog", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize modules
	// Each module subscribes to events it cares about internally
	notificationCfg := notifications.Config{
		EventSubscriber: registry,
		Logger:          logger,
	}
	_ = notifications.New(notificationCfg)

	ordertakingCfg := ordertaking.Config{
		Repository:     repo,
		TxScope:        txScope,
		Registry:       registry,
		Catalog:        products,
		AddressChecker: address.NewChecker(),
		Logger:         logger,
	}
	ordertakingModule := ordertaking.New(ordertakingCfg)

	// Build HTTP router
	router := buildRouter(ordertakingModule)

	// Apply middleware
	handler := httpserver.Middleware(router, httpserver.Recovery(logger), httpserver.Logging(logger), httpserver.CORS([]string{"*"}))

	// Serve until SIGINT/SIGTERM; Run drains in-flight requests before
	// returning.
	server := httpserver.New(httpserver.ConfigFromEnv(), handler, logger)
	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// seedCatalog loads the demo product catalog. A production deployment
// would read prices from a catalog service instead.
func seedCatalog(products *catalog.InMemoryCatalog) error {
	seed := map[string]decimal.Decimal{
		"W100": decimal.NewFromInt(10),
		"W101": decimal.NewFromFloat(24.5),
		"W250": decimal.NewFromInt(99),
		"G123": decimal.NewFromFloat(3.75),
		"G456": decimal.NewFromFloat(12.25),
	}
	for code, price := range seed {
		if err := products.Add(code, price); err != nil {
			return err
		}
	}
	return nil
}

// buildRouter creates the main HTTP router with all module handlers.
func buildRouter(ordertakingModule ordertaking.Module) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Each module registers its own routes (same pattern as event subscriptions)
	ordertakingModule.RegisterRoutes(mux)

	return mux
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
