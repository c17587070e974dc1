// Package ordertaking provides order placement functionality.
// This is the public API for the order-taking bounded context.
package ordertaking

import (
	"log/slog"
	"net/http"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/internal/platform/eventbus"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/application/commands"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/application/queries"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/domain"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/infrastructure/acknowledgment"
	httphandler "github.com/Takeda-Takumi/domain-modeling-made-functional/modules/ordertaking/infrastructure/http"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/transaction"
)

// Module is the public API for the order-taking bounded context.
// External communication: HTTP API (RegisterRoutes)
// Cross-module communication: contract events published on placement
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given mux.
	RegisterRoutes(mux *http.ServeMux)
}

// Config holds the module configuration. Repository, TxScope, Registry,
// Catalog and AddressChecker must be provided; acknowledgment services
// default to the template renderer and the log-backed sender.
type Config struct {
	Repository     domain.PlacedOrderRepository
	TxScope        transaction.Scope
	Registry       eventbus.HandlerRegistry
	Catalog        Catalog
	AddressChecker domain.AddressChecker
	LetterCreator  domain.AcknowledgmentLetterCreator
	Sender         domain.AcknowledgmentSender
	Logger         *slog.Logger
}

// Catalog bundles the two product lookups the workflow needs. The
// in-memory catalog satisfies both.
type Catalog interface {
	domain.ProductCodeChecker
	domain.ProductPriceGetter
}

type module struct {
	placeOrderHandler *commands.PlaceOrderHandler
	getOrderHandler   *queries.GetPlacedOrderHandler
}

// New creates a new order-taking module.
func New(cfg Config) Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "ordertaking")

	letterCreator := cfg.LetterCreator
	if letterCreator == nil {
		letterCreator = acknowledgment.NewLetterCreator()
	}
	sender := cfg.Sender
	if sender == nil {
		sender = acknowledgment.NewLogSender(logger)
	}

	workflow := domain.NewPlaceOrderWorkflow(
		cfg.Catalog,
		cfg.AddressChecker,
		cfg.Catalog,
		letterCreator,
		sender,
	)

	placeOrderHandler := commands.NewPlaceOrderHandler(workflow, cfg.Repository, cfg.TxScope, cfg.Registry)
	getOrderHandler := queries.NewGetPlacedOrderHandler(cfg.Repository)

	return &module{
		placeOrderHandler: placeOrderHandler,
		getOrderHandler:   getOrderHandler,
	}
}

func (m *module) RegisterRoutes(mux *http.ServeMux) {
	httphandler.RegisterRoutes(mux, m.placeOrderHandler, m.getOrderHandler)
}
