// Package notifications forwards order-taking contract events to the
// downstream shipping and billing departments.
package notifications

import (
	"log/slog"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/notifications/application/eventhandlers"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events"
	"github.com/Takeda-Takumi/domain-modeling-made-functional/modules/shared/events/contracts"
)

// Module represents the notification module entry point.
type Module struct{}

type Config struct {
	EventSubscriber events.Subscriber
	Logger          *slog.Logger
}

// New initializes the notification module and subscribes to events.
func New(cfg Config) *Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "notifications")

	orderPlacedHandler := eventhandlers.NewOrderPlacedHandler(logger)
	billableHandler := eventhandlers.NewBillableOrderPlacedHandler(logger)

	if err := cfg.EventSubscriber.Subscribe(contracts.OrderPlacedEventType, orderPlacedHandler); err != nil {
		logger.Error("failed to subscribe to order placed event", slog.Any("error", err))
	}
	if err := cfg.EventSubscriber.Subscribe(contracts.BillableOrderPlacedEventType, billableHandler); err != nil {
		logger.Error("failed to subscribe to billable order placed event", slog.Any("error", err))
	}

	return &Module{}
}
