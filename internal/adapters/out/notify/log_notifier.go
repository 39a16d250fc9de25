// Package notify provides Notifier implementations for the payment and
// fulfillment side effects triggered on order creation and item return.
// The log notifier records every hook invocation; the Kafka notifier
// publishes events for downstream payment/fulfillment consumers. The multi
// notifier fans one hook invocation out to several adapters.
package notify

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// LogNotifier records notification hook invocations via structured logging.
// It never fails, so wiring it keeps hook dispatch observable even when no
// external collaborator is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs hook invocations.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "log_notifier"),
	}
}

// OrderCreated logs the created order with its unreturned product ids.
func (n *LogNotifier) OrderCreated(ctx context.Context, aggregate *order.Order) error {
	n.logger.InfoContext(ctx, "order created",
		"order_id", aggregate.ID().String(),
		"product_ids", aggregate.UnreturnedProductIDs(),
	)
	return nil
}

// ItemReturned logs the returned product.
func (n *LogNotifier) ItemReturned(ctx context.Context, orderID kernel.UUID, productID int64) error {
	n.logger.InfoContext(ctx, "item returned",
		"order_id", orderID.String(),
		"product_id", productID,
	)
	return nil
}
