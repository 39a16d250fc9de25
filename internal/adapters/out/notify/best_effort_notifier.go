package notify

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// BestEffortNotifier wraps a notifier whose failures must not abort the
// business operation. Errors are logged and swallowed.
type BestEffortNotifier struct {
	inner  ports.Notifier
	logger *slog.Logger
}

// NewBestEffortNotifier wraps the given notifier.
func NewBestEffortNotifier(inner ports.Notifier, logger *slog.Logger) *BestEffortNotifier {
	return &BestEffortNotifier{
		inner:  inner,
		logger: logger.With("component", "best_effort_notifier"),
	}
}

func (n *BestEffortNotifier) OrderCreated(ctx context.Context, aggregate *order.Order) error {
	if err := n.inner.OrderCreated(ctx, aggregate); err != nil {
		n.logger.ErrorContext(ctx, "order created notification failed",
			"order_id", aggregate.ID().String(),
			"error", err)
	}
	return nil
}

func (n *BestEffortNotifier) ItemReturned(ctx context.Context, orderID kernel.UUID, productID int64) error {
	if err := n.inner.ItemReturned(ctx, orderID, productID); err != nil {
		n.logger.ErrorContext(ctx, "item returned notification failed",
			"order_id", orderID.String(),
			"product_id", productID,
			"error", err)
	}
	return nil
}
