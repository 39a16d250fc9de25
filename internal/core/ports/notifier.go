package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// Notifier is the extension point for payment/fulfillment side effects.
// Implementations are invoked synchronously by the command handlers after the
// state change has been applied but before the transaction commits; a
// publishing failure must never silently discard the state change, so
// adapters either surface the error or log it and let the commit proceed.
type Notifier interface {
	// OrderCreated is invoked once per successfully created order.
	OrderCreated(ctx context.Context, aggregate *order.Order) error

	// ItemReturned is invoked once per successfully returned item with the
	// owning order's id and the returned product id.
	ItemReturned(ctx context.Context, orderID kernel.UUID, productID int64) error
}
