package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// ItemRepository defines the persistence contract for individual order items.
// Items are owned by their order and are created through OrderRepository.Add;
// this repository covers per-item updates and the unreturned-items projection.
type ItemRepository interface {
	// Update persists changes to an existing item (the returned flag).
	// Updating an absent item fails.
	Update(ctx context.Context, item *order.Item) error

	// UnreturnedProductIDs returns the product ids of all items of the
	// given order whose returned flag is still false, in stable item
	// creation order. An order with every item returned yields an empty
	// slice, not an error.
	UnreturnedProductIDs(ctx context.Context, orderID kernel.UUID) ([]int64, error)
}
