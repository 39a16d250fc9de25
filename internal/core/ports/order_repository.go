// Package ports defines repository and collaborator interfaces for the order
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and locking order entities
// with their complete item set.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its items
	// in the current transaction. The order must be valid and not already
	// exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order row (the issued status).
	// It is an update, never an insert; updating an absent order fails.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// with all items fully materialized.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get but additionally takes a
	// row-level lock on the order for the duration of the active
	// transaction, so a check-then-set on the aggregate cannot race a
	// concurrent mutation of the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
