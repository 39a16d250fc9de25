// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and project persisted state
// directly into response shapes.
package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every persisted order with its currently
// unreturned product ids. Issued orders are included; fully returned orders
// appear with an empty product list.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	summaries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	for _, summary := range summaries {
//	    fmt.Printf("order %s: %v\n", summary.OrderID, summary.UnreturnedProductIDs)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to list all orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse is the external-facing summary of one order:
// its identifier and the product ids of all items not yet returned,
// in stable item creation order.
type GetAllOrdersQueryResponse struct {
	OrderID              kernel.UUID
	UnreturnedProductIDs []int64
}
