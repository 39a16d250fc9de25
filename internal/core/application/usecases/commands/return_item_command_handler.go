package commands

import (
	"context"

	"orders/internal/core/ports"
)

// ReturnItemCommandHandler handles the business logic for returning a product
// from an order. The order is loaded under a row-level lock so the
// issued/returned checks and the flag flip cannot race a concurrent mutation
// of the same order.
//
// Example:
//
//	handler := NewReturnItemCommandHandler(uowFactory, notifier)
//	cmd, _ := NewReturnItemCommand(orderID, 20)
//
//	remaining, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // order absent, or product not in order
//	case errors.Is(err, errs.ErrStateConflict):
//	    // order already issued, or product already returned
//	case err != nil:
//	    // infrastructure failure
//	default:
//	    fmt.Printf("still unreturned: %v\n", remaining)
//	}
type ReturnItemCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewReturnItemCommandHandler creates a handler for item return operations.
// Requires a UoWFactory spanning order and item repositories and a Notifier
// for the item-returned hook.
func NewReturnItemCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) ReturnItemCommandHandler {
	return ReturnItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the item return command.
// Loads and locks the order, flips exactly one matching unreturned item,
// persists the change, dispatches the return notification, and returns the
// order's remaining unreturned product ids queried fresh from the item store
// inside the same transaction.
func (h ReturnItemCommandHandler) Handle(ctx context.Context, cmd ReturnItemCommand) ([]int64, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	itemRepo := uow.ItemRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	item, err := aggregate.ReturnProduct(cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	remaining, err := itemRepo.UnreturnedProductIDs(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = h.notifier.ItemReturned(ctx, aggregate.ID(), cmd.ProductID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return remaining, nil
}
