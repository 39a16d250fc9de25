package commands

import (
	"context"
)

// IssueOrderCommandHandler handles the business logic for issuing an order.
// The order is loaded under a row-level lock so a concurrent return against
// the same order resolves to one consistent outcome: either the return lands
// before issuance or it is rejected as already issued.
type IssueOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewIssueOrderCommandHandler creates a handler for issue operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewIssueOrderCommandHandler(uowFactory OrderUoWFactory) IssueOrderCommandHandler {
	return IssueOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the issue command.
// Loads and locks the order, transitions it to Issued, and persists the
// change as an update to the existing row. A second issue of the same order
// fails with a state conflict and leaves the order unchanged.
func (h IssueOrderCommandHandler) Handle(ctx context.Context, cmd IssueOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Issue(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
