package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrIssueOrderCommandIsNotConstructed = errors.New(
		"IssueOrderCommand must be created via NewIssueOrderCommand constructor",
	)
)

// IssueOrderCommand represents a request to mark an order as issued.
// Issuance is terminal; no returns are permitted afterwards.
type IssueOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIssueOrderCommand creates a command to issue an order.
// Validates that the order ID is valid.
func NewIssueOrderCommand(orderID kernel.UUID) (IssueOrderCommand, error) {
	issueCommand := IssueOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := issueCommand.setOrderID(orderID); err != nil {
		return IssueOrderCommand{}, err
	}

	return issueCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIssueOrderCommandIsNotConstructed if validation fails.
func (c IssueOrderCommand) Validate() error {
	return c.guard.Validate(ErrIssueOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to issue.
func (c IssueOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *IssueOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
