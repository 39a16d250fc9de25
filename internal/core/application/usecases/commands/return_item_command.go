package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrReturnItemCommandIsNotConstructed = errors.New(
		"ReturnItemCommand must be created via NewReturnItemCommand constructor",
	)
)

// ReturnItemCommand represents a request to return one unit of a product
// from an order. Exactly one matching unreturned item is flipped per call.
type ReturnItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID int64

	guard guard.ConstructorGuard
}

// NewReturnItemCommand creates a command to return a product from an order.
// Validates that the order ID is valid and the product ID is positive.
func NewReturnItemCommand(orderID kernel.UUID, productID int64) (ReturnItemCommand, error) {
	returnCommand := ReturnItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnCommand.setOrderID(orderID),
		returnCommand.setProductID(productID),
	); err != nil {
		return ReturnItemCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReturnItemCommandIsNotConstructed if validation fails.
func (c ReturnItemCommand) Validate() error {
	return c.guard.Validate(ErrReturnItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order holding the item.
func (c ReturnItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product being returned.
func (c ReturnItemCommand) ProductID() int64 {
	return c.productID
}

func (c *ReturnItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReturnItemCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("%d is not greater than 0", productID),
		)
	}

	c.productID = productID
	return nil
}
