package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
)

// Item represents a single product line within an Order. It belongs to exactly
// one Order and cannot exist outside of it.
//
// Item follows these invariants:
//   - Must have a valid unique identifier
//   - Product ID must be positive (greater than 0)
//   - The returned flag is one-way: once set it never goes back
//   - Can only be created through NewItem or RestoreItem
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// productID is the identifier of the purchased product (must be positive)
	productID int64

	// returned marks the item as sent back; terminal once set
	returned bool

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a new unreturned Item with validation.
//
// Parameters:
//   - id: Unique identifier for the item (must be a valid UUID)
//   - productID: Identifier of the purchased product (must be positive)
//
// Returns the created item, or a validation error if any parameter is invalid.
func NewItem(id kernel.UUID, productID int64) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including its returned flag.
// Used only by repository implementations when materializing an order's items.
func RestoreItem(id kernel.UUID, productID int64, returned bool) (*Item, error) {
	item, err := NewItem(id, productID)
	if err != nil {
		return nil, err
	}

	item.returned = returned
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the purchased product.
func (i *Item) ProductID() int64 {
	return i.productID
}

// IsReturned reports whether the item has been sent back.
func (i *Item) IsReturned() bool {
	return i.returned
}

// Return marks the item as returned.
//
// The returned flag is terminal: a second call produces a state-conflict
// error and leaves the item unchanged.
func (i *Item) Return() error {
	if i.returned {
		return errs.NewStateConflictError("product already returned")
	}

	i.returned = true
	return nil
}

// setID validates and sets the item's unique identifier.
// This is a private method used only during construction.
func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setProductID validates and sets the item's product identifier.
// The product ID must be positive (greater than 0).
// This is a private method used only during construction.
func (i *Item) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId is invalid", fmt.Errorf("%d is not greater than 0", productID))
	}
	i.productID = productID
	return nil
}
