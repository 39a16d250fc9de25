package order

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer purchase in the system. It is the aggregate root
// that owns its items and manages the order lifecycle from creation through
// issuance.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Owns at least one item; items cannot exist without their order
//   - Every item's product ID is positive; duplicates are permitted
//   - Status transitions follow defined business rules (Open -> Issued, terminal)
//   - Items may only be returned while the order is Open
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// items are the product lines owned by the order, in creation order
	items []*Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order owning one item per supplied product ID.
// This is the only way to create a valid new Order, ensuring all business
// invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - productIDs: Product identifiers, one item each (non-empty, all positive;
//     duplicates are permitted and produce distinct items)
//
// Returns:
//   - *Order: The created order in Open status if all validations pass
//   - error: Validation error if the id is invalid, the list is empty,
//     or any product ID is not positive
//
// Example:
//
//	orderID := kernel.NewUUID()
//	order, err := NewOrder(orderID, []int64{10, 20, 30})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, productIDs []int64) (*Order, error) {
	order := &Order{
		status:        Open,
		isConstructed: true,
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}

	if len(productIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("productIds")
	}

	items := make([]*Item, 0, len(productIDs))
	for _, productID := range productIDs {
		item, err := NewItem(kernel.NewUUID(), productID)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	order.items = items

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its status and items.
// Used only by repository implementations; all invariants are re-validated.
func RestoreOrder(id kernel.UUID, status Status, items []*Item) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	order.items = items

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsIssued reports whether the order has reached the terminal Issued status.
func (o *Order) IsIssued() bool {
	return o.status == Issued
}

// Items returns the order's items in creation order.
func (o *Order) Items() []*Item {
	return o.items
}

// UnreturnedProductIDs returns the product IDs of all items that have not
// been returned, in item creation order. Duplicate product IDs appear once
// per unreturned item.
func (o *Order) UnreturnedProductIDs() []int64 {
	ids := make([]int64, 0, len(o.items))
	for _, item := range o.items {
		if !item.IsReturned() {
			ids = append(ids, item.ProductID())
		}
	}
	return ids
}

// Issue marks the order as issued.
//
// This method enforces the following business rules:
//   - The order must be in Open status
//   - Issued is a final state; a second call produces a state conflict
//
// After successful issuance no further returns are permitted.
func (o *Order) Issue() error {
	newStatus, err := o.status.Issue()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReturnProduct marks one unreturned item with the given product ID as returned.
//
// This method enforces the following business rules:
//   - The product ID must be positive
//   - The order must still be Open (returns after issuance are a state conflict)
//   - An item with the product ID must exist in the order
//   - When several items share the product ID, exactly one unreturned item
//     is flipped per call, in item creation order
//   - If every matching item is already returned, the call is a state conflict
//
// Returns the item that was flipped so callers can persist the change.
//
// Example:
//
//	item, err := order.ReturnProduct(20)
//	if err != nil {
//	    // Not found, already returned, or order already issued
//	}
func (o *Order) ReturnProduct(productID int64) (*Item, error) {
	if productID <= 0 {
		return nil, errs.NewValueIsInvalidError("productId")
	}

	if err := o.status.ValidateReturn(); err != nil {
		return nil, err
	}

	found := false
	for _, item := range o.items {
		if item.ProductID() != productID {
			continue
		}
		found = true
		if item.IsReturned() {
			continue
		}
		if err := item.Return(); err != nil {
			return nil, err
		}
		return item, nil
	}

	if found {
		return nil, errs.NewStateConflictError("product already returned")
	}
	return nil, errs.NewObjectNotFoundError("productId", "product not found in order")
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}
