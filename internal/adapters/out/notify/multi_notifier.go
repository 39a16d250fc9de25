package notify

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// MultiNotifier fans one hook invocation out to several notifiers.
// Every notifier is invoked even when an earlier one fails; the joined
// error is returned so no failure goes unreported.
type MultiNotifier struct {
	notifiers []ports.Notifier
}

// NewMultiNotifier composes the given notifiers into one.
func NewMultiNotifier(notifiers ...ports.Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

// OrderCreated dispatches the order-created hook to every notifier.
func (n *MultiNotifier) OrderCreated(ctx context.Context, aggregate *order.Order) error {
	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.OrderCreated(ctx, aggregate); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ItemReturned dispatches the item-returned hook to every notifier.
func (n *MultiNotifier) ItemReturned(ctx context.Context, orderID kernel.UUID, productID int64) error {
	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.ItemReturned(ctx, orderID, productID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
