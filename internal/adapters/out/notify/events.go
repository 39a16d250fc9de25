package notify

import "time"

// EventType identifies the kind of order event published to Kafka.
type EventType string

const (
	EventTypeOrderCreated EventType = "order.created"
	EventTypeItemReturned EventType = "order.item_returned"
)

// OrderCreatedEvent is published once per created order.
// Payment systems consume it to start the charge for the listed products.
type OrderCreatedEvent struct {
	EventType  EventType `json:"event_type"`
	OrderID    string    `json:"order_id"`
	ProductIDs []int64   `json:"product_ids"`
	Timestamp  time.Time `json:"timestamp"`
}

// ItemReturnedEvent is published once per returned item.
// Payment systems consume it to refund the returned product.
type ItemReturnedEvent struct {
	EventType EventType `json:"event_type"`
	OrderID   string    `json:"order_id"`
	ProductID int64     `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderCreatedEvent creates an order-created event stamped with the current time.
func NewOrderCreatedEvent(orderID string, productIDs []int64) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		EventType:  EventTypeOrderCreated,
		OrderID:    orderID,
		ProductIDs: productIDs,
		Timestamp:  time.Now(),
	}
}

// NewItemReturnedEvent creates an item-returned event stamped with the current time.
func NewItemReturnedEvent(orderID string, productID int64) *ItemReturnedEvent {
	return &ItemReturnedEvent{
		EventType: EventTypeItemReturned,
		OrderID:   orderID,
		ProductID: productID,
		Timestamp: time.Now(),
	}
}
