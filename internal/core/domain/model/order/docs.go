// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns items and manages the order lifecycle
//   - Item: A product line within an order with a one-way returned flag
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are created with at least one item; every product ID is positive
//   - Duplicate product IDs within one order are permitted
//   - Order status follows a defined workflow: Open -> Issued (terminal)
//   - Items can be returned only while the order is Open
//   - Returning a product flips exactly one matching unreturned item per call
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
