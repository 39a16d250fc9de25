// Package kernel provides shared value objects for the order management
// domain. It contains the UUID value object used as the identity of orders
// and order items.
//
// Value objects in this package are immutable, validated at construction,
// and safe for concurrent use.
package kernel
