// Package order provides the data model of the admin panel: orders, their
// product lines and the editable sections of an order.
//
// The package includes:
//   - Order and its Summary, ShipTo and CustomerInfo blocks
//   - Product, a line item with a total price derived at creation
//   - Section, the ordered field contract used by in-place editing
//   - Join, which rebuilds the order/product relation after a fetch
//
// Key rules:
//   - Order and product ids are assigned by the remote store
//   - Every product belongs to exactly one order; orphans are dropped by Join
//   - Section values are positional and follow the declared field order
package order
