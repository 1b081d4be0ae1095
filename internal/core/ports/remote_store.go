// Package ports declares the contracts between the orchestration core and
// its collaborators: the remote REST store, the presentation layer and the
// confirmation capability.
package ports

import (
	"context"

	"orderadmin/internal/core/domain/model/order"
)

// RemoteStore is the persistence contract of the admin panel. Orders and
// products live in a remote REST service; every call either completes or
// fails, and is never retried.
//
// Failures are errs.NetworkError when no response was received and
// errs.RemoteRejectionError when the service answered with a status >= 400.
type RemoteStore interface {
	// FetchOrders returns every order without products.
	FetchOrders(ctx context.Context) ([]order.Order, error)

	// FetchProducts returns every product of every order.
	FetchProducts(ctx context.Context) ([]order.Product, error)

	// CreateOrder stores a new order and returns it with its assigned id.
	CreateOrder(ctx context.Context, o order.Order) (order.Order, error)

	// CreateProduct stores a new product line of an existing order.
	CreateProduct(ctx context.Context, p order.Product) (order.Product, error)

	// ReplaceOrder overwrites the stored order with o.
	ReplaceOrder(ctx context.Context, id order.ID, o order.Order) error

	// DeleteOrder removes an order.
	DeleteOrder(ctx context.Context, id order.ID) error

	// DeleteProduct removes one product line of an order.
	DeleteProduct(ctx context.Context, orderID order.ID, productID order.ProductID) error
}
