// Package repository holds the in-memory snapshot of orders and their
// products and keeps it consistent with the remote store.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/ports"
	"orderadmin/internal/pkg/errs"

	"golang.org/x/text/cases"
)

// DeletePrompt is the confirmation shown before every remote delete.
const DeletePrompt = "Are you sure?"

// OrderRepository owns the snapshot and the active order.
//
// The snapshot is replaced wholesale: a refresh fetches every order and every
// product, joins them and publishes the result in one step, so readers see
// either the old or the new snapshot. Publishing is ordered by the moment a
// refresh started; a refresh that started before the latest published one is
// discarded. The active order is kept by id and re-resolved on every read.
type OrderRepository struct {
	store     ports.RemoteStore
	confirmer ports.Confirmer
	logger    *slog.Logger

	snapshot atomic.Pointer[[]order.Order]
	tickets  atomic.Uint64

	mu        sync.Mutex
	published uint64
	activeID  order.ID
	hasActive bool
}

// NewOrderRepository creates a repository with an empty snapshot.
func NewOrderRepository(store ports.RemoteStore, confirmer ports.Confirmer, logger *slog.Logger) *OrderRepository {
	r := &OrderRepository{
		store:     store,
		confirmer: confirmer,
		logger:    logger.With("component", "order_repository"),
	}
	empty := []order.Order{}
	r.snapshot.Store(&empty)
	return r
}

// Snapshot returns the current orders with their products.
func (r *OrderRepository) Snapshot() []order.Order {
	return append([]order.Order(nil), *r.snapshot.Load()...)
}

// Refresh rebuilds the snapshot from the remote store. On failure the
// previous snapshot stays in place and a SyncError is returned.
func (r *OrderRepository) Refresh(ctx context.Context) ([]order.Order, error) {
	ticket := r.tickets.Add(1)

	orders, err := r.store.FetchOrders(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "refresh failed", "stage", "orders", "error", err)
		return nil, errs.NewSyncError(err)
	}

	products, err := r.store.FetchProducts(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "refresh failed", "stage", "products", "error", err)
		return nil, errs.NewSyncError(err)
	}

	published := r.publish(ticket, order.Join(orders, products))
	r.logger.DebugContext(ctx, "snapshot refreshed", "orders", len(published), "products", len(products))
	return append([]order.Order(nil), published...), nil
}

func (r *OrderRepository) publish(ticket uint64, orders []order.Order) []order.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ticket < r.published {
		return *r.snapshot.Load()
	}
	r.published = ticket
	r.snapshot.Store(&orders)

	if r.hasActive {
		if _, ok := order.Find(orders, r.activeID); !ok {
			r.hasActive = false
			r.activeID = 0
		}
	}
	return orders
}

// SelectActive marks the order with the given id as active.
func (r *OrderRepository) SelectActive(id order.ID) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := order.Find(*r.snapshot.Load(), id)
	if !ok {
		return order.Order{}, errs.NewObjectNotFoundError("orderId", id)
	}
	r.activeID = id
	r.hasActive = true
	return o, nil
}

// Active resolves the active order in the current snapshot.
func (r *OrderRepository) Active() (order.Order, bool) {
	r.mu.Lock()
	id, ok := r.activeID, r.hasActive
	r.mu.Unlock()

	if !ok {
		return order.Order{}, false
	}
	return order.Find(*r.snapshot.Load(), id)
}

// ActiveID returns the id of the active order.
func (r *OrderRepository) ActiveID() (order.ID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeID, r.hasActive
}

// ClearActive deselects the active order.
func (r *OrderRepository) ClearActive() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeID = 0
	r.hasActive = false
}

// FilterOrders returns the orders whose label, customer, creation date or
// ship date contains query, ignoring case. An empty query matches all.
func (r *OrderRepository) FilterOrders(query string) []order.Order {
	fold := cases.Fold()
	q := fold.String(query)

	var matched []order.Order
	for _, o := range *r.snapshot.Load() {
		if containsAny(fold, q, o.Label(), o.Summary.Customer, o.Summary.CreatedAt, o.Summary.ShippedAt) {
			matched = append(matched, o)
		}
	}
	if matched == nil {
		matched = []order.Order{}
	}
	return matched
}

// FilterProducts returns the products of the active order whose name, price
// with currency or total price with currency contains query, ignoring case.
func (r *OrderRepository) FilterProducts(query string) ([]order.Product, error) {
	active, ok := r.Active()
	if !ok {
		return nil, errs.ErrNoActiveOrder
	}

	fold := cases.Fold()
	q := fold.String(query)

	matched := []order.Product{}
	for _, p := range active.Products {
		if containsAny(fold, q, p.Name, p.PriceLabel(), p.TotalPriceLabel()) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func containsAny(fold cases.Caser, query string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(fold.String(field), query) {
			return true
		}
	}
	return false
}

// TotalPrice sums the product totals of an order; 0 when it has none.
func (r *OrderRepository) TotalPrice(id order.ID) (float64, error) {
	o, ok := order.Find(*r.snapshot.Load(), id)
	if !ok {
		return 0, errs.NewObjectNotFoundError("orderId", id)
	}
	return o.TotalPrice(), nil
}

// DeleteOrder removes an order after confirmation and refreshes the snapshot
// once the remote delete succeeded.
func (r *OrderRepository) DeleteOrder(ctx context.Context, id order.ID) error {
	if err := r.confirmDelete(ctx); err != nil {
		return err
	}
	if err := r.store.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	r.logger.InfoContext(ctx, "order deleted", "order_id", id)

	_, err := r.Refresh(ctx)
	return err
}

// DeleteProduct removes a product line after confirmation and refreshes the
// snapshot once the remote delete succeeded.
func (r *OrderRepository) DeleteProduct(ctx context.Context, orderID order.ID, productID order.ProductID) error {
	if err := r.confirmDelete(ctx); err != nil {
		return err
	}
	if err := r.store.DeleteProduct(ctx, orderID, productID); err != nil {
		return fmt.Errorf("delete product %d of order %d: %w", productID, orderID, err)
	}
	r.logger.InfoContext(ctx, "product deleted", "order_id", orderID, "product_id", productID)

	_, err := r.Refresh(ctx)
	return err
}

func (r *OrderRepository) confirmDelete(ctx context.Context) error {
	if _, ok := r.ActiveID(); !ok {
		return errs.ErrNoActiveOrder
	}

	confirmed, err := r.confirmer.Confirm(ctx, DeletePrompt)
	if err != nil {
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !confirmed {
		return errs.ErrUserDeclined
	}
	return nil
}

// CreateOrder stores a new order and refreshes the snapshot.
func (r *OrderRepository) CreateOrder(ctx context.Context, o order.Order) (order.Order, error) {
	created, err := r.store.CreateOrder(ctx, o)
	if err != nil {
		return order.Order{}, fmt.Errorf("create order: %w", err)
	}
	r.logger.InfoContext(ctx, "order created", "order_id", created.ID)

	if _, err = r.Refresh(ctx); err != nil {
		return order.Order{}, err
	}
	return created, nil
}

// CreateProduct stamps the active order on p, stores it and refreshes the
// snapshot. A product without currency inherits the order's currency.
func (r *OrderRepository) CreateProduct(ctx context.Context, p order.Product) (order.Product, error) {
	active, ok := r.Active()
	if !ok {
		return order.Product{}, errs.ErrNoActiveOrder
	}

	p.OrderID = active.ID
	if p.Currency == "" {
		p.Currency = active.Summary.Currency
	}

	created, err := r.store.CreateProduct(ctx, p)
	if err != nil {
		return order.Product{}, fmt.Errorf("create product: %w", err)
	}
	r.logger.InfoContext(ctx, "product created", "order_id", active.ID, "product_id", created.ID)

	if _, err = r.Refresh(ctx); err != nil {
		return order.Product{}, err
	}
	return created, nil
}

// SaveEdits applies draft positionally to section of the active order and
// replaces the order remotely. The snapshot only changes after the remote
// replace succeeded; on failure it still holds the unedited order.
func (r *OrderRepository) SaveEdits(ctx context.Context, section order.Section, draft []string) (order.Order, error) {
	active, ok := r.Active()
	if !ok {
		return order.Order{}, errs.ErrNoActiveOrder
	}

	edited, err := section.Apply(active, draft)
	if err != nil {
		return order.Order{}, err
	}

	if err = r.store.ReplaceOrder(ctx, active.ID, edited); err != nil {
		return order.Order{}, fmt.Errorf("replace order %d: %w", active.ID, err)
	}
	r.logger.InfoContext(ctx, "order edited", "order_id", active.ID, "section", section.String())

	r.replaceInSnapshot(r.tickets.Add(1), edited)
	return edited, nil
}

func (r *OrderRepository) replaceInSnapshot(ticket uint64, edited order.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ticket < r.published {
		return
	}
	current := *r.snapshot.Load()
	next := make([]order.Order, len(current))
	copy(next, current)
	for i := range next {
		if next[i].ID == edited.ID {
			next[i] = edited
		}
	}
	r.published = ticket
	r.snapshot.Store(&next)
}
