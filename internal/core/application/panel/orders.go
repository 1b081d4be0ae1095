package panel

import (
	"context"

	"orderadmin/internal/core/domain/model/editing"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"
)

func (p *Panel) loadOrders(ctx context.Context) error {
	if _, err := p.orders.Refresh(ctx); err != nil {
		return err
	}
	p.presenter.RenderOrders(p.orders.FilterOrders(p.orderQuery))
	return p.renderActiveIfAny()
}

// renderActiveIfAny re-renders the active order after a refresh. When the
// refresh removed it, an open edit is dropped and the main part is blanked.
func (p *Panel) renderActiveIfAny() error {
	if _, ok := p.orders.Active(); ok {
		return p.renderActive()
	}
	if p.edit.State() == editing.Editing {
		_, _ = p.edit.Cancel()
	}
	p.products = nil
	p.productQuery = ""
	p.presenter.ClearActiveOrder()
	return nil
}

func (p *Panel) searchOrders(in SearchOrders) error {
	p.orderQuery = in.Query
	p.presenter.RenderOrders(p.orders.FilterOrders(in.Query))
	return nil
}

func (p *Panel) selectOrder(in SelectOrder) error {
	if _, err := p.orders.SelectActive(in.ID); err != nil {
		return err
	}
	p.forceCancelEdit()
	p.productQuery = ""
	p.products = nil
	return p.renderActive()
}

func (p *Panel) switchTab(in SwitchTab) error {
	if err := in.Section.Validate(); err != nil {
		return err
	}
	p.forceCancelEdit()
	p.tab = in.Section

	active, ok := p.orders.Active()
	if !ok {
		return nil
	}
	p.renderTab(active)
	return nil
}

func (p *Panel) deleteOrder(ctx context.Context) error {
	id, ok := p.orders.ActiveID()
	if !ok {
		return errs.ErrNoActiveOrder
	}
	if err := p.orders.DeleteOrder(ctx, id); err != nil {
		return err
	}

	p.presenter.RenderOrders(p.orders.FilterOrders(p.orderQuery))
	return p.renderActiveIfAny()
}

// activeOrder resolves the active order or fails with ErrNoActiveOrder.
func (p *Panel) activeOrder() (order.Order, error) {
	active, ok := p.orders.Active()
	if !ok {
		return order.Order{}, errs.ErrNoActiveOrder
	}
	return active, nil
}
