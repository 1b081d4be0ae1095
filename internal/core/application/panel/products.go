package panel

import (
	"context"

	"orderadmin/internal/core/domain/services"
)

// searchProducts filters the products of the active order. An empty query
// re-renders the whole table.
func (p *Panel) searchProducts(in SearchProducts) error {
	products, err := p.orders.FilterProducts(in.Query)
	if err != nil {
		return err
	}
	p.productQuery = in.Query
	p.products = products
	p.presenter.RenderProducts(products)
	return nil
}

// sortProducts sorts the rows currently on screen, so a filtered table stays
// filtered.
func (p *Panel) sortProducts(in SortProducts) error {
	if _, err := p.activeOrder(); err != nil {
		return err
	}

	result, err := p.sorter.Sort(in.Column, services.ProductRows(p.products))
	if err != nil {
		return err
	}

	p.products = services.ReorderProducts(p.products, result.Rows)
	p.presenter.RenderProducts(p.products)
	p.presenter.RenderSortIndicator(result.Column, result.Direction)
	return nil
}

func (p *Panel) deleteProduct(ctx context.Context, in DeleteProduct) error {
	active, err := p.activeOrder()
	if err != nil {
		return err
	}
	if err = p.orders.DeleteProduct(ctx, active.ID, in.ProductID); err != nil {
		return err
	}
	return p.renderActiveIfAny()
}
