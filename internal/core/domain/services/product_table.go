package services

import (
	"slices"
	"strconv"

	"orderadmin/internal/core/domain/model/order"
)

// Product table columns, in display order.
const (
	ProductNameColumn = iota
	ProductPriceColumn
	ProductQuantityColumn
	ProductTotalColumn
)

// ProductColumns describes the product table: the name is a label column,
// every other column is numeric.
func ProductColumns() []Column {
	return []Column{
		{Name: "name"},
		{Name: "price", Numeric: true},
		{Name: "quantity", Numeric: true},
		{Name: "totalPrice", Numeric: true},
	}
}

// ProductRows renders products as table rows keyed by product id.
func ProductRows(products []order.Product) []Row {
	rows := make([]Row, len(products))
	for i, p := range products {
		rows[i] = Row{
			Key: p.ID.String(),
			Cells: []string{
				p.Name,
				p.PriceLabel(),
				strconv.Itoa(p.Quantity),
				p.TotalPriceLabel(),
			},
		}
	}
	return rows
}

// ReorderProducts returns products in the order of rows. Products without a
// row are dropped.
func ReorderProducts(products []order.Product, rows []Row) []order.Product {
	byKey := make(map[string]order.Product, len(products))
	for _, p := range products {
		byKey[p.ID.String()] = p
	}

	out := make([]order.Product, 0, len(rows))
	for _, row := range rows {
		if p, ok := byKey[row.Key]; ok {
			out = append(out, p)
		}
	}
	return out
}

// KeepProductOrder returns next arranged like prev: products present in both
// keep their relative position from prev, products new in next follow in
// their own order, and products missing from next are dropped.
func KeepProductOrder(prev, next []order.Product) []order.Product {
	rank := make(map[order.ProductID]int, len(prev))
	for i, p := range prev {
		rank[p.ID] = i
	}

	kept := make([]order.Product, 0, len(next))
	var added []order.Product
	for _, p := range next {
		if _, ok := rank[p.ID]; ok {
			kept = append(kept, p)
		} else {
			added = append(added, p)
		}
	}
	slices.SortStableFunc(kept, func(a, b order.Product) int {
		return rank[a.ID] - rank[b.ID]
	})
	return append(kept, added...)
}
