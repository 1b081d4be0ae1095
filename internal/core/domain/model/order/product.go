package order

import (
	"strconv"
)

// ProductID identifies a product line; assigned by the remote store.
type ProductID int

func (id ProductID) String() string {
	return strconv.Itoa(int(id))
}

// Product is a line item that belongs to exactly one order.
//
// TotalPrice equals Price * Quantity when the product is created with
// NewProduct and is never recomputed afterwards.
type Product struct {
	ID         ProductID `json:"id,omitempty"`
	OrderID    ID        `json:"orderId"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Currency   string    `json:"currency"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"totalPrice"`
}

// NewProduct builds a not yet persisted product and derives its total price.
func NewProduct(orderID ID, name string, price float64, quantity int, currency string) Product {
	return Product{
		OrderID:    orderID,
		Name:       name,
		Price:      price,
		Currency:   currency,
		Quantity:   quantity,
		TotalPrice: price * float64(quantity),
	}
}

// PriceLabel renders the price with its currency, e.g. "10.5 USD".
func (p Product) PriceLabel() string {
	return FormatAmount(p.Price) + " " + p.Currency
}

// TotalPriceLabel renders the total price with its currency.
func (p Product) TotalPriceLabel() string {
	return FormatAmount(p.TotalPrice) + " " + p.Currency
}

// FormatAmount prints an amount with the shortest exact representation,
// so 10 prints as "10" and 10.5 as "10.5".
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
