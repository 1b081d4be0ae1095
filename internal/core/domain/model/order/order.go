package order

import (
	"strconv"
)

// ID identifies an order. It is assigned by the remote store on creation;
// the zero value means "not yet created".
type ID int

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Summary is the header block of an order.
type Summary struct {
	Customer  string `json:"customer"`
	CreatedAt string `json:"createdAt"`
	ShippedAt string `json:"shippedAt"`
	Status    string `json:"status"`
	Currency  string `json:"currency"`
}

// ShipTo is the shipping address of an order.
type ShipTo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	ZIP     string `json:"ZIP"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// CustomerInfo holds the contact data of the customer who placed the order.
type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// Order is a customer purchase record.
//
// Products is derived: the remote store keeps products in their own
// collection and Join attaches them after every fetch.
type Order struct {
	ID           ID           `json:"id,omitempty"`
	Summary      Summary      `json:"summary"`
	ShipTo       ShipTo       `json:"shipTo"`
	CustomerInfo CustomerInfo `json:"customerInfo"`
	Products     []Product    `json:"products,omitempty"`
}

// Label is the synthesized title shown in the orders list, e.g. "order 7".
func (o Order) Label() string {
	return "order " + o.ID.String()
}

// TotalPrice sums the total price of every product of the order.
// An order without products costs 0.
func (o Order) TotalPrice() float64 {
	var total float64
	for _, p := range o.Products {
		total += p.TotalPrice
	}
	return total
}

// Clone returns a copy that shares no slices with o.
func (o Order) Clone() Order {
	c := o
	if o.Products != nil {
		c.Products = make([]Product, len(o.Products))
		copy(c.Products, o.Products)
	}
	return c
}

// Find returns the order with the given id.
func Find(orders []Order, id ID) (Order, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// Join attaches every product to the order whose id equals the product's
// OrderID. Products referencing no order are dropped. The inputs are not
// modified.
func Join(orders []Order, products []Product) []Order {
	byOrder := make(map[ID][]Product, len(orders))
	for _, p := range products {
		byOrder[p.OrderID] = append(byOrder[p.OrderID], p)
	}

	joined := make([]Order, len(orders))
	for i, o := range orders {
		o.Products = byOrder[o.ID]
		if o.Products == nil {
			o.Products = []Product{}
		}
		joined[i] = o
	}
	return joined
}
