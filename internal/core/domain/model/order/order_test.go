package order_test

import (
	"encoding/json"
	"testing"

	"orderadmin/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []order.Order {
	return []order.Order{
		{ID: 1, Summary: order.Summary{Customer: "Alice", Currency: "USD"}},
		{ID: 2, Summary: order.Summary{Customer: "Bob", Currency: "EUR"}},
	}
}

func TestJoin(t *testing.T) {
	t.Run("should attach products to their orders", func(t *testing.T) {
		products := []order.Product{
			{ID: 10, OrderID: 1, Name: "Pen", TotalPrice: 3},
			{ID: 11, OrderID: 2, Name: "Ink", TotalPrice: 4},
			{ID: 12, OrderID: 1, Name: "Pad", TotalPrice: 5},
		}

		joined := order.Join(sampleOrders(), products)

		require.Len(t, joined, 2)
		require.Len(t, joined[0].Products, 2)
		assert.Equal(t, order.ProductID(10), joined[0].Products[0].ID)
		assert.Equal(t, order.ProductID(12), joined[0].Products[1].ID)
		require.Len(t, joined[1].Products, 1)
		assert.Equal(t, order.ProductID(11), joined[1].Products[0].ID)
	})

	t.Run("should drop orphaned products", func(t *testing.T) {
		products := []order.Product{
			{ID: 10, OrderID: 1},
			{ID: 99, OrderID: 404},
		}

		joined := order.Join(sampleOrders(), products)

		for _, o := range joined {
			for _, p := range o.Products {
				assert.Equal(t, o.ID, p.OrderID)
				assert.NotEqual(t, order.ProductID(99), p.ID)
			}
		}
	})

	t.Run("should give orders without products an empty list", func(t *testing.T) {
		joined := order.Join(sampleOrders(), nil)

		for _, o := range joined {
			assert.NotNil(t, o.Products)
			assert.Empty(t, o.Products)
		}
	})

	t.Run("should not modify its input", func(t *testing.T) {
		orders := sampleOrders()

		_ = order.Join(orders, []order.Product{{ID: 1, OrderID: 1}})

		assert.Nil(t, orders[0].Products)
	})
}

func TestOrder_TotalPrice(t *testing.T) {
	t.Run("should sum product totals", func(t *testing.T) {
		o := order.Order{Products: []order.Product{{TotalPrice: 30}, {TotalPrice: 12.5}}}

		assert.InDelta(t, 42.5, o.TotalPrice(), 1e-9)
	})

	t.Run("should be zero without products", func(t *testing.T) {
		assert.Zero(t, order.Order{}.TotalPrice())
	})
}

func TestOrder_Label(t *testing.T) {
	assert.Equal(t, "order 7", order.Order{ID: 7}.Label())
}

func TestOrder_Clone(t *testing.T) {
	o := order.Order{ID: 1, Products: []order.Product{{Name: "Pen"}}}

	c := o.Clone()
	c.Products[0].Name = "Ink"

	assert.Equal(t, "Pen", o.Products[0].Name)
}

func TestFind(t *testing.T) {
	o, ok := order.Find(sampleOrders(), 2)
	require.True(t, ok)
	assert.Equal(t, "Bob", o.Summary.Customer)

	_, ok = order.Find(sampleOrders(), 3)
	assert.False(t, ok)
}

func TestOrder_JSON(t *testing.T) {
	t.Run("should omit id and products of a new order", func(t *testing.T) {
		raw, err := json.Marshal(order.Order{ShipTo: order.ShipTo{ZIP: "10115"}})

		require.NoError(t, err)
		assert.NotContains(t, string(raw), `"id"`)
		assert.NotContains(t, string(raw), `"products"`)
		assert.Contains(t, string(raw), `"ZIP":"10115"`)
	})

	t.Run("should decode the remote representation", func(t *testing.T) {
		raw := `{"id":3,"summary":{"customer":"Alice","createdAt":"2024-01-01","shippedAt":"2024-01-03",
			"status":"shipped","currency":"USD"},"shipTo":{"name":"A","address":"B","ZIP":"C","region":"D",
			"country":"E"},"customerInfo":{"firstName":"F","lastName":"G","address":"H","phone":"I","email":"J"}}`

		var o order.Order
		require.NoError(t, json.Unmarshal([]byte(raw), &o))

		assert.Equal(t, order.ID(3), o.ID)
		assert.Equal(t, "2024-01-03", o.Summary.ShippedAt)
		assert.Equal(t, "C", o.ShipTo.ZIP)
		assert.Equal(t, "J", o.CustomerInfo.Email)
	})
}

func TestNewProduct(t *testing.T) {
	p := order.NewProduct(5, "Pen", 10, 3, "USD")

	assert.Equal(t, order.ID(5), p.OrderID)
	assert.Zero(t, p.ID)
	assert.InDelta(t, 30.0, p.TotalPrice, 1e-9)
	assert.Equal(t, "10 USD", p.PriceLabel())
	assert.Equal(t, "30 USD", p.TotalPriceLabel())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "10", order.FormatAmount(10))
	assert.Equal(t, "10.5", order.FormatAmount(10.5))
	assert.Equal(t, "0", order.FormatAmount(0))
}
