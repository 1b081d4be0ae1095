// Package restclient is the outbound adapter to the order REST service.
package restclient

import (
	"fmt"

	"orderadmin/internal/core/domain/model/order"
)

// Resource is a collection exposed by the REST service.
type Resource string

const (
	OrdersResource   Resource = "Orders"
	ProductsResource Resource = "OrderProducts"
)

// Path returns the collection path, e.g. "/Orders".
func (r Resource) Path() string {
	return "/" + string(r)
}

func orderPath(id order.ID) string {
	return fmt.Sprintf("%s/%d", OrdersResource.Path(), id)
}

func replaceOrderPath(id order.ID) string {
	return orderPath(id) + "/replace"
}

func orderProductPath(orderID order.ID, productID order.ProductID) string {
	return fmt.Sprintf("%s/products/%d", orderPath(orderID), productID)
}
