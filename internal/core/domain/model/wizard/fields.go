package wizard

import (
	"fmt"

	"orderadmin/internal/pkg/errs"
)

// Kind selects which entity a wizard creates.
type Kind int

const (
	UnknownKind Kind = iota
	OrderKind
	ProductKind
)

// Step is one panel of a wizard. Its String value is the modal identifier
// understood by the presenter.
type Step int

const (
	UnknownStep Step = iota
	SummaryStep
	ShipToStep
	CustomerStep
	ProductStep
)

// FieldID names an input of a wizard panel. Ids are qualified by their panel
// because the ship-to and customer panels both have an address.
type FieldID string

const (
	SummaryCreatedAt FieldID = "summary.createdAt"
	SummaryCustomer  FieldID = "summary.customer"
	SummaryStatus    FieldID = "summary.status"
	SummaryShippedAt FieldID = "summary.shippedAt"
	SummaryCurrency  FieldID = "summary.currency"

	ShipToName    FieldID = "ship-to.name"
	ShipToAddress FieldID = "ship-to.address"
	ShipToZIP     FieldID = "ship-to.zip"
	ShipToRegion  FieldID = "ship-to.region"
	ShipToCountry FieldID = "ship-to.country"

	CustomerFirstName FieldID = "customer.firstName"
	CustomerLastName  FieldID = "customer.lastName"
	CustomerAddress   FieldID = "customer.address"
	CustomerPhone     FieldID = "customer.phone"
	CustomerEmail     FieldID = "customer.email"

	ProductName     FieldID = "product.name"
	ProductPrice    FieldID = "product.price"
	ProductQuantity FieldID = "product.quantity"
)

var stepFields = map[Step][]FieldID{
	SummaryStep:  {SummaryCreatedAt, SummaryCustomer, SummaryStatus, SummaryShippedAt, SummaryCurrency},
	ShipToStep:   {ShipToName, ShipToAddress, ShipToZIP, ShipToRegion, ShipToCountry},
	CustomerStep: {CustomerFirstName, CustomerLastName, CustomerAddress, CustomerPhone, CustomerEmail},
	ProductStep:  {ProductName, ProductPrice, ProductQuantity},
}

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "unknown",
		OrderKind:   "order",
		ProductKind: "product",
	}
}

func getStepStrings() map[Step]string {
	return map[Step]string{
		UnknownStep:  "unknown",
		SummaryStep:  "order-summary",
		ShipToStep:   "order-ship-to",
		CustomerStep: "order-customer",
		ProductStep:  "product",
	}
}

// ParseKind maps "order" and "product" to their Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "order":
		return OrderKind, nil
	case "product":
		return ProductKind, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause("wizard kind", fmt.Errorf("%q is not a wizard kind", s))
	}
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Steps returns the panels of the wizard in navigation order.
func (k Kind) Steps() []Step {
	switch k {
	case OrderKind:
		return []Step{SummaryStep, ShipToStep, CustomerStep}
	case ProductKind:
		return []Step{ProductStep}
	default:
		return nil
	}
}

func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Fields returns the inputs of the panel in display order.
func (s Step) Fields() []FieldID {
	return append([]FieldID(nil), stepFields[s]...)
}

// Step returns the panel the field belongs to.
func (f FieldID) Step() Step {
	for step, fields := range stepFields {
		for _, field := range fields {
			if field == f {
				return step
			}
		}
	}
	return UnknownStep
}
