// Package wizard implements the modal creation wizards: a three panel wizard
// for new orders and a single panel wizard for new products.
//
// A field is valid when its trimmed value is not empty and a panel is valid
// when all of its fields are. Navigation between panels is free; only the
// submit on the last panel is gated by that panel's validity.
package wizard

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"
	"orderadmin/internal/pkg/guard"
)

var (
	ErrSessionIsNotConstructed = errors.New("wizard Session must be created via NewSession constructor")
	ErrNoNextStep              = errors.New("wizard has no next step")
	ErrNotFinalStep            = errors.New("wizard can only be submitted from its last step")
)

// Session holds the inputs collected by an open wizard.
type Session struct {
	kind    Kind
	steps   []Step
	current int
	values  map[FieldID]string

	guard guard.ConstructorGuard
}

// NewSession opens a wizard of the given kind on its first panel with every
// field empty.
func NewSession(kind Kind) (*Session, error) {
	steps := kind.Steps()
	if len(steps) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("wizard kind", fmt.Errorf("%d is not a wizard kind", kind))
	}

	values := make(map[FieldID]string)
	for _, step := range steps {
		for _, field := range step.Fields() {
			values[field] = ""
		}
	}

	return &Session{
		kind:   kind,
		steps:  steps,
		values: values,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the session was created through NewSession.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) Kind() Kind {
	return s.kind
}

// Step returns the panel currently shown.
func (s *Session) Step() Step {
	return s.steps[s.current]
}

// IsFinalStep reports whether the current panel is the last one.
func (s *Session) IsFinalStep() bool {
	return s.current == len(s.steps)-1
}

// Set records the value of a field and reports whether it is valid.
func (s *Session) Set(field FieldID, value string) (bool, error) {
	if _, ok := s.values[field]; !ok {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"field",
			fmt.Errorf("%s is not a field of the %s wizard", field, s.kind),
		)
	}
	s.values[field] = value
	return s.FieldValid(field), nil
}

// Value returns the raw value of a field.
func (s *Session) Value(field FieldID) string {
	return s.values[field]
}

// Values returns a copy of every collected value.
func (s *Session) Values() map[FieldID]string {
	return maps.Clone(s.values)
}

// FieldValid reports whether the trimmed value of field is not empty.
func (s *Session) FieldValid(field FieldID) bool {
	return strings.TrimSpace(s.values[field]) != ""
}

// InvalidFields lists the invalid fields of step in display order.
func (s *Session) InvalidFields(step Step) []FieldID {
	var invalid []FieldID
	for _, field := range step.Fields() {
		if !s.FieldValid(field) {
			invalid = append(invalid, field)
		}
	}
	return invalid
}

// StepValid reports whether every field of step is valid.
func (s *Session) StepValid(step Step) bool {
	return len(s.InvalidFields(step)) == 0
}

// Advance moves to the next panel regardless of the current panel's
// validity.
func (s *Session) Advance() (Step, error) {
	if s.IsFinalStep() {
		return s.Step(), ErrNoNextStep
	}
	s.current++
	return s.Step(), nil
}

// ValidateSubmit checks that the wizard is on its last panel and that the
// panel is valid. Missing values are reported as joined ValueIsRequired errors.
func (s *Session) ValidateSubmit() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.IsFinalStep() {
		return ErrNotFinalStep
	}

	var problems []error
	for _, field := range s.InvalidFields(s.Step()) {
		problems = append(problems, errs.NewValueIsRequiredError(string(field)))
	}
	return errors.Join(problems...)
}

// OrderPayload builds the order described by an order wizard.
func (s *Session) OrderPayload() (order.Order, error) {
	if s.kind != OrderKind {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("wizard kind", fmt.Errorf("%s wizard has no order", s.kind))
	}

	v := s.values
	return order.Order{
		Summary: order.Summary{
			CreatedAt: v[SummaryCreatedAt],
			Customer:  v[SummaryCustomer],
			Status:    v[SummaryStatus],
			ShippedAt: v[SummaryShippedAt],
			Currency:  v[SummaryCurrency],
		},
		ShipTo: order.ShipTo{
			Name:    v[ShipToName],
			Address: v[ShipToAddress],
			ZIP:     v[ShipToZIP],
			Region:  v[ShipToRegion],
			Country: v[ShipToCountry],
		},
		CustomerInfo: order.CustomerInfo{
			FirstName: v[CustomerFirstName],
			LastName:  v[CustomerLastName],
			Address:   v[CustomerAddress],
			Phone:     v[CustomerPhone],
			Email:     v[CustomerEmail],
		},
	}, nil
}

// ProductPayload builds the product described by a product wizard for the
// given order. The total price is derived from price and quantity.
func (s *Session) ProductPayload(orderID order.ID, currency string) (order.Product, error) {
	if s.kind != ProductKind {
		return order.Product{}, errs.NewValueIsInvalidErrorWithCause("wizard kind", fmt.Errorf("%s wizard has no product", s.kind))
	}

	price, priceErr := strconv.ParseFloat(strings.TrimSpace(s.values[ProductPrice]), 64)
	switch {
	case priceErr != nil:
		priceErr = errs.NewValueIsInvalidErrorWithCause(string(ProductPrice), priceErr)
	case math.IsNaN(price) || math.IsInf(price, 0):
		priceErr = errs.NewValueIsInvalidErrorWithCause(string(ProductPrice), fmt.Errorf("%v is not a finite number", price))
	}
	quantity, quantityErr := strconv.Atoi(strings.TrimSpace(s.values[ProductQuantity]))
	if quantityErr != nil {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(string(ProductQuantity), quantityErr)
	}
	if err := errors.Join(priceErr, quantityErr); err != nil {
		return order.Product{}, err
	}

	name := strings.TrimSpace(s.values[ProductName])
	return order.NewProduct(orderID, name, price, quantity, currency), nil
}
