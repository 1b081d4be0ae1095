package order

import (
	"fmt"

	"orderadmin/internal/pkg/errs"
)

// Section is an editable field group of an order.
//
// Edits travel as positional value lists, so every section declares the
// exact order of its fields. Values and Apply are the only places that map
// positions to fields.
type Section int

const (
	// UnknownSection catches uninitialized Section values.
	UnknownSection Section = iota

	// ShipInfo is the shipping address block.
	ShipInfo

	// CustomerSection is the customer contact block.
	CustomerSection
)

// SectionFieldCount is the number of fields in every editable section.
const SectionFieldCount = 5

var (
	shipInfoFields = [SectionFieldCount]string{"name", "address", "ZIP", "region", "country"}
	customerFields = [SectionFieldCount]string{"firstName", "lastName", "address", "phone", "email"}
)

func getSectionStrings() map[Section]string {
	return map[Section]string{
		UnknownSection:  "unknown",
		ShipInfo:        "ship-info",
		CustomerSection: "customer-info",
	}
}

// ParseSection maps "ship-info" and "customer-info" to their Section.
func ParseSection(s string) (Section, error) {
	for section, name := range getSectionStrings() {
		if section != UnknownSection && name == s {
			return section, nil
		}
	}
	return UnknownSection, errs.NewValueIsInvalidErrorWithCause("section", fmt.Errorf("%q is not an editable section", s))
}

// String returns the wire identifier of the section.
func (s Section) String() string {
	if str, ok := getSectionStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that s is an editable section.
func (s Section) Validate() error {
	if s != ShipInfo && s != CustomerSection {
		return errs.NewValueIsInvalidErrorWithCause("section", fmt.Errorf("%d is not a valid section", s))
	}
	return nil
}

// Fields returns the declared field keys of the section, in order.
func (s Section) Fields() []string {
	switch s {
	case ShipInfo:
		return shipInfoFields[:]
	case CustomerSection:
		return customerFields[:]
	default:
		return nil
	}
}

// Values reads the section of o in declared field order.
func (s Section) Values(o Order) []string {
	switch s {
	case ShipInfo:
		return []string{o.ShipTo.Name, o.ShipTo.Address, o.ShipTo.ZIP, o.ShipTo.Region, o.ShipTo.Country}
	case CustomerSection:
		c := o.CustomerInfo
		return []string{c.FirstName, c.LastName, c.Address, c.Phone, c.Email}
	default:
		return nil
	}
}

// Apply returns a copy of o whose section fields are replaced positionally
// by values.
func (s Section) Apply(o Order, values []string) (Order, error) {
	if err := s.Validate(); err != nil {
		return Order{}, err
	}
	if len(values) != SectionFieldCount {
		return Order{}, errs.NewValueIsInvalidErrorWithCause(
			"values",
			fmt.Errorf("%s expects %d values, got %d", s, SectionFieldCount, len(values)),
		)
	}

	out := o.Clone()
	switch s {
	case ShipInfo:
		out.ShipTo = ShipTo{
			Name:    values[0],
			Address: values[1],
			ZIP:     values[2],
			Region:  values[3],
			Country: values[4],
		}
	case CustomerSection:
		out.CustomerInfo = CustomerInfo{
			FirstName: values[0],
			LastName:  values[1],
			Address:   values[2],
			Phone:     values[3],
			Email:     values[4],
		}
	}
	return out, nil
}
