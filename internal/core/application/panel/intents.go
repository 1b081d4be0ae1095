package panel

import (
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/wizard"
)

// Intent is one user action on the panel. The set of intents is closed.
type Intent interface {
	// Name is the stable identifier of the intent, e.g. "select-order".
	Name() string
	intent()
}

// LoadOrders re-fetches the snapshot and re-renders the panel.
type LoadOrders struct{}

// SearchOrders renders the orders matching Query.
type SearchOrders struct {
	Query string
}

// SelectOrder makes an order active and renders it.
type SelectOrder struct {
	ID order.ID
}

// SwitchTab shows another information section of the active order.
type SwitchTab struct {
	Section order.Section
}

// SearchProducts renders the products of the active order matching Query.
type SearchProducts struct {
	Query string
}

// SortProducts sorts the rendered product table by one column.
type SortProducts struct {
	Column int
}

// DeleteOrder deletes the active order.
type DeleteOrder struct{}

// DeleteProduct deletes one product line of the active order.
type DeleteProduct struct {
	ProductID order.ProductID
}

// BeginEdit opens a section of the active order for editing.
type BeginEdit struct {
	Section order.Section
}

// EditField changes one draft value of the open section by position.
type EditField struct {
	Index int
	Value string
}

// CancelEdit discards the draft.
type CancelEdit struct{}

// CommitEdit persists the draft after confirmation.
type CommitEdit struct{}

// OpenWizard opens a creation wizard on its first panel.
type OpenWizard struct {
	Kind wizard.Kind
}

// SetWizardField records one input of the open wizard.
type SetWizardField struct {
	Field wizard.FieldID
	Value string
}

// AdvanceWizard moves the open wizard to its next panel.
type AdvanceWizard struct{}

// SubmitWizard creates the entity described by the open wizard.
type SubmitWizard struct{}

// CloseWizard discards the open wizard.
type CloseWizard struct{}

func (LoadOrders) Name() string     { return "load-orders" }
func (SearchOrders) Name() string   { return "search-orders" }
func (SelectOrder) Name() string    { return "select-order" }
func (SwitchTab) Name() string      { return "switch-tab" }
func (SearchProducts) Name() string { return "search-products" }
func (SortProducts) Name() string   { return "sort-products" }
func (DeleteOrder) Name() string    { return "delete-order" }
func (DeleteProduct) Name() string  { return "delete-product" }
func (BeginEdit) Name() string      { return "begin-edit" }
func (EditField) Name() string      { return "edit-field" }
func (CancelEdit) Name() string     { return "cancel-edit" }
func (CommitEdit) Name() string     { return "commit-edit" }
func (OpenWizard) Name() string     { return "open-wizard" }
func (SetWizardField) Name() string { return "set-wizard-field" }
func (AdvanceWizard) Name() string  { return "advance-wizard" }
func (SubmitWizard) Name() string   { return "submit-wizard" }
func (CloseWizard) Name() string    { return "close-wizard" }

func (LoadOrders) intent()     {}
func (SearchOrders) intent()   {}
func (SelectOrder) intent()    {}
func (SwitchTab) intent()      {}
func (SearchProducts) intent() {}
func (SortProducts) intent()   {}
func (DeleteOrder) intent()    {}
func (DeleteProduct) intent()  {}
func (BeginEdit) intent()      {}
func (EditField) intent()      {}
func (CancelEdit) intent()     {}
func (CommitEdit) intent()     {}
func (OpenWizard) intent()     {}
func (SetWizardField) intent() {}
func (AdvanceWizard) intent()  {}
func (SubmitWizard) intent()   {}
func (CloseWizard) intent()    {}
