package http

import (
	"maps"
	"slices"
	"sync"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/wizard"
	"orderadmin/internal/core/domain/services"
	"orderadmin/internal/core/ports"
)

// View is the rendered admin panel as served to clients.
type View struct {
	Orders        []OrderItem            `json:"orders"`
	ActiveOrder   *ActiveOrder           `json:"activeOrder,omitempty"`
	Products      []order.Product        `json:"products"`
	Sections      map[string]SectionView `json:"sections"`
	Sort          *SortIndicator         `json:"sort,omitempty"`
	Modal         string                 `json:"modal,omitempty"`
	FieldValidity map[string]bool        `json:"fieldValidity,omitempty"`
	Steps         map[string]StepView    `json:"steps,omitempty"`
	LastError     string                 `json:"lastError,omitempty"`
}

// OrderItem is one entry of the order list.
type OrderItem struct {
	ID        order.ID `json:"id"`
	Label     string   `json:"label"`
	Customer  string   `json:"customer"`
	CreatedAt string   `json:"createdAt"`
	ShippedAt string   `json:"shippedAt"`
	Status    string   `json:"status"`
}

// ActiveOrder is the order shown in the main part of the panel.
type ActiveOrder struct {
	order.Order
	TotalPrice      float64 `json:"totalPrice"`
	TotalPriceLabel string  `json:"totalPriceLabel"`
}

// SectionView is one information tab. Fields and Values are aligned.
type SectionView struct {
	Fields   []string `json:"fields"`
	Values   []string `json:"values"`
	Editable bool     `json:"editable"`
}

type SortIndicator struct {
	Column    string `json:"column"`
	Direction string `json:"direction"`
}

// StepView is the submit and invalid-message state of a wizard panel.
type StepView struct {
	SubmitEnabled      bool `json:"submitEnabled"`
	ShowInvalidMessage bool `json:"showInvalidMessage"`
}

// ViewState implements ports.Presenter by keeping the latest rendering of
// every part of the panel.
type ViewState struct {
	mu   sync.RWMutex
	view View
}

var _ ports.Presenter = (*ViewState)(nil)

func NewViewState() *ViewState {
	return &ViewState{view: emptyView()}
}

func emptyView() View {
	return View{
		Orders:   []OrderItem{},
		Products: []order.Product{},
		Sections: map[string]SectionView{},
	}
}

// Snapshot returns a copy of the current view.
func (v *ViewState) Snapshot() View {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := v.view
	out.Orders = slices.Clone(v.view.Orders)
	out.Products = slices.Clone(v.view.Products)
	out.Sections = maps.Clone(v.view.Sections)
	out.FieldValidity = maps.Clone(v.view.FieldValidity)
	out.Steps = maps.Clone(v.view.Steps)
	if v.view.ActiveOrder != nil {
		active := *v.view.ActiveOrder
		out.ActiveOrder = &active
	}
	if v.view.Sort != nil {
		sort := *v.view.Sort
		out.Sort = &sort
	}
	return out
}

// ClearError forgets the last reported error. Called at the start of every
// intent so a response only carries its own failure.
func (v *ViewState) ClearError() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view.LastError = ""
}

func (v *ViewState) RenderOrders(orders []order.Order) {
	items := make([]OrderItem, len(orders))
	for i, o := range orders {
		items[i] = OrderItem{
			ID:        o.ID,
			Label:     o.Label(),
			Customer:  o.Summary.Customer,
			CreatedAt: o.Summary.CreatedAt,
			ShippedAt: o.Summary.ShippedAt,
			Status:    o.Summary.Status,
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.view.Orders = items
}

func (v *ViewState) RenderActiveOrder(o order.Order, totalPrice float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.view.ActiveOrder != nil && v.view.ActiveOrder.ID != o.ID {
		v.view.Sections = map[string]SectionView{}
		v.view.Sort = nil
	}
	v.view.ActiveOrder = &ActiveOrder{
		Order:           o.Clone(),
		TotalPrice:      totalPrice,
		TotalPriceLabel: order.FormatAmount(totalPrice) + " " + o.Summary.Currency,
	}
}

func (v *ViewState) ClearActiveOrder() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view.ActiveOrder = nil
	v.view.Products = []order.Product{}
	v.view.Sections = map[string]SectionView{}
	v.view.Sort = nil
}

func (v *ViewState) RenderProducts(products []order.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view.Products = append([]order.Product{}, products...)
}

func (v *ViewState) RenderSection(section order.Section, values []string, editable bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view.Sections[section.String()] = SectionView{
		Fields:   section.Fields(),
		Values:   append([]string(nil), values...),
		Editable: editable,
	}
}

func (v *ViewState) RenderSortIndicator(column int, direction services.Direction) {
	name := ""
	if columns := services.ProductColumns(); column >= 0 && column < len(columns) {
		name = columns[column].Name
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.view.Sort = &SortIndicator{Column: name, Direction: direction.String()}
}

func (v *ViewState) ShowModal(step wizard.Step) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.view.Modal == "" {
		v.view.FieldValidity = map[string]bool{}
		v.view.Steps = map[string]StepView{}
	}
	v.view.Modal = step.String()
}

func (v *ViewState) CloseModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view.Modal = ""
}

func (v *ViewState) MarkFieldValid(field wizard.FieldID, valid bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.view.FieldValidity == nil {
		v.view.FieldValidity = map[string]bool{}
	}
	v.view.FieldValidity[string(field)] = valid
}

func (v *ViewState) SetStepState(step wizard.Step, submitEnabled, showInvalidMessage bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.view.Steps == nil {
		v.view.Steps = map[string]StepView{}
	}
	v.view.Steps[step.String()] = StepView{SubmitEnabled: submitEnabled, ShowInvalidMessage: showInvalidMessage}
}

func (v *ViewState) NotifyError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view.LastError = message
}
