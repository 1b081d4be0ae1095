package ports

import (
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/wizard"
	"orderadmin/internal/core/domain/services"
)

// Presenter renders the panel. The core calls it after every completed
// pipeline and never reads anything back from it.
type Presenter interface {
	RenderOrders(orders []order.Order)
	RenderActiveOrder(o order.Order, totalPrice float64)
	RenderProducts(products []order.Product)

	// ClearActiveOrder blanks the main part of the panel after the active
	// order disappeared from the snapshot.
	ClearActiveOrder()

	// RenderSection shows one section of the active order, as a form when
	// editable is true.
	RenderSection(section order.Section, values []string, editable bool)

	RenderSortIndicator(column int, direction services.Direction)

	ShowModal(step wizard.Step)
	CloseModal()
	MarkFieldValid(field wizard.FieldID, valid bool)

	// SetStepState enables the submit control and toggles the invalid
	// message of a wizard panel.
	SetStepState(step wizard.Step, submitEnabled, showInvalidMessage bool)

	NotifyError(message string)
}
