package panel

import (
	"context"
	"errors"
	"fmt"

	"orderadmin/internal/core/domain/model/wizard"
	"orderadmin/internal/pkg/errs"
)

// openWizard replaces any open wizard with a fresh one. The product wizard
// needs an active order to attach the product to.
func (p *Panel) openWizard(in OpenWizard) error {
	if in.Kind == wizard.ProductKind {
		if _, err := p.activeOrder(); err != nil {
			return err
		}
	}

	session, err := wizard.NewSession(in.Kind)
	if err != nil {
		return err
	}

	if p.wizard != nil {
		p.presenter.CloseModal()
	}
	p.wizard = session
	p.showStep()
	return nil
}

// showStep opens the modal of the current panel with the validity of every
// field and of the panel itself.
func (p *Panel) showStep() {
	step := p.wizard.Step()
	p.presenter.ShowModal(step)
	for _, field := range step.Fields() {
		p.presenter.MarkFieldValid(field, p.wizard.FieldValid(field))
	}
	p.renderStepState(step)
}

func (p *Panel) renderStepState(step wizard.Step) {
	valid := p.wizard.StepValid(step)
	p.presenter.SetStepState(step, valid, !valid)
}

func (p *Panel) setWizardField(in SetWizardField) error {
	if p.wizard == nil {
		return ErrNoOpenWizard
	}
	valid, err := p.wizard.Set(in.Field, in.Value)
	if err != nil {
		return err
	}
	p.presenter.MarkFieldValid(in.Field, valid)
	p.renderStepState(in.Field.Step())
	return nil
}

// advanceWizard moves to the next panel whether or not the current one is
// valid.
func (p *Panel) advanceWizard() error {
	if p.wizard == nil {
		return ErrNoOpenWizard
	}
	if _, err := p.wizard.Advance(); err != nil {
		return err
	}
	p.presenter.CloseModal()
	p.showStep()
	return nil
}

func (p *Panel) submitWizard(ctx context.Context) error {
	if p.wizard == nil {
		return ErrNoOpenWizard
	}
	if err := p.wizard.Validate(); err != nil {
		return err
	}
	if err := p.wizard.ValidateSubmit(); err != nil {
		if !errors.Is(err, wizard.ErrNotFinalStep) {
			p.renderStepState(p.wizard.Step())
		}
		return err
	}

	var err error
	switch p.wizard.Kind() {
	case wizard.ProductKind:
		err = p.submitProduct(ctx)
	case wizard.OrderKind:
		err = p.submitOrder(ctx)
	default:
		err = errs.NewValueIsInvalidErrorWithCause("wizard kind", fmt.Errorf("%s cannot be submitted", p.wizard.Kind()))
	}
	if err != nil {
		return err
	}

	p.teardownWizard()
	return nil
}

func (p *Panel) submitProduct(ctx context.Context) error {
	active, err := p.activeOrder()
	if err != nil {
		return err
	}

	product, err := p.wizard.ProductPayload(active.ID, active.Summary.Currency)
	if err != nil {
		return err
	}

	confirmed, err := p.confirmer.Confirm(ctx, ConfirmPrompt)
	if err != nil {
		return fmt.Errorf("confirm new product: %w", err)
	}
	if !confirmed {
		return errs.ErrUserDeclined
	}

	if _, err = p.orders.CreateProduct(ctx, product); err != nil {
		return err
	}
	p.productQuery = ""
	return p.renderActiveIfAny()
}

func (p *Panel) submitOrder(ctx context.Context) error {
	payload, err := p.wizard.OrderPayload()
	if err != nil {
		return err
	}
	if _, err = p.orders.CreateOrder(ctx, payload); err != nil {
		return err
	}

	p.presenter.RenderOrders(p.orders.FilterOrders(p.orderQuery))
	return nil
}

func (p *Panel) closeWizard() error {
	if p.wizard == nil {
		return ErrNoOpenWizard
	}
	p.teardownWizard()
	return nil
}

// teardownWizard closes the modal and drops every collected input.
func (p *Panel) teardownWizard() {
	p.wizard = nil
	p.presenter.CloseModal()
}

// OpenStep returns the panel of the open wizard.
func (p *Panel) OpenStep() (wizard.Step, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.wizard == nil {
		return wizard.UnknownStep, false
	}
	return p.wizard.Step(), true
}
