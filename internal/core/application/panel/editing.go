package panel

import (
	"context"
	"fmt"

	"orderadmin/internal/core/domain/model/editing"
	"orderadmin/internal/pkg/errs"
)

// beginEdit opens a section of the active order. An edit that is already
// open is cancelled first.
func (p *Panel) beginEdit(in BeginEdit) error {
	active, err := p.activeOrder()
	if err != nil {
		return err
	}
	if err = in.Section.Validate(); err != nil {
		return err
	}

	p.forceCancelEdit()
	p.tab = in.Section

	if err = p.edit.Begin(in.Section, in.Section.Values(active)); err != nil {
		return err
	}
	p.presenter.RenderSection(in.Section, p.edit.Draft(), true)
	return nil
}

func (p *Panel) editField(in EditField) error {
	if !p.edit.IsOpen() {
		return ErrNoOpenEdit
	}
	return p.edit.SetDraft(in.Index, in.Value)
}

func (p *Panel) cancelEdit() error {
	if !p.edit.IsOpen() {
		return ErrNoOpenEdit
	}
	section := p.edit.Section()
	original, err := p.edit.Cancel()
	if err != nil {
		return err
	}
	p.presenter.RenderSection(section, original, false)
	return nil
}

// commitEdit asks for confirmation and persists the draft. A declined
// confirmation keeps the draft open; a failed save reopens it so the user
// can retry or cancel.
func (p *Panel) commitEdit(ctx context.Context) error {
	if p.edit.State() != editing.Editing {
		return ErrNoOpenEdit
	}

	confirmed, err := p.confirmer.Confirm(ctx, ConfirmPrompt)
	if err != nil {
		return fmt.Errorf("confirm edit: %w", err)
	}
	if !confirmed {
		return errs.ErrUserDeclined
	}

	section := p.edit.Section()
	draft, err := p.edit.RequestCommit()
	if err != nil {
		return err
	}

	edited, err := p.orders.SaveEdits(ctx, section, draft)
	if err != nil {
		if failErr := p.edit.CommitFailed(); failErr != nil {
			p.logger.WarnContext(ctx, "reopen draft failed", "error", failErr)
		}
		return err
	}
	if err = p.edit.CommitSucceeded(); err != nil {
		return err
	}

	p.presenter.RenderActiveOrder(edited, edited.TotalPrice())
	p.presenter.RenderSection(section, section.Values(edited), false)
	return nil
}
