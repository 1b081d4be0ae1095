// Package panel is the single dispatcher of the admin panel. Every user
// action arrives as an Intent and runs one pipeline: mutate through the
// repository, refresh the snapshot, then render through the presenter.
//
// Dispatch calls are serialized, so a pipeline never observes another one
// half way. Later steps of a pipeline are skipped when an earlier one fails.
package panel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"orderadmin/internal/core/application/repository"
	"orderadmin/internal/core/domain/model/editing"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/wizard"
	"orderadmin/internal/core/domain/services"
	"orderadmin/internal/core/ports"
	"orderadmin/internal/pkg/errs"
)

// ConfirmPrompt is asked before persisting an edit or a new product.
const ConfirmPrompt = "Are you sure?"

var (
	ErrNoOpenWizard  = errors.New("no wizard is open")
	ErrNoOpenEdit    = errors.New("no section is being edited")
	ErrUnknownIntent = errors.New("unknown intent")
)

// Panel routes intents to their pipelines and owns the transient UI state:
// the editing session, the open wizard, the selected tab and the product
// rows currently on screen.
type Panel struct {
	orders    *repository.OrderRepository
	presenter ports.Presenter
	confirmer ports.Confirmer
	sorter    *services.TableSorter
	logger    *slog.Logger

	mu           sync.Mutex
	edit         *editing.Session
	wizard       *wizard.Session
	tab          order.Section
	orderQuery   string
	productQuery string
	products     []order.Product
}

// NewPanel wires a panel. The product table layout is taken from sorter.
func NewPanel(
	orders *repository.OrderRepository,
	presenter ports.Presenter,
	confirmer ports.Confirmer,
	sorter *services.TableSorter,
	logger *slog.Logger,
) *Panel {
	return &Panel{
		orders:    orders,
		presenter: presenter,
		confirmer: confirmer,
		sorter:    sorter,
		logger:    logger.With("component", "panel"),
		edit:      editing.NewSession(),
		tab:       order.ShipInfo,
	}
}

// Dispatch runs the pipeline of intent. Every error except a declined
// confirmation is reported through the presenter; all errors, declined
// included, are returned to the caller.
func (p *Panel) Dispatch(ctx context.Context, intent Intent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if intent == nil {
		p.logger.ErrorContext(ctx, "intent failed", "error", ErrUnknownIntent)
		p.presenter.NotifyError(ErrUnknownIntent.Error())
		return ErrUnknownIntent
	}

	err := p.handle(ctx, intent)
	switch {
	case err == nil:
		p.logger.DebugContext(ctx, "intent handled", "intent", intent.Name())
	case errors.Is(err, errs.ErrUserDeclined):
		p.logger.InfoContext(ctx, "intent declined", "intent", intent.Name())
	default:
		p.logger.ErrorContext(ctx, "intent failed", "intent", intent.Name(), "error", err)
		p.presenter.NotifyError(err.Error())
	}
	return err
}

func (p *Panel) handle(ctx context.Context, intent Intent) error {
	switch in := intent.(type) {
	case LoadOrders:
		return p.loadOrders(ctx)
	case SearchOrders:
		return p.searchOrders(in)
	case SelectOrder:
		return p.selectOrder(in)
	case SwitchTab:
		return p.switchTab(in)
	case SearchProducts:
		return p.searchProducts(in)
	case SortProducts:
		return p.sortProducts(in)
	case DeleteOrder:
		return p.deleteOrder(ctx)
	case DeleteProduct:
		return p.deleteProduct(ctx, in)
	case BeginEdit:
		return p.beginEdit(in)
	case EditField:
		return p.editField(in)
	case CancelEdit:
		return p.cancelEdit()
	case CommitEdit:
		return p.commitEdit(ctx)
	case OpenWizard:
		return p.openWizard(in)
	case SetWizardField:
		return p.setWizardField(in)
	case AdvanceWizard:
		return p.advanceWizard()
	case SubmitWizard:
		return p.submitWizard(ctx)
	case CloseWizard:
		return p.closeWizard()
	default:
		return fmt.Errorf("%w: %T", ErrUnknownIntent, intent)
	}
}

// renderActive shows the active order: header with total, the selected tab
// and the product table filtered by the current product query. Products
// already on screen keep their position, so a refresh does not undo a sort.
func (p *Panel) renderActive() error {
	active, ok := p.orders.Active()
	if !ok {
		return errs.ErrNoActiveOrder
	}

	p.presenter.RenderActiveOrder(active, active.TotalPrice())
	p.renderTab(active)

	products, err := p.orders.FilterProducts(p.productQuery)
	if err != nil {
		return err
	}
	p.products = services.KeepProductOrder(p.products, products)
	p.presenter.RenderProducts(p.products)
	return nil
}

func (p *Panel) renderTab(active order.Order) {
	if p.edit.IsOpen() && p.edit.Section() == p.tab {
		p.presenter.RenderSection(p.tab, p.edit.Draft(), true)
		return
	}
	p.presenter.RenderSection(p.tab, p.tab.Values(active), false)
}

// forceCancelEdit closes an open edit and restores the original values on
// screen. Used before anything that replaces the displayed section.
func (p *Panel) forceCancelEdit() {
	if p.edit.State() != editing.Editing {
		return
	}
	section := p.edit.Section()
	original, err := p.edit.Cancel()
	if err != nil {
		p.logger.Warn("force cancel failed", "error", err)
		return
	}
	p.presenter.RenderSection(section, original, false)
}
