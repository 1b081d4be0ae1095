package http

import (
	"orderadmin/internal/core/application/panel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/domain/model/wizard"

	"github.com/labstack/echo/v4"
)

type queryRequest struct {
	Query string `json:"query"`
}

type selectOrderRequest struct {
	ID order.ID `json:"id"`
}

type sectionRequest struct {
	Section string `json:"section"`
}

type sortRequest struct {
	Column int `json:"column"`
}

type deleteProductRequest struct {
	ProductID order.ProductID `json:"productId"`
}

type editFieldRequest struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

type openWizardRequest struct {
	Kind string `json:"kind"`
}

type wizardFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type intentDecoder func(c echo.Context) (panel.Intent, error)

// intentDecoders maps the route name of every intent to the decoder of its
// request body.
var intentDecoders = map[string]intentDecoder{
	panel.LoadOrders{}.Name():    static(panel.LoadOrders{}),
	panel.DeleteOrder{}.Name():   static(panel.DeleteOrder{}),
	panel.CancelEdit{}.Name():    static(panel.CancelEdit{}),
	panel.CommitEdit{}.Name():    static(panel.CommitEdit{}),
	panel.AdvanceWizard{}.Name(): static(panel.AdvanceWizard{}),
	panel.SubmitWizard{}.Name():  static(panel.SubmitWizard{}),
	panel.CloseWizard{}.Name():   static(panel.CloseWizard{}),

	panel.SearchOrders{}.Name(): func(c echo.Context) (panel.Intent, error) {
		var req queryRequest
		if err := c.Bind(&req); err != nil {
			return nil, err
		}
		return panel.SearchOrders{Query: req.Query}, nil
	},
	panel.SearchProducts{}.Name(): func(c echo.Context) (panel.Intent, error) {
		var req queryRequest
		if err := c.Bind(&req); err != nil {
			return nil, err
		}
		return panel.SearchProducts{Query: req.Query}, nil
	},
	panel.SelectOrder{}.Name(): func(c echo.Context) (panel.Intent, error) {
		var req selectOrderRequest
		if err := c.Bind(&req); err != nil {
			return nil, err
		}
		return panel.SelectOrder{ID: req.ID}, nil
	},
	panel.SwitchTab{}.Name(): func(c echo.Context) (panel.Intent, error) {
		section, err := bindSection(c)
		if err != nil {
			return nil, err
		}
		return panel.SwitchTab{Section: section}, nil
	},
	panel.BeginEdit{}.Name(): func(c echo.Context) (panel.Intent, error) {
		section, err := bindSection(c)
		if err != nil {
			return nil, err
		}
		return panel.BeginEdit{Section: section}, nil
	},
	panel.SortProducts{}.Name(): func(c echo.Context) (panel.Intent, error) {
		var req sortRequest
		if err := c.Bind(&req); err != nil {
			return nil, err
		}
		return panel.SortProducts{Column: req.Column}, nil
	},
	panel.DeleteProduct{}.Name(): func(c echo.Context) (panel.Intent, error) {
		var req deleteProductRequest
		if err := c.Bind(&req); err != nil {
			return nil, err
		}
		return panel.DeleteProduct{ProductID: req.ProductID}, nil
	},
	panel.EditField{}.Name(): func(c echo.Context) (panel.Intent, error) {
		var req editFieldRequest
		if err := c.Bind(&req); err != nil {
			return nil, err
		}
		return panel.EditField{Index: req.Index, Value: req.Value}, nil
	},
	panel.OpenWizard{}.Name(): func(c echo.Context) (panel.Intent, error) {
		var req openWizardRequest
		if err := c.Bind(&req); err != nil {
			return nil, err
		}
		kind, err := wizard.ParseKind(req.Kind)
		if err != nil {
			return nil, err
		}
		return panel.OpenWizard{Kind: kind}, nil
	},
	panel.SetWizardField{}.Name(): func(c echo.Context) (panel.Intent, error) {
		var req wizardFieldRequest
		if err := c.Bind(&req); err != nil {
			return nil, err
		}
		return panel.SetWizardField{Field: wizard.FieldID(req.Field), Value: req.Value}, nil
	},
}

func static(intent panel.Intent) intentDecoder {
	return func(echo.Context) (panel.Intent, error) {
		return intent, nil
	}
}

func bindSection(c echo.Context) (order.Section, error) {
	var req sectionRequest
	if err := c.Bind(&req); err != nil {
		return order.UnknownSection, err
	}
	return order.ParseSection(req.Section)
}
