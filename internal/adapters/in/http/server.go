// Package http exposes the admin panel over JSON: clients post intents and
// read back the rendered view.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"orderadmin/internal/core/application/panel"
	"orderadmin/internal/core/domain/model/wizard"
	"orderadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Dispatcher runs one intent pipeline.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent panel.Intent) error
}

// Error is the error body of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IntentResponse is returned by every intent: the view after the pipeline
// ran and, when it failed, the error.
type IntentResponse struct {
	View     View   `json:"view"`
	Declined bool   `json:"declined,omitempty"`
	Error    *Error `json:"error,omitempty"`
}

// Server handles the panel routes.
type Server struct {
	dispatcher Dispatcher
	view       *ViewState
	logger     *slog.Logger
}

// NewServer creates a server that dispatches to dispatcher and reads the
// rendered panel from view.
func NewServer(dispatcher Dispatcher, view *ViewState, logger *slog.Logger) *Server {
	return &Server{
		dispatcher: dispatcher,
		view:       view,
		logger:     logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the panel routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/view", s.GetView)
	api.POST("/intents/:name", s.PostIntent)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetView handles GET /api/v1/view - the panel as last rendered.
func (s *Server) GetView(c echo.Context) error {
	return c.JSON(http.StatusOK, s.view.Snapshot())
}

// PostIntent handles POST /api/v1/intents/:name - runs one intent. The
// X-Confirm header answers a confirmation the intent asks for.
func (s *Server) PostIntent(c echo.Context) error {
	name := c.Param("name")
	decode, ok := intentDecoders[name]
	if !ok {
		return c.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "unknown intent: " + name,
		})
	}

	intent, err := decode(c)
	if err != nil {
		status := StatusOf(err)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		}
		return c.JSON(status, Error{Code: status, Message: "invalid request body: " + err.Error()})
	}

	ctx := WithConfirmation(c.Request().Context(), c.Request().Header.Get(ConfirmHeader))
	s.view.ClearError()
	err = s.dispatcher.Dispatch(ctx, intent)

	response := IntentResponse{View: s.view.Snapshot()}
	status := StatusOf(err)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrUserDeclined):
		response.Declined = true
	default:
		s.logger.InfoContext(ctx, "intent rejected", "intent", name, "status", status, "error", err)
		response.Error = &Error{Code: status, Message: err.Error()}
	}
	return c.JSON(status, response)
}

// StatusOf maps a pipeline error to an HTTP status. A declined confirmation
// is a normal outcome and maps to 200.
func StatusOf(err error) int {
	switch {
	case err == nil, errors.Is(err, errs.ErrUserDeclined):
		return http.StatusOK
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNoActiveOrder),
		errors.Is(err, panel.ErrNoOpenEdit),
		errors.Is(err, panel.ErrNoOpenWizard),
		errors.Is(err, wizard.ErrNotFinalStep),
		errors.Is(err, wizard.ErrNoNextStep):
		return http.StatusConflict
	case errs.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrSync), errors.Is(err, errs.ErrNetwork):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrRemoteRejection):
		return http.StatusBadGateway
	case errors.Is(err, panel.ErrUnknownIntent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
