package cmd

import (
	"log/slog"
	"net/http"

	httpadapter "orderadmin/internal/adapters/in/http"
	"orderadmin/internal/adapters/out/restclient"
	"orderadmin/internal/core/application/panel"
	"orderadmin/internal/core/application/repository"
	"orderadmin/internal/core/domain/services"
	"orderadmin/internal/jobs"
)

// CompositionRoot builds the object graph of the admin panel.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	view  *httpadapter.ViewState
	panel *panel.Panel
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	client := restclient.NewClient(
		config.RemoteBaseURL,
		&http.Client{Timeout: config.RemoteTimeout},
		logger,
	)
	confirmer := httpadapter.HeaderConfirmer{}
	orders := repository.NewOrderRepository(client, confirmer, logger)
	view := httpadapter.NewViewState()
	sorter := services.NewTableSorter(services.ProductColumns())

	return CompositionRoot{
		config: config,
		logger: logger,
		view:   view,
		panel:  panel.NewPanel(orders, view, confirmer, sorter, logger),
	}
}

func (c *CompositionRoot) Panel() *panel.Panel {
	return c.panel
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(c.panel, c.view, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.panel, c.config.RefreshSchedule, c.logger)
}
