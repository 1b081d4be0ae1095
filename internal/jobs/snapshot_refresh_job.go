package jobs

import (
	"context"
	"log/slog"

	"orderadmin/internal/core/application/panel"

	"github.com/robfig/cron/v3"
)

// Dispatcher runs one panel intent.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent panel.Intent) error
}

// SnapshotRefreshJob reloads the order snapshot on a schedule so the panel
// picks up changes made by other operators.
type SnapshotRefreshJob struct {
	dispatcher Dispatcher
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSnapshotRefreshJob creates a job that dispatches LoadOrders on schedule.
// The schedule is a standard cron spec or a descriptor such as "@every 30s".
func NewSnapshotRefreshJob(dispatcher Dispatcher, schedule string, logger *slog.Logger) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{
		dispatcher: dispatcher,
		schedule:   schedule,
		cron:       cron.New(),
		logger:     logger.With("component", "snapshot_refresh_job"),
	}
}

// Start registers the refresh and starts the scheduler. An empty schedule
// disables the job.
func (j *SnapshotRefreshJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Snapshot refresh job disabled")
		return nil
	}
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot refresh job started", "schedule", j.schedule)
	return nil
}

// Run performs one refresh.
func (j *SnapshotRefreshJob) Run() {
	ctx := context.Background()
	if err := j.dispatcher.Dispatch(ctx, panel.LoadOrders{}); err != nil {
		// The previous snapshot stays on screen; the next tick retries.
		j.logger.ErrorContext(ctx, "Snapshot refresh job failed", "error", err)
	}
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *SnapshotRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot refresh job stopped")
}
