// Package jobs provides scheduled background tasks for the admin panel.
//
// Jobs are cron based (github.com/robfig/cron/v3) and drive the panel through
// the same dispatcher as user requests, so a scheduled refresh is serialized
// with user intents.
//
// # Available Jobs
//
// 1. SnapshotRefreshJob - reloads orders and products from the remote store
// and re-renders the panel
//
// # Usage
//
//	jobManager := jobs.NewJobManager(panel, "@every 30s", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous snapshot stays in place; the
// next tick tries again.
package jobs
