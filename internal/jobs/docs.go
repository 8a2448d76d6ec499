// Package jobs provides scheduled background tasks for the point-of-sale service.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// StaleCobblerCleanupJob removes Cobbler order lines that were started but
// never finished, using DiscardStaleCobblersCommandHandler.
//
// # Usage
//
//	cleanup := jobs.NewStaleCobblerCleanupJob(&handler, cmd, "0 */5 * * * *", logger)
//	jobManager := jobs.NewJobManager(cleanup)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and the next scheduled pass runs normally. A job
// that fails to start stops the jobs started before it.
package jobs
