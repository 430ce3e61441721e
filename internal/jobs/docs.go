// Package jobs provides scheduled background tasks.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ArchiveReconciliationJob - archives completed orders that have no archive
// entry yet, such as orders completed by tooling that wrote to the database
// directly. It reuses the idempotent archival path of a live completion, so a
// receipt is still issued at most once per bill.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, config.ArchiveReconcileSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds first). A tick that fires
// while the previous pass is still running is skipped.
package jobs
