package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	archiveReconciliationJob *ArchiveReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution;
// an empty schedule falls back to DefaultReconcileSchedule.
func NewJobManager(
	reconcileHandler ReconcileArchivesHandler,
	reconcileSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		archiveReconciliationJob: NewArchiveReconciliationJob(reconcileHandler, reconcileSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.archiveReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start archive reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully, waiting for a running
// reconciliation pass to finish.
func (jm *JobManager) StopAll() {
	jm.archiveReconciliationJob.Stop()
}
