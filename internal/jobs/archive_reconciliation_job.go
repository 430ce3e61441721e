package jobs

import (
	"context"
	"log/slog"

	"tableorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs at second 0 of every fifth minute.
const DefaultReconcileSchedule = "0 */5 * * * *"

const reconcileBatchSize = 100

// ReconcileArchivesHandler is the command handler the job drives.
type ReconcileArchivesHandler interface {
	Handle(ctx context.Context, command commands.ReconcileArchivesCommand) (int, error)
}

// ArchiveReconciliationJob archives completed orders that are missing from
// the archive, one batch per tick.
type ArchiveReconciliationJob struct {
	handler  ReconcileArchivesHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewArchiveReconciliationJob uses a six-field cron schedule (with seconds).
// An empty schedule means DefaultReconcileSchedule.
func NewArchiveReconciliationJob(
	handler ReconcileArchivesHandler,
	schedule string,
	logger *slog.Logger,
) *ArchiveReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &ArchiveReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "archive_reconciliation_job"),
	}
}

// Start registers the pass with the scheduler and starts it. Overlapping
// ticks are skipped while a pass is still running.
func (j *ArchiveReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive reconciliation job started", "schedule", j.schedule)
	return nil
}

// Run performs one reconciliation pass.
func (j *ArchiveReconciliationJob) Run(ctx context.Context) {
	cmd, err := commands.NewReconcileArchivesCommand(reconcileBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Archive reconciliation job misconfigured", "error", err)
		return
	}

	archived, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Archive reconciliation job failed", "error", err)
		return
	}

	if archived > 0 {
		j.logger.InfoContext(ctx, "Archived completed orders missing from the archive", "count", archived)
	}
}

// Stop waits for a running pass to finish.
func (j *ArchiveReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Archive reconciliation job stopped")
}
