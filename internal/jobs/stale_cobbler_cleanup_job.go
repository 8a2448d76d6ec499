package jobs

import (
	"context"
	"log/slog"

	"pointofsale/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleCobblerDiscarder is the command handler the cleanup job drives.
type StaleCobblerDiscarder interface {
	Handle(ctx context.Context, cmd commands.DiscardStaleCobblersCommand) (int64, error)
}

// StaleCobblerCleanupJob periodically removes order lines that were started
// but not touched for longer than the configured age.
type StaleCobblerCleanupJob struct {
	handler  StaleCobblerDiscarder
	command  commands.DiscardStaleCobblersCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleCobblerCleanupJob creates the job. schedule is a six-field cron
// expression (seconds first).
func NewStaleCobblerCleanupJob(
	handler StaleCobblerDiscarder,
	command commands.DiscardStaleCobblersCommand,
	schedule string,
	logger *slog.Logger,
) *StaleCobblerCleanupJob {
	return &StaleCobblerCleanupJob{
		handler:  handler,
		command:  command,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_cobbler_cleanup_job"),
	}
}

// Start registers the cleanup on the schedule and starts the scheduler.
func (j *StaleCobblerCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale cobbler cleanup job started",
		"schedule", j.schedule, "older_than", j.command.OlderThan())
	return nil
}

// Run performs a single cleanup pass.
func (j *StaleCobblerCleanupJob) Run() {
	ctx := context.Background()

	removed, err := j.handler.Handle(ctx, j.command)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale cobbler cleanup job failed", "error", err)
		return
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Stale cobblers discarded", "count", removed)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *StaleCobblerCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale cobbler cleanup job stopped")
}
