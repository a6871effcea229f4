package jobs

import (
	"context"
	"log/slog"
	"sync"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultReminderSchedule runs the reminder every day at 10:00 (seconds field first).
const DefaultReminderSchedule = "0 0 10 * * *"

type StaleParcelsHandler interface {
	Handle(ctx context.Context, query queries.GetStaleParcelsQuery) ([]queries.ParcelView, error)
}

type NotifyRecipientsHandler interface {
	Handle(ctx context.Context, cmd commands.NotifyRecipientsCommand) ([]commands.CallResult, error)
}

// ReminderCallJob calls the recipients of parcels that have been waiting longer than
// olderThanDays. A failed call is logged and the next parcel is still called.
type ReminderCallJob struct {
	stale         StaleParcelsHandler
	notify        NotifyRecipientsHandler
	schedule      string
	olderThanDays int
	cron          *cron.Cron
	logger        *slog.Logger

	// running guards against overlapping runs when a run outlasts the schedule.
	running sync.Mutex
}

func NewReminderCallJob(
	stale StaleParcelsHandler,
	notify NotifyRecipientsHandler,
	schedule string,
	olderThanDays int,
	logger *slog.Logger,
) *ReminderCallJob {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}

	return &ReminderCallJob{
		stale:         stale,
		notify:        notify,
		schedule:      schedule,
		olderThanDays: olderThanDays,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "reminder_call_job"),
	}
}

// Start registers the job on its schedule. An invalid cron expression is returned as an error.
func (j *ReminderCallJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reminder call job started",
		"schedule", j.schedule,
		"older_than_days", j.olderThanDays,
	)
	return nil
}

// Stop stops the scheduler and waits for a running reminder to finish.
func (j *ReminderCallJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reminder call job stopped")
}

// Run performs one reminder pass and returns the number of delivered calls.
// A run that starts while another is in progress is skipped.
func (j *ReminderCallJob) Run(ctx context.Context) int {
	if !j.running.TryLock() {
		j.logger.WarnContext(ctx, "Reminder call job still running, skipping")
		return 0
	}
	defer j.running.Unlock()

	query, err := queries.NewGetStaleParcelsQuery(j.olderThanDays)
	if err != nil {
		j.logger.ErrorContext(ctx, "Reminder call job misconfigured", "error", err)
		return 0
	}

	parcels, err := j.stale.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Loading stale parcels failed", "error", err)
		return 0
	}

	ids := make([]kernel.UUID, 0, len(parcels))
	for _, p := range parcels {
		if p.Phone == "" {
			j.logger.DebugContext(ctx, "Stale parcel has no phone", "parcel_id", p.ID.String())
			continue
		}
		ids = append(ids, p.ID)
	}
	if len(ids) == 0 {
		return 0
	}

	cmd, err := commands.NewNotifyRecipientsCommand(ids)
	if err != nil {
		j.logger.ErrorContext(ctx, "Building reminder command failed", "error", err)
		return 0
	}

	results, err := j.notify.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Reminder calls failed", "error", err)
		return 0
	}

	delivered := 0
	for _, r := range results {
		if r.Err != nil {
			j.logger.WarnContext(ctx, "Reminder call failed",
				"parcel_id", r.ParcelID.String(),
				"phone", r.Phone,
				"error", r.Err,
			)
			continue
		}
		delivered++
	}

	j.logger.InfoContext(ctx, "Reminder calls placed", "parcels", len(ids), "delivered", delivered)
	return delivered
}
