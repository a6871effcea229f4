// Package jobs provides scheduled background tasks for the depot.
//
// Jobs use github.com/robfig/cron/v3 with the seconds field enabled, so schedules
// have six fields: "0 0 10 * * *" is every day at 10:00.
//
// # Available Jobs
//
// 1. ReminderCallJob - calls the recipients of parcels that have waited longer than
// the configured number of days
//
// # Usage
//
//	jobManager := jobs.NewJobManager()
//	jobManager.Register("reminder call", jobs.NewReminderCallJob(staleHandler, notifyHandler, schedule, days, logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Per-parcel call failures are logged and never stop the remaining calls
// - Failed job starts stop any already running jobs
package jobs
