// Package jobs provides scheduled background tasks.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and coordinated through
// JobManager:
//
//	jobManager := jobs.NewJobManager(tokenDeleter, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is TokenSweepJob, which deletes expired access tokens
// once an hour. Expired tokens are already rejected at resolve time, so a
// missed run costs nothing but table size.
package jobs
