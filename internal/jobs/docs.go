// Package jobs provides scheduled background tasks for the room service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs only read state; orders are never mutated in the background.
//
// # Available Jobs
//
// 1. OrderStatsJob - periodically counts orders per status and publishes the
// result to the roomservice_orders Prometheus gauge
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statsHandler, m, cfg.StatsSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds first), for example
// "*/15 * * * * *" to run every fifteen seconds.
package jobs
