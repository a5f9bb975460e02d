package jobs

import (
	"context"
	"log/slog"
	"time"

	"roomservice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule runs the stats job every fifteen seconds.
const DefaultStatsSchedule = "*/15 * * * * *"

const statsJobTimeout = 5 * time.Second

// OrderStatsReader is satisfied by queries.GetOrderStatsQueryHandler.
type OrderStatsReader interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
}

// OrderCountsSink receives the counts, typically *metrics.Metrics.
type OrderCountsSink interface {
	SetOrderCounts(active, completed int64)
}

// OrderStatsJob refreshes the per-status order gauge on a schedule.
type OrderStatsJob struct {
	reader   OrderStatsReader
	sink     OrderCountsSink
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates the job. An empty schedule falls back to
// DefaultStatsSchedule.
func NewOrderStatsJob(reader OrderStatsReader, sink OrderCountsSink, schedule string, logger *slog.Logger) *OrderStatsJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	return &OrderStatsJob{
		reader:   reader,
		sink:     sink,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Start registers the job and starts the scheduler. An invalid schedule is
// reported here rather than at construction.
func (j *OrderStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), statsJobTimeout)
		defer cancel()

		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
		}
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// RunOnce reads the counts and publishes them. The gauge keeps its previous
// value when the read fails.
func (j *OrderStatsJob) RunOnce(ctx context.Context) error {
	stats, err := j.reader.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		return err
	}

	j.sink.SetOrderCounts(stats.Active, stats.Completed)
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
