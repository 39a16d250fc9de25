package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OpenOrdersReportJob periodically reports how many orders are stored and how
// many products across them are still unreturned.
type OpenOrdersReportJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOpenOrdersReportJob creates a job that reports order totals every minute.
func NewOpenOrdersReportJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *OpenOrdersReportJob {
	return &OpenOrdersReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "open_orders_report_job"),
	}
}

// Start begins the report job on a once-per-minute schedule.
func (j *OpenOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetAllOrdersQuery()

		summaries, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Open orders report job failed", "error", err)
			return
		}

		unreturned := 0
		for _, summary := range summaries {
			unreturned += len(summary.UnreturnedProductIDs)
		}

		j.logger.InfoContext(ctx, "Open orders report",
			"orders", len(summaries),
			"unreturned_products", unreturned)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *OpenOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open orders report job stopped")
}
