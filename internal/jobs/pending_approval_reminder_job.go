package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingApprovalReminderJob periodically logs approval levels still waiting
// for a decision. It only reads and logs; deciding remains a human action
// through the API.
type PendingApprovalReminderJob struct {
	handler queries.GetPendingApprovalsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingApprovalReminderJob creates the hourly reminder job.
func NewPendingApprovalReminderJob(
	handler queries.GetPendingApprovalsQueryHandler,
	logger *slog.Logger,
) *PendingApprovalReminderJob {
	return &PendingApprovalReminderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_approval_reminder_job"),
	}
}

// Start schedules the reminder to run hourly.
func (j *PendingApprovalReminderJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", j.remind)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending approval reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder job.
func (j *PendingApprovalReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending approval reminder job stopped")
}

func (j *PendingApprovalReminderJob) remind() {
	ctx := context.Background()

	pending, err := j.handler.Handle(ctx, queries.NewGetPendingApprovalsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending approval reminder job failed", "error", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	j.logger.InfoContext(ctx, "Orders waiting for approval", "count", len(pending))
	for _, entry := range pending {
		j.logger.InfoContext(ctx, "Approval pending",
			"order_number", entry.OrderNumber,
			"level", entry.Level,
			"total_amount", entry.TotalAmount.String(),
			"waiting_since", entry.WaitingSince,
		)
	}
}
