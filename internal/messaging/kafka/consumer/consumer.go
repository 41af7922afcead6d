package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-payroll/internal/events"
	"go-payroll/internal/payroll"
	"go-payroll/internal/payslip"
)

// ConsumePayrollCommitted renders a payslip workbook for every
// committed payroll. Poison messages are committed and skipped;
// transient failures are retried by leaving the offset in place.
func ConsumePayrollCommitted(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	renderer *payslip.Renderer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_committed")
	log.Info("payroll committed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll committed consumer stopped")
				return
			}
			log.Error("fetch payroll committed message failed", zap.Error(err))
			continue
		}

		var event events.PayrollCommittedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll committed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		resp, err := payrollService.GetByID(ctx, event.OrganizationID, event.PayrollID)
		if err != nil {
			log.Error("load payroll for payslip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.String("organization_id", event.OrganizationID),
				zap.Error(err),
			)
			continue
		}

		path, err := renderer.Render(resp, event.PeriodSlug)
		if err != nil {
			log.Error("render payslip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll committed message failed", zap.Error(err))
			continue
		}

		log.Info("payslip rendered",
			zap.String("payroll_id", event.PayrollID),
			zap.String("path", path),
		)
	}
}
