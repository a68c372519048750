package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"go-payroll/internal/events"
	"go-payroll/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ReportCacheConsumer listens for snapshots-generated events and rebuilds
// the cached department summary for the affected period, so the report is
// warm before the first read arrives.
type ReportCacheConsumer struct {
	reader  *kafkago.Reader
	payroll payroll.Service
	logger  *zap.Logger
}

func NewReportCacheConsumer(
	broker string,
	groupID string,
	payrollService payroll.Service,
	logger *zap.Logger,
) *ReportCacheConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    events.PayrollSnapshotsGeneratedTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	return &ReportCacheConsumer{
		reader:  reader,
		payroll: payrollService,
		logger:  logger.Named("kafka.consumer.report_cache"),
	}
}

func (c *ReportCacheConsumer) Run(ctx context.Context) error {
	c.logger.Info("report cache consumer started",
		zap.String("topic", events.PayrollSnapshotsGeneratedTopic),
	)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				c.logger.Info("report cache consumer stopped")
				return nil
			}
			return err
		}

		if err := c.handle(ctx, msg); err != nil {
			// Leave the message uncommitted so it is redelivered.
			c.logger.Error("handle snapshots generated event failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("commit offset failed", zap.Error(err))
		}
	}
}

func (c *ReportCacheConsumer) handle(ctx context.Context, msg kafkago.Message) error {
	var event events.PayrollSnapshotsGeneratedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// A malformed payload will never parse; log and commit past it.
		c.logger.Warn("malformed event payload, skipping",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return nil
	}

	if err := c.payroll.RefreshDepartmentSummary(ctx, event.Year, event.Month); err != nil {
		return err
	}

	c.logger.Info("department summary refreshed",
		zap.Int("year", event.Year),
		zap.Int("month", event.Month),
		zap.Int("snapshot_count", event.SnapshotCount),
	)
	return nil
}

func (c *ReportCacheConsumer) Close() error {
	return c.reader.Close()
}
