package consumer

import (
	"context"
	"encoding/json"

	"github.com/JSON-FX/lgu-sso/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeAuditEvents drains the audit topic and writes each event to the
// archive logger (a zap core shipped to long-term storage). Malformed
// messages are committed and skipped so the partition never wedges.
func ConsumeAuditEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.audit_archive")
	archive := logger.Named("audit.archive")
	log.Info("audit archive consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("audit archive consumer stopped")
				return
			}
			log.Error("fetch audit message failed", zap.Error(err))
			continue
		}

		var event events.AuditRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode audit event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		archive.Info("audit event",
			zap.Int64("entry_id", event.EntryID),
			zap.String("action", event.Action),
			zap.String("employee_uuid", event.EmployeeUUID),
			zap.String("application_uuid", event.ApplicationUUID),
			zap.String("ip_address", event.IPAddress),
			zap.Time("occurred_at", event.OccurredAt),
			zap.Any("metadata", event.Metadata),
		)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit audit message failed", zap.Error(err))
		}
	}
}
