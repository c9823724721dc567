package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"

	"github.com/JSON-FX/lgu-sso/internal/events"
	"github.com/JSON-FX/lgu-sso/internal/messaging/kafka"
	"github.com/JSON-FX/lgu-sso/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry is what the rest of the system hands to the recorder. Request origin
// (ip, user agent) is taken from the context so call sites stay small.
type Entry struct {
	Action          Action
	EmployeeUUID    *uuid.UUID
	ApplicationUUID *uuid.UUID
	Metadata        map[string]any
}

//go:generate mockgen -source=audit_recorder.go -destination=mock/audit_recorder_mock.go -package=mock

// Recorder is the append-only write path. Record is fail-open: a failed
// audit write is logged and swallowed so the triggering business operation
// never fails because of it.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

type recorder struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewRecorder(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Recorder {
	l := zap.L().Named("audit.recorder")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.recorder")
	}
	return &recorder{db: db, repo: repo, outbox: outbox, logger: l}
}

func (r *recorder) Record(ctx context.Context, entry Entry) {
	if !entry.Action.Recognized() {
		r.logger.Error("unrecognized audit action dropped", zap.String("action", string(entry.Action)))
		return
	}

	metadata, err := json.Marshal(orEmptyMap(entry.Metadata))
	if err != nil {
		r.logger.Error("marshal audit metadata failed", zap.String("action", string(entry.Action)), zap.Error(err))
		return
	}

	row := &AuditLog{
		Action:          string(entry.Action),
		EmployeeUUID:    entry.EmployeeUUID,
		ApplicationUUID: entry.ApplicationUUID,
		IPAddress:       contextutil.GetClientIP(ctx),
		UserAgent:       contextutil.GetUserAgent(ctx),
		Metadata:        metadata,
	}

	if err := r.write(ctx, row, entry); err != nil {
		r.logger.Error("audit write failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("action", string(entry.Action)),
			zap.Error(err),
		)
	}
}

// write appends the audit row and its outbox row in one transaction so the
// Kafka relay never sees an entry the table does not hold.
func (r *recorder) write(ctx context.Context, row *AuditLog, entry Entry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.repo.WithTx(tx).Insert(ctx, row); err != nil {
		return err
	}

	event := events.AuditRecordedEvent{
		EventType:  "audit_recorded",
		RequestID:  contextutil.GetRequestID(ctx),
		EntryID:    row.ID,
		Action:     row.Action,
		IPAddress:  row.IPAddress,
		UserAgent:  row.UserAgent,
		Metadata:   entry.Metadata,
		OccurredAt: row.CreatedAt.UTC(),
	}
	if entry.EmployeeUUID != nil {
		event.EmployeeUUID = entry.EmployeeUUID.String()
	}
	if entry.ApplicationUUID != nil {
		event.ApplicationUUID = entry.ApplicationUUID.String()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := r.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "audit_log",
		AggregateID:   strconv.FormatInt(row.ID, 10),
		EventType:     event.EventType,
		Topic:         events.AuditRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
