package events

import "time"

const AuditRecordedTopic = "sso.audit.events.v1"

// AuditRecordedEvent is the payload relayed from the audit outbox to Kafka.
// Downstream consumers (log archive, SIEM) treat it as immutable.
type AuditRecordedEvent struct {
	EventType       string         `json:"event_type"`
	RequestID       string         `json:"request_id,omitempty"`
	EntryID         int64          `json:"entry_id"`
	Action          string         `json:"action"`
	EmployeeUUID    string         `json:"employee_uuid,omitempty"`
	ApplicationUUID string         `json:"application_uuid,omitempty"`
	IPAddress       string         `json:"ip_address,omitempty"`
	UserAgent       string         `json:"user_agent,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	OccurredAt      time.Time      `json:"occurred_at"`
}
