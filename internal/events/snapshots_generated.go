package events

import "time"

const PayrollSnapshotsGeneratedTopic = "payroll.snapshots.generated.v1"

type PayrollSnapshotsGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	SnapshotCount int       `json:"snapshot_count"`
	SkippedCount  int       `json:"skipped_count"`
	GeneratedBy   string    `json:"generated_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
