package events

import "time"

const DepartmentIncentiveChangedTopic = "payroll.department.incentive.v1"

type DepartmentIncentiveChangedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	DepartmentID  string    `json:"department_id"`
	Percentage    string    `json:"percentage"`
	EffectiveDate string    `json:"effective_date"`
	OccurredAt    time.Time `json:"occurred_at"`
}
