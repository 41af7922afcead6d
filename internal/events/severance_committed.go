package events

import "time"

const SeveranceCommittedTopic = "payroll.severance.committed.v1"

type SeveranceCommittedEvent struct {
	EventType      string    `json:"event_type"`
	SeveranceID    string    `json:"severance_id"`
	OrganizationID string    `json:"organization_id"`
	EmployeeID     string    `json:"employee_id"`
	PeriodSlug     string    `json:"period_slug"`
	GrossSeverance string    `json:"gross_severance"`
	NetSeverance   string    `json:"net_severance"`
	OccurredAt     time.Time `json:"occurred_at"`
}
