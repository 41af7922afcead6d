package events

import "time"

const PayrollCommittedTopic = "payroll.regular.committed.v1"

// PayrollCommittedEvent is emitted after a payroll record and all of its
// derived totals are persisted. Consumers render payslips and feed
// downstream accounting.
type PayrollCommittedEvent struct {
	EventType      string    `json:"event_type"`
	PayrollID      string    `json:"payroll_id"`
	OrganizationID string    `json:"organization_id"`
	EmployeeID     string    `json:"employee_id"`
	PeriodSlug     string    `json:"period_slug"`
	GrossPay       string    `json:"gross_pay"`
	NetPay         string    `json:"net_pay"`
	OccurredAt     time.Time `json:"occurred_at"`
}
