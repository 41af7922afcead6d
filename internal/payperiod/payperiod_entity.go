package payperiod

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PayPeriod is one payroll processing month for an organization.
// (OrganizationID, Year, Month) is unique.
type PayPeriod struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_pay_period_org_month"`
	Year           int       `gorm:"uniqueIndex:uq_pay_period_org_month"`
	Month          int       `gorm:"uniqueIndex:uq_pay_period_org_month"`
	Slug           string    `gorm:"index;size:10"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PeriodSlug formats a year and month as the canonical period key,
// e.g. "2025-07".
func PeriodSlug(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func (p *PayPeriod) PeriodSlug() string {
	return PeriodSlug(p.Year, p.Month)
}
