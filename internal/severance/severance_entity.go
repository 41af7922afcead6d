package severance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Termination types. No-notice and harassment terminations add extra
// days of wage to the gross pay.
const (
	TypeNormal     = "normal"
	TypeNoNotice   = "no_notice"
	TypeHarassment = "harassment"
)

// Severance is one terminal payout for an employee, booked against the
// pay period in which it is processed.
type Severance struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;index"`
	PayPeriodID    uuid.UUID `gorm:"type:uuid;index"`

	SeveranceType     string          `gorm:"size:30"`
	LastWeekDailyWage decimal.Decimal `gorm:"type:numeric(12,2)"`
	StartDate         time.Time       `gorm:"type:date"`
	EndDate           time.Time       `gorm:"type:date"`

	// Derived fields, filled by Compute.
	ServiceYears int
	ServiceDays  int

	SeveranceForYears decimal.Decimal `gorm:"type:numeric(12,2)"`
	SeveranceForDays  decimal.Decimal `gorm:"type:numeric(12,2)"`
	GrossSeverancePay decimal.Decimal `gorm:"type:numeric(12,2)"`

	MonthlyWage   decimal.Decimal `gorm:"type:numeric(12,2)"`
	ProrateSalary decimal.Decimal `gorm:"type:numeric(12,2)"`

	TaxFromMonthlyWage      decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalTaxFromMonthlyWage decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxFromProrateSalary    decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxFromSeverancePay     decimal.Decimal `gorm:"type:numeric(12,2)"`

	NetSeverancePay decimal.Decimal `gorm:"type:numeric(12,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
