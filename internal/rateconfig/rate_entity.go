package rateconfig

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rate tables are append only. A new row supersedes older rows for the
// same organization and key; resolution always takes the newest row.

type OvertimeRate struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;index"`
	RateType       string          `gorm:"index"`
	Multiplier     decimal.Decimal `gorm:"type:numeric(8,4)"`
	CreatedAt      time.Time
}

type FlatCapRule struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;index"`
	Component      string          `gorm:"index"`
	CapAmount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	CreatedAt      time.Time
}

type SalaryRatioRule struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;index"`
	Component      string          `gorm:"index"`
	SalaryDivisor  decimal.Decimal `gorm:"type:numeric(8,2)"`
	CapAmount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	CreatedAt      time.Time
}

type HardshipRate struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;index"`
	Environment    string          `gorm:"index"`
	LimitPercent   decimal.Decimal `gorm:"type:numeric(6,4)"`
	CreatedAt      time.Time
}

type PerDiemRate struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement"`
	OrganizationID  uuid.UUID       `gorm:"type:uuid;index"`
	WorkingArea     string          `gorm:"index"`
	PercentLimit    decimal.Decimal `gorm:"type:numeric(6,4)"`
	CapAmount       decimal.Decimal `gorm:"type:numeric(14,2)"`
	FullyNonTaxable bool
	CreatedAt       time.Time
}

type PensionRate struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	OrganizationID uuid.UUID       `gorm:"type:uuid;index"`
	EmployeeRate   decimal.Decimal `gorm:"type:numeric(6,4)"`
	EmployerRate   decimal.Decimal `gorm:"type:numeric(6,4)"`
	CreatedAt      time.Time
}

// TaxBracket rows belong to a schedule version. Replacing the schedule
// inserts a full set of rows under the next version; older versions are
// kept for audit.
type TaxBracket struct {
	ID              uint64           `gorm:"primaryKey;autoIncrement"`
	OrganizationID  uuid.UUID        `gorm:"type:uuid;index"`
	ScheduleVersion uint             `gorm:"index"`
	MinAmount       decimal.Decimal  `gorm:"type:numeric(14,2)"`
	MaxAmount       *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Rate            decimal.Decimal  `gorm:"type:numeric(6,2)"`
	Deduction       decimal.Decimal  `gorm:"type:numeric(14,2)"`
	CreatedAt       time.Time
}
