package adjustment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Earning adjustment cases.
const (
	CaseUnderpayment         = "underpayment"
	CaseOverpayment          = "overpayment"
	CaseDeductionError       = "deduction_error"
	CaseCorrection           = "correction"
	CaseSalaryIncrement      = "salary_increment"
	CaseBackpay              = "backpay"
	CaseContractRevision     = "contract_revision"
	CaseUnpaidLeaveDeduction = "unpaid_leave_deduction"
	CaseLatePayment          = "late_payment"
	CaseAllowanceAddition    = "allowance_addition"
	CaseBonusAdjustment      = "bonus_adjustment"
	CaseTransferAdjustment   = "transfer_adjustment"
	CaseOther                = "other"
)

// Deduction adjustment cases.
const (
	CaseRetroactiveDeduction = "retroactive_deduction"
	CaseDeductionAdjustment  = "deduction_adjustment"
	CaseCourtOrderPayment    = "court_order_payment"
	CaseAdvanceRecovery      = "advance_recovery"
	CaseOtherAdjustment      = "other_adjustment"
)

// EarningAdjustment books a missed or corrected earning of a past pay
// period (the target payroll) into a current one (the record payroll).
// Splits and rollups are derived; only the identity, case, component,
// amount and covered period are user input.
type EarningAdjustment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`

	RecordPayrollID uuid.UUID `gorm:"type:uuid;index"`
	TargetPayrollID uuid.UUID `gorm:"type:uuid;index"`

	Case      string          `gorm:"size:90"`
	Component string          `gorm:"size:90"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2)"`

	// Per-adjustment split and pension.
	Taxable                     decimal.Decimal `gorm:"type:numeric(12,2)"`
	NonTaxable                  decimal.Decimal `gorm:"type:numeric(12,2)"`
	EmployeePensionContribution decimal.Decimal `gorm:"type:numeric(15,2)"`
	EmployerPensionContribution decimal.Decimal `gorm:"type:numeric(15,2)"`
	TotalPension                decimal.Decimal `gorm:"type:numeric(15,2)"`

	// Rollup over every sibling row sharing (record, target).
	GroupGrossTaxablePay    decimal.Decimal `gorm:"type:numeric(12,2)"`
	GroupGrossNonTaxablePay decimal.Decimal `gorm:"type:numeric(12,2)"`
	GroupGrossPay           decimal.Decimal `gorm:"type:numeric(12,2)"`

	GroupCumulativeTaxablePay decimal.Decimal `gorm:"type:numeric(12,2)"`
	GroupRecomputedTax        decimal.Decimal `gorm:"type:numeric(12,2)"`
	GroupIncrementalTax       decimal.Decimal `gorm:"type:numeric(12,2)"`

	GroupEmployeePension decimal.Decimal `gorm:"type:numeric(15,2)"`
	GroupEmployerPension decimal.Decimal `gorm:"type:numeric(15,2)"`
	GroupTotalPension    decimal.Decimal `gorm:"type:numeric(15,2)"`

	GroupTotalEarningDeduction decimal.Decimal `gorm:"type:numeric(12,2)"`
	GroupExpense               decimal.Decimal `gorm:"type:numeric(12,2)"`

	// Rollup over the whole record payroll, one distinct target period
	// counted once.
	RecordGrossTaxablePay    decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecordGrossNonTaxablePay decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecordGrossPay           decimal.Decimal `gorm:"type:numeric(12,2)"`

	RecordCumulativeTaxablePay decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecordRecomputedTax        decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecordIncrementalTax       decimal.Decimal `gorm:"type:numeric(12,2)"`

	RecordEmployeePension decimal.Decimal `gorm:"type:numeric(15,2)"`
	RecordEmployerPension decimal.Decimal `gorm:"type:numeric(15,2)"`
	RecordTotalPension    decimal.Decimal `gorm:"type:numeric(15,2)"`

	RecordTotalEarningDeduction decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecordExpense               decimal.Decimal `gorm:"type:numeric(12,2)"`

	PeriodStart   time.Time `gorm:"type:date"`
	PeriodEnd     time.Time `gorm:"type:date"`
	MonthsCovered int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeductionAdjustment is the deduction-side counterpart. No tax or
// pension recomputation, only straight sums at both rollup levels.
type DeductionAdjustment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`

	RecordPayrollID uuid.UUID `gorm:"type:uuid;index"`
	TargetPayrollID uuid.UUID `gorm:"type:uuid;index"`

	Case      string          `gorm:"size:90"`
	Component string          `gorm:"size:90"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2)"`

	GroupTotalDeduction  decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecordTotalDeduction decimal.Decimal `gorm:"type:numeric(12,2)"`

	PeriodStart   time.Time `gorm:"type:date"`
	PeriodEnd     time.Time `gorm:"type:date"`
	MonthsCovered int

	CreatedAt time.Time
	UpdatedAt time.Time
}
