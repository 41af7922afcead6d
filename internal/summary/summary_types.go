package summary

import "github.com/shopspring/decimal"

// RegularBlock folds the committed regular payrolls of one period.
type RegularBlock struct {
	TaxableGross    decimal.Decimal
	NonTaxableGross decimal.Decimal
	Gross           decimal.Decimal
	Pensionable     decimal.Decimal
	EmployeePension decimal.Decimal
	EmployerPension decimal.Decimal
	TotalPension    decimal.Decimal

	EmploymentIncomeTax decimal.Decimal
	TotalDeduction      decimal.Decimal
	NetPay              decimal.Decimal
	Expense             decimal.Decimal

	Components map[string]decimal.Decimal
}

// EarningAdjustmentComponent is the per-component fold of earning
// adjustments booked into the period.
type EarningAdjustmentComponent struct {
	Taxable         decimal.Decimal
	NonTaxable      decimal.Decimal
	Amount          decimal.Decimal
	EmployeePension decimal.Decimal
	EmployerPension decimal.Decimal
	TotalPension    decimal.Decimal
}

// AdjustmentBlock folds the reconciliation rows recorded in the period.
// The recorded-month rollups are written identically on every row of a
// record payroll, so each record payroll contributes them exactly once.
type AdjustmentBlock struct {
	TaxableGross        decimal.Decimal
	NonTaxableGross     decimal.Decimal
	Gross               decimal.Decimal
	AdjustedPensionable decimal.Decimal
	EmployeePension     decimal.Decimal
	EmployerPension     decimal.Decimal
	TotalPension        decimal.Decimal

	EmploymentIncomeTax decimal.Decimal
	EarningDeduction    decimal.Decimal
	DeductionTotal      decimal.Decimal
	TotalDeduction      decimal.Decimal
	NetAdjustment       decimal.Decimal
	Expense             decimal.Decimal

	EarningsByComponent   map[string]*EarningAdjustmentComponent
	DeductionsByComponent map[string]decimal.Decimal
}

type SeveranceBlock struct {
	TaxableGross        decimal.Decimal
	Gross               decimal.Decimal
	EmploymentIncomeTax decimal.Decimal
	TotalDeduction      decimal.Decimal
	Net                 decimal.Decimal
	Expense             decimal.Decimal
	Count               int
}

// Totals ties the three streams together; FinalNetPay is gross minus
// total deduction, not the sum of the per-stream nets.
type Totals struct {
	TaxableGross    decimal.Decimal
	NonTaxableGross decimal.Decimal
	Gross           decimal.Decimal
	Pensionable     decimal.Decimal
	EmployeePension decimal.Decimal
	EmployerPension decimal.Decimal
	TotalPension    decimal.Decimal

	EmploymentIncomeTax decimal.Decimal
	TotalDeduction      decimal.Decimal
	Expense             decimal.Decimal
	FinalNetPay         decimal.Decimal
}

type MonthlySummary struct {
	PeriodSlug    string
	EmployeeCount int

	Regular    RegularBlock
	Adjustment AdjustmentBlock
	Severance  SeveranceBlock
	Totals     Totals
}

type YearlySummary struct {
	Year   int
	Months []MonthlySummary
	Totals Totals
}

type EmployeeSummary struct {
	EmployeeID   string
	PayrollCount int

	Regular    RegularBlock
	Adjustment AdjustmentBlock
	Severance  SeveranceBlock
	Totals     Totals
}
