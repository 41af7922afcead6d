package adjustment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	adjustmenterrors "go-payroll/internal/adjustment/errors"
	"go-payroll/internal/allowance"
	"go-payroll/internal/payroll"
	"go-payroll/internal/pension"
	"go-payroll/internal/rateconfig"
	"go-payroll/internal/tax"
)

// TargetFacts is the slice of a target payroll the reconciliation needs:
// the taxable base and tax that were originally booked for that period.
type TargetFacts struct {
	GrossTaxablePay     decimal.Decimal
	EmploymentIncomeTax decimal.Decimal
}

// RecomputeEarnings rewrites the derived fields of every earning
// adjustment row booked against one record payroll. It is a full
// set-based fold: per-row splits, then per (record, target) group
// rollups, then the record-level rollup counting each distinct target
// once. Running it twice over the same rows is a no-op, and the result
// does not depend on row order.
func RecomputeEarnings(
	rows []*EarningAdjustment,
	targets map[uuid.UUID]TargetFacts,
	emp payroll.EmployeeFacts,
	rates rateconfig.Rates,
) error {
	for _, row := range rows {
		if err := splitEarning(row, emp, rates); err != nil {
			return err
		}
	}

	groups := make(map[uuid.UUID][]*EarningAdjustment)
	for _, row := range rows {
		groups[row.TargetPayrollID] = append(groups[row.TargetPayrollID], row)
	}

	for targetID, group := range groups {
		target, ok := targets[targetID]
		if !ok {
			return adjustmenterrors.ErrTargetPayrollNotFound
		}
		rollupGroup(group, target, rates)
	}

	rollupRecord(rows, groups)
	return nil
}

func splitEarning(row *EarningAdjustment, emp payroll.EmployeeFacts, rates rateconfig.Rates) error {
	var split allowance.Split

	switch allowance.Classify(row.Component) {
	case allowance.ClassFullyTaxable, allowance.ClassDeferredEarnings:
		split = allowance.Split{Taxable: row.Amount, NonTaxable: decimal.Zero}
	case allowance.ClassNonTaxable:
		split = allowance.Split{Taxable: decimal.Zero, NonTaxable: row.Amount}
	case allowance.ClassPartiallyTaxable:
		split = splitPartial(row.Component, row.Amount, emp, rates)
	default:
		return adjustmenterrors.ErrUnknownEarningComponent
	}

	row.Taxable = split.Taxable
	row.NonTaxable = split.NonTaxable

	if allowance.IsPensionable(row.Component) {
		contrib := pension.Contributions(row.Amount, rates.Pension)
		row.EmployeePensionContribution = contrib.Employee
		row.EmployerPensionContribution = contrib.Employer
		row.TotalPension = contrib.Total
	} else {
		row.EmployeePensionContribution = decimal.Zero
		row.EmployerPensionContribution = decimal.Zero
		row.TotalPension = decimal.Zero
	}

	return nil
}

func splitPartial(component string, amount decimal.Decimal, emp payroll.EmployeeFacts, rates rateconfig.Rates) allowance.Split {
	switch component {
	case allowance.ComponentTransportHomeToOffice, allowance.ComponentFuelHomeToOffice:
		return allowance.FlatCap(amount, rates.FlatCaps[component])
	case allowance.ComponentTransportForWork, allowance.ComponentFuelForWork:
		limits := rates.SalaryRatios[component]
		return allowance.SalaryRatio(amount, emp.BasicSalary, limits.Divisor, limits.Cap)
	case allowance.ComponentHardshipAllowance:
		return allowance.Hardship(amount, emp.BasicSalary, rates.HardshipPercent(emp.WorkingEnvironment))
	case allowance.ComponentPerDiem:
		return allowance.PerDiem(amount, emp.DailyPerDiem, emp.BasicSalary, rates.PerDiemRule(emp.WorkingArea))
	default:
		return allowance.Split{Taxable: amount, NonTaxable: decimal.Zero}
	}
}

// rollupGroup merges the adjustment splits of one (record, target) pair
// into the target period's original tax base and books the tax delta.
func rollupGroup(group []*EarningAdjustment, target TargetFacts, rates rateconfig.Rates) {
	taxable := decimal.Zero
	nonTaxable := decimal.Zero
	gross := decimal.Zero
	employeePension := decimal.Zero
	employerPension := decimal.Zero

	for _, row := range group {
		taxable = taxable.Add(row.Taxable)
		nonTaxable = nonTaxable.Add(row.NonTaxable)
		gross = gross.Add(row.Amount)
		employeePension = employeePension.Add(row.EmployeePensionContribution)
		employerPension = employerPension.Add(row.EmployerPensionContribution)
	}

	cumulative := target.GrossTaxablePay.Add(taxable)
	recomputed := tax.Calculate(cumulative, rates.TaxBrackets)
	incremental := recomputed.Sub(target.EmploymentIncomeTax)

	earningDeduction := incremental.Add(employeePension)
	expense := gross.Add(employerPension)

	for _, row := range group {
		row.GroupGrossTaxablePay = taxable
		row.GroupGrossNonTaxablePay = nonTaxable
		row.GroupGrossPay = gross
		row.GroupCumulativeTaxablePay = cumulative
		row.GroupRecomputedTax = recomputed
		row.GroupIncrementalTax = incremental
		row.GroupEmployeePension = employeePension
		row.GroupEmployerPension = employerPension
		row.GroupTotalPension = employeePension.Add(employerPension)
		row.GroupTotalEarningDeduction = earningDeduction
		row.GroupExpense = expense
	}
}

// rollupRecord sums the group rollups into record-month totals, taking
// one representative per distinct target so repeated edits against the
// same past period are not double counted.
func rollupRecord(rows []*EarningAdjustment, groups map[uuid.UUID][]*EarningAdjustment) {
	taxable := decimal.Zero
	nonTaxable := decimal.Zero
	gross := decimal.Zero
	cumulative := decimal.Zero
	recomputed := decimal.Zero
	incremental := decimal.Zero
	employeePension := decimal.Zero
	employerPension := decimal.Zero
	earningDeduction := decimal.Zero
	expense := decimal.Zero

	for _, group := range groups {
		rep := group[0]
		taxable = taxable.Add(rep.GroupGrossTaxablePay)
		nonTaxable = nonTaxable.Add(rep.GroupGrossNonTaxablePay)
		gross = gross.Add(rep.GroupGrossPay)
		cumulative = cumulative.Add(rep.GroupCumulativeTaxablePay)
		recomputed = recomputed.Add(rep.GroupRecomputedTax)
		incremental = incremental.Add(rep.GroupIncrementalTax)
		employeePension = employeePension.Add(rep.GroupEmployeePension)
		employerPension = employerPension.Add(rep.GroupEmployerPension)
		earningDeduction = earningDeduction.Add(rep.GroupTotalEarningDeduction)
		expense = expense.Add(rep.GroupExpense)
	}

	for _, row := range rows {
		row.RecordGrossTaxablePay = taxable
		row.RecordGrossNonTaxablePay = nonTaxable
		row.RecordGrossPay = gross
		row.RecordCumulativeTaxablePay = cumulative
		row.RecordRecomputedTax = recomputed
		row.RecordIncrementalTax = incremental
		row.RecordEmployeePension = employeePension
		row.RecordEmployerPension = employerPension
		row.RecordTotalPension = employeePension.Add(employerPension)
		row.RecordTotalEarningDeduction = earningDeduction
		row.RecordExpense = expense
	}
}

// RecomputeDeductions is the deduction-side fold: straight sums at the
// (record, target) group level and the record level, no tax or pension.
func RecomputeDeductions(rows []*DeductionAdjustment) {
	groups := make(map[uuid.UUID][]*DeductionAdjustment)
	for _, row := range rows {
		groups[row.TargetPayrollID] = append(groups[row.TargetPayrollID], row)
	}

	for _, group := range groups {
		total := decimal.Zero
		for _, row := range group {
			total = total.Add(row.Amount)
		}
		for _, row := range group {
			row.GroupTotalDeduction = total
		}
	}

	recordTotal := decimal.Zero
	for _, group := range groups {
		recordTotal = recordTotal.Add(group[0].GroupTotalDeduction)
	}
	for _, row := range rows {
		row.RecordTotalDeduction = recordTotal
	}
}
