package summary

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-payroll/internal/adjustment"
	"go-payroll/internal/allowance"
	"go-payroll/internal/payroll"
	"go-payroll/internal/severance"
)

// BuildMonthly folds one period's committed records into the combined
// view. It applies no business rules; every figure ties back to a
// stored row.
func BuildMonthly(
	periodSlug string,
	payrolls []payroll.Payroll,
	earnings []adjustment.EarningAdjustment,
	deductions []adjustment.DeductionAdjustment,
	severances []severance.Severance,
) MonthlySummary {
	s := MonthlySummary{
		PeriodSlug:    periodSlug,
		EmployeeCount: len(payrolls),
		Regular:       newRegularBlock(),
		Adjustment:    newAdjustmentBlock(),
	}

	for i := range payrolls {
		foldRegular(&s.Regular, &payrolls[i])
	}
	foldAdjustments(&s.Adjustment, earnings, deductions)
	for i := range severances {
		foldSeverance(&s.Severance, &severances[i])
	}

	s.Totals = combineTotals(s.Regular, s.Adjustment, s.Severance)
	return s
}

// BuildEmployee is the same fold restricted to one employee's records
// across periods.
func BuildEmployee(
	employeeID string,
	payrolls []payroll.Payroll,
	earnings []adjustment.EarningAdjustment,
	deductions []adjustment.DeductionAdjustment,
	severances []severance.Severance,
) EmployeeSummary {
	s := EmployeeSummary{
		EmployeeID:   employeeID,
		PayrollCount: len(payrolls),
		Regular:      newRegularBlock(),
		Adjustment:   newAdjustmentBlock(),
	}

	for i := range payrolls {
		foldRegular(&s.Regular, &payrolls[i])
	}
	foldAdjustments(&s.Adjustment, earnings, deductions)
	for i := range severances {
		foldSeverance(&s.Severance, &severances[i])
	}

	s.Totals = combineTotals(s.Regular, s.Adjustment, s.Severance)
	return s
}

// MergeYearly stacks a year's monthly summaries and re-derives the
// grand totals from the monthly ones.
func MergeYearly(year int, months []MonthlySummary) YearlySummary {
	y := YearlySummary{Year: year, Months: months}

	for _, m := range months {
		y.Totals.TaxableGross = y.Totals.TaxableGross.Add(m.Totals.TaxableGross)
		y.Totals.NonTaxableGross = y.Totals.NonTaxableGross.Add(m.Totals.NonTaxableGross)
		y.Totals.Gross = y.Totals.Gross.Add(m.Totals.Gross)
		y.Totals.Pensionable = y.Totals.Pensionable.Add(m.Totals.Pensionable)
		y.Totals.EmployeePension = y.Totals.EmployeePension.Add(m.Totals.EmployeePension)
		y.Totals.EmployerPension = y.Totals.EmployerPension.Add(m.Totals.EmployerPension)
		y.Totals.TotalPension = y.Totals.TotalPension.Add(m.Totals.TotalPension)
		y.Totals.EmploymentIncomeTax = y.Totals.EmploymentIncomeTax.Add(m.Totals.EmploymentIncomeTax)
		y.Totals.TotalDeduction = y.Totals.TotalDeduction.Add(m.Totals.TotalDeduction)
		y.Totals.Expense = y.Totals.Expense.Add(m.Totals.Expense)
		y.Totals.FinalNetPay = y.Totals.FinalNetPay.Add(m.Totals.FinalNetPay)
	}

	return y
}

func newRegularBlock() RegularBlock {
	return RegularBlock{Components: make(map[string]decimal.Decimal)}
}

func newAdjustmentBlock() AdjustmentBlock {
	return AdjustmentBlock{
		EarningsByComponent:   make(map[string]*EarningAdjustmentComponent),
		DeductionsByComponent: make(map[string]decimal.Decimal),
	}
}

func foldRegular(b *RegularBlock, p *payroll.Payroll) {
	components := map[string]decimal.Decimal{
		"basic_salary":        p.BasicSalary,
		"overtime":            p.Overtime,
		"housing_allowance":   p.HousingAllowance,
		"position_allowance":  p.PositionAllowance,
		"commission":          p.Commission,
		"telephone_allowance": p.TelephoneAllowance,
		"one_time_bonus":      p.OneTimeBonus,
		"causal_labor_wage":   p.CausalLaborWage,

		"transport_home_to_office_taxable":     p.TransportHomeToOfficeTaxable,
		"transport_home_to_office_non_taxable": p.TransportHomeToOfficeNonTaxable,
		"fuel_home_to_office_taxable":          p.FuelHomeToOfficeTaxable,
		"fuel_home_to_office_non_taxable":      p.FuelHomeToOfficeNonTaxable,
		"transport_for_work_taxable":           p.TransportForWorkTaxable,
		"transport_for_work_non_taxable":       p.TransportForWorkNonTaxable,
		"fuel_for_work_taxable":                p.FuelForWorkTaxable,
		"fuel_for_work_non_taxable":            p.FuelForWorkNonTaxable,
		"per_diem_taxable":                     p.PerDiemTaxable,
		"per_diem_non_taxable":                 p.PerDiemNonTaxable,
		"hardship_allowance_taxable":           p.HardshipAllowanceTaxable,
		"hardship_allowance_non_taxable":       p.HardshipAllowanceNonTaxable,

		"public_cash_award":              p.PublicCashAward,
		"incidental_operation_allowance": p.IncidentalOperationAllowance,
		"medical_allowance":              p.MedicalAllowance,
		"cash_gift":                      p.CashGift,
		"tuition_fees":                   p.TuitionFees,
		"personal_injury":                p.PersonalInjury,
		"child_support_payment":          p.ChildSupportPayment,

		"university_cost_share_pay":  p.UniversityCostSharePay,
		"charitable_donation":        p.CharitableDonation,
		"saving_plan":                p.SavingPlan,
		"loan_payment":               p.LoanPayment,
		"court_order":                p.CourtOrder,
		"workers_association":        p.WorkersAssociation,
		"personnel_insurance_saving": p.PersonnelInsuranceSaving,
		"red_cross":                  p.RedCross,
		"party_contribution":         p.PartyContribution,
		"other_deduction":            p.OtherDeduction,
	}
	for comp, val := range components {
		b.Components[comp] = b.Components[comp].Add(val)
	}

	b.TaxableGross = b.TaxableGross.Add(p.GrossTaxablePay)
	b.NonTaxableGross = b.NonTaxableGross.Add(p.GrossNonTaxablePay)
	b.Gross = b.Gross.Add(p.GrossPay)
	b.Pensionable = b.Pensionable.Add(p.BasicSalary)
	b.EmployeePension = b.EmployeePension.Add(p.EmployeePensionContribution)
	b.EmployerPension = b.EmployerPension.Add(p.EmployerPensionContribution)
	b.TotalPension = b.TotalPension.Add(p.TotalPensionContribution)
	b.EmploymentIncomeTax = b.EmploymentIncomeTax.Add(p.EmploymentIncomeTax)
	b.TotalDeduction = b.TotalDeduction.Add(p.TotalPayrollDeduction)
	b.NetPay = b.NetPay.Add(p.NetPay)
	b.Expense = b.Expense.Add(p.Expense)
}

func foldAdjustments(
	b *AdjustmentBlock,
	earnings []adjustment.EarningAdjustment,
	deductions []adjustment.DeductionAdjustment,
) {
	seenEarningRecord := make(map[uuid.UUID]bool)
	for i := range earnings {
		ea := &earnings[i]

		comp, ok := b.EarningsByComponent[ea.Component]
		if !ok {
			comp = &EarningAdjustmentComponent{}
			b.EarningsByComponent[ea.Component] = comp
		}
		comp.Taxable = comp.Taxable.Add(ea.Taxable)
		comp.NonTaxable = comp.NonTaxable.Add(ea.NonTaxable)
		comp.Amount = comp.Amount.Add(ea.Amount)
		comp.EmployeePension = comp.EmployeePension.Add(ea.EmployeePensionContribution)
		comp.EmployerPension = comp.EmployerPension.Add(ea.EmployerPensionContribution)
		comp.TotalPension = comp.TotalPension.Add(ea.TotalPension)

		if allowance.IsPensionable(ea.Component) {
			b.AdjustedPensionable = b.AdjustedPensionable.Add(ea.Amount)
		}

		if seenEarningRecord[ea.RecordPayrollID] {
			continue
		}
		seenEarningRecord[ea.RecordPayrollID] = true

		b.TaxableGross = b.TaxableGross.Add(ea.RecordGrossTaxablePay)
		b.NonTaxableGross = b.NonTaxableGross.Add(ea.RecordGrossNonTaxablePay)
		b.Gross = b.Gross.Add(ea.RecordGrossPay)
		b.EmployeePension = b.EmployeePension.Add(ea.RecordEmployeePension)
		b.EmployerPension = b.EmployerPension.Add(ea.RecordEmployerPension)
		b.TotalPension = b.TotalPension.Add(ea.RecordTotalPension)
		b.EmploymentIncomeTax = b.EmploymentIncomeTax.Add(ea.RecordIncrementalTax)
		b.EarningDeduction = b.EarningDeduction.Add(ea.RecordTotalEarningDeduction)
		b.Expense = b.Expense.Add(ea.RecordExpense)
	}

	seenDeductionRecord := make(map[uuid.UUID]bool)
	for i := range deductions {
		da := &deductions[i]

		b.DeductionsByComponent[da.Component] = b.DeductionsByComponent[da.Component].Add(da.Amount)

		if seenDeductionRecord[da.RecordPayrollID] {
			continue
		}
		seenDeductionRecord[da.RecordPayrollID] = true
		b.DeductionTotal = b.DeductionTotal.Add(da.RecordTotalDeduction)
	}

	b.TotalDeduction = b.EarningDeduction.Add(b.DeductionTotal)
	b.NetAdjustment = b.Gross.Sub(b.TotalDeduction)
}

func foldSeverance(b *SeveranceBlock, sv *severance.Severance) {
	b.TaxableGross = b.TaxableGross.Add(sv.GrossSeverancePay)
	b.Gross = b.Gross.Add(sv.GrossSeverancePay)
	b.EmploymentIncomeTax = b.EmploymentIncomeTax.Add(sv.TaxFromSeverancePay)
	b.TotalDeduction = b.TotalDeduction.Add(sv.TaxFromSeverancePay)
	b.Net = b.Net.Add(sv.NetSeverancePay)
	b.Expense = b.Expense.Add(sv.GrossSeverancePay)
	b.Count++
}

func combineTotals(reg RegularBlock, adj AdjustmentBlock, sev SeveranceBlock) Totals {
	var t Totals
	t.TaxableGross = reg.TaxableGross.Add(adj.TaxableGross).Add(sev.TaxableGross)
	t.NonTaxableGross = reg.NonTaxableGross.Add(adj.NonTaxableGross)
	t.Gross = reg.Gross.Add(adj.Gross).Add(sev.Gross)
	t.Pensionable = reg.Pensionable.Add(adj.AdjustedPensionable)
	t.EmployeePension = reg.EmployeePension.Add(adj.EmployeePension)
	t.EmployerPension = reg.EmployerPension.Add(adj.EmployerPension)
	t.TotalPension = reg.TotalPension.Add(adj.TotalPension)
	t.EmploymentIncomeTax = reg.EmploymentIncomeTax.Add(adj.EmploymentIncomeTax).Add(sev.EmploymentIncomeTax)
	t.TotalDeduction = reg.TotalDeduction.Add(adj.TotalDeduction).Add(sev.TotalDeduction)
	t.Expense = reg.Expense.Add(adj.Expense).Add(sev.Expense)
	t.FinalNetPay = t.Gross.Sub(t.TotalDeduction)
	return t
}
