package summary_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-payroll/internal/adjustment"
	"go-payroll/internal/payroll"
	"go-payroll/internal/severance"
	"go-payroll/internal/summary"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func regularPayroll(taxable, nonTaxable, basic, empPension, erPension, tax, deduction string) payroll.Payroll {
	grossTaxable := dec(taxable)
	grossNonTaxable := dec(nonTaxable)
	gross := grossTaxable.Add(grossNonTaxable)
	totalDeduction := dec(deduction)

	return payroll.Payroll{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		BasicSalary: dec(basic),

		GrossTaxablePay:    grossTaxable,
		GrossNonTaxablePay: grossNonTaxable,
		GrossPay:           gross,

		EmployeePensionContribution: dec(empPension),
		EmployerPensionContribution: dec(erPension),
		TotalPensionContribution:    dec(empPension).Add(dec(erPension)),

		EmploymentIncomeTax:   dec(tax),
		TotalPayrollDeduction: totalDeduction,
		NetPay:                gross.Sub(totalDeduction),
		Expense:               gross.Add(dec(erPension)),
	}
}

func TestBuildMonthly_TotalsTieToInputs(t *testing.T) {
	p1 := regularPayroll("1000", "200", "800", "56", "88", "100", "156")
	p2 := regularPayroll("500", "0", "500", "35", "55", "25", "60")

	recordID := uuid.New()
	targetID := uuid.New()

	rollup := adjustment.EarningAdjustment{
		RecordPayrollID: recordID,
		TargetPayrollID: targetID,

		RecordGrossTaxablePay:       dec("130"),
		RecordGrossNonTaxablePay:    dec("20"),
		RecordGrossPay:              dec("150"),
		RecordEmployeePension:       dec("7"),
		RecordEmployerPension:       dec("11"),
		RecordTotalPension:          dec("18"),
		RecordIncrementalTax:        dec("13"),
		RecordTotalEarningDeduction: dec("20"),
		RecordExpense:               dec("161"),
	}

	ea1 := rollup
	ea1.ID = uuid.New()
	ea1.Component = "basic_salary"
	ea1.Amount = dec("100")
	ea1.Taxable = dec("100")
	ea1.EmployeePensionContribution = dec("7")
	ea1.EmployerPensionContribution = dec("11")
	ea1.TotalPension = dec("18")

	ea2 := rollup
	ea2.ID = uuid.New()
	ea2.Component = "per_diem"
	ea2.Amount = dec("50")
	ea2.Taxable = dec("30")
	ea2.NonTaxable = dec("20")

	da := adjustment.DeductionAdjustment{
		ID:                   uuid.New(),
		RecordPayrollID:      recordID,
		TargetPayrollID:      targetID,
		Component:            "loan_payment",
		Amount:               dec("40"),
		RecordTotalDeduction: dec("40"),
	}

	sv := severance.Severance{
		ID:                  uuid.New(),
		GrossSeverancePay:   dec("3000"),
		TaxFromSeverancePay: dec("300"),
		NetSeverancePay:     dec("2700"),
	}

	s := summary.BuildMonthly(
		"2026-08",
		[]payroll.Payroll{p1, p2},
		[]adjustment.EarningAdjustment{ea1, ea2},
		[]adjustment.DeductionAdjustment{da},
		[]severance.Severance{sv},
	)

	assert.Equal(t, "2026-08", s.PeriodSlug)
	assert.Equal(t, 2, s.EmployeeCount)

	assert.Equal(t, "1500.00", s.Regular.TaxableGross.StringFixed(2))
	assert.Equal(t, "1700.00", s.Regular.Gross.StringFixed(2))
	assert.Equal(t, "1300.00", s.Regular.Pensionable.StringFixed(2))
	assert.Equal(t, "1484.00", s.Regular.NetPay.StringFixed(2))
	assert.Equal(t, "1300.00", s.Regular.Components["basic_salary"].StringFixed(2))

	// The record rollup is stored on every row but must count once.
	assert.Equal(t, "130.00", s.Adjustment.TaxableGross.StringFixed(2))
	assert.Equal(t, "150.00", s.Adjustment.Gross.StringFixed(2))
	assert.Equal(t, "100.00", s.Adjustment.AdjustedPensionable.StringFixed(2))
	assert.Equal(t, "13.00", s.Adjustment.EmploymentIncomeTax.StringFixed(2))
	assert.Equal(t, "60.00", s.Adjustment.TotalDeduction.StringFixed(2))
	assert.Equal(t, "90.00", s.Adjustment.NetAdjustment.StringFixed(2))

	require.Contains(t, s.Adjustment.EarningsByComponent, "per_diem")
	assert.Equal(t, "30.00", s.Adjustment.EarningsByComponent["per_diem"].Taxable.StringFixed(2))
	assert.Equal(t, "20.00", s.Adjustment.EarningsByComponent["per_diem"].NonTaxable.StringFixed(2))
	assert.Equal(t, "40.00", s.Adjustment.DeductionsByComponent["loan_payment"].StringFixed(2))

	assert.Equal(t, "3000.00", s.Severance.Gross.StringFixed(2))
	assert.Equal(t, 1, s.Severance.Count)

	assert.Equal(t, "4630.00", s.Totals.TaxableGross.StringFixed(2))
	assert.Equal(t, "220.00", s.Totals.NonTaxableGross.StringFixed(2))
	assert.Equal(t, "4850.00", s.Totals.Gross.StringFixed(2))
	assert.Equal(t, "1400.00", s.Totals.Pensionable.StringFixed(2))
	assert.Equal(t, "98.00", s.Totals.EmployeePension.StringFixed(2))
	assert.Equal(t, "438.00", s.Totals.EmploymentIncomeTax.StringFixed(2))
	assert.Equal(t, "576.00", s.Totals.TotalDeduction.StringFixed(2))
	assert.Equal(t, "5004.00", s.Totals.Expense.StringFixed(2))
	assert.Equal(t, "4274.00", s.Totals.FinalNetPay.StringFixed(2))
}

func TestBuildMonthly_EmptyPeriod(t *testing.T) {
	s := summary.BuildMonthly("2026-01", nil, nil, nil, nil)

	assert.Equal(t, 0, s.EmployeeCount)
	assert.Equal(t, "0.00", s.Totals.Gross.StringFixed(2))
	assert.Equal(t, "0.00", s.Totals.FinalNetPay.StringFixed(2))
	assert.Empty(t, s.Adjustment.EarningsByComponent)
}

func TestMergeYearly_SumsMonths(t *testing.T) {
	m1 := summary.BuildMonthly("2026-01",
		[]payroll.Payroll{regularPayroll("1000", "0", "1000", "70", "110", "100", "170")},
		nil, nil, nil,
	)
	m2 := summary.BuildMonthly("2026-02",
		[]payroll.Payroll{regularPayroll("2000", "0", "2000", "140", "220", "300", "440")},
		nil, nil, nil,
	)

	y := summary.MergeYearly(2026, []summary.MonthlySummary{m1, m2})

	assert.Equal(t, 2026, y.Year)
	assert.Len(t, y.Months, 2)
	assert.Equal(t, "3000.00", y.Totals.Gross.StringFixed(2))
	assert.Equal(t, "400.00", y.Totals.EmploymentIncomeTax.StringFixed(2))
	expected := m1.Totals.FinalNetPay.Add(m2.Totals.FinalNetPay)
	assert.Equal(t, expected.StringFixed(2), y.Totals.FinalNetPay.StringFixed(2))
}
