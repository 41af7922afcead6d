package adjustment_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-payroll/internal/adjustment"
	"go-payroll/internal/allowance"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rateconfig"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func employeeFacts() payroll.EmployeeFacts {
	return payroll.EmployeeFacts{
		BasicSalary:        dec("8000"),
		WorkingArea:        rateconfig.AreaNonGovernmentalExpert,
		WorkingEnvironment: rateconfig.EnvironmentAdverse,
		DailyPerDiem:       dec("1500"),
	}
}

func earningRow(record, target uuid.UUID, component, amount string) *adjustment.EarningAdjustment {
	return &adjustment.EarningAdjustment{
		ID:              uuid.New(),
		RecordPayrollID: record,
		TargetPayrollID: target,
		Component:       component,
		Amount:          dec(amount),
	}
}

func TestRecomputeEarnings_GroupRollup(t *testing.T) {
	record := uuid.New()
	target := uuid.New()

	rows := []*adjustment.EarningAdjustment{
		earningRow(record, target, allowance.ComponentBasicSalary, "100"),
		earningRow(record, target, allowance.ComponentBasicSalary, "200"),
	}
	targets := map[uuid.UUID]adjustment.TargetFacts{
		target: {GrossTaxablePay: dec("5000"), EmploymentIncomeTax: dec("500")},
	}

	err := adjustment.RecomputeEarnings(rows, targets, employeeFacts(), rateconfig.Default())
	require.NoError(t, err)

	for _, row := range rows {
		assert.Equal(t, "300.00", row.GroupGrossTaxablePay.StringFixed(2))
		assert.Equal(t, "300.00", row.GroupGrossPay.StringFixed(2))
		assert.Equal(t, "0.00", row.GroupGrossNonTaxablePay.StringFixed(2))

		// 5300 in the 20% bracket: 5300 * 0.20 - 500 = 560.
		assert.Equal(t, "5300.00", row.GroupCumulativeTaxablePay.StringFixed(2))
		assert.Equal(t, "560.00", row.GroupRecomputedTax.StringFixed(2))
		assert.Equal(t, "60.00", row.GroupIncrementalTax.StringFixed(2))

		// Basic salary adjustments carry pension.
		assert.Equal(t, "21.00", row.GroupEmployeePension.StringFixed(2))
		assert.Equal(t, "33.00", row.GroupEmployerPension.StringFixed(2))
		assert.Equal(t, "81.00", row.GroupTotalEarningDeduction.StringFixed(2))
		assert.Equal(t, "333.00", row.GroupExpense.StringFixed(2))
	}
}

func TestRecomputeEarnings_Idempotent(t *testing.T) {
	record := uuid.New()
	target := uuid.New()

	rows := []*adjustment.EarningAdjustment{
		earningRow(record, target, allowance.ComponentBasicSalary, "150"),
		earningRow(record, target, allowance.ComponentPerDiem, "750"),
	}
	targets := map[uuid.UUID]adjustment.TargetFacts{
		target: {GrossTaxablePay: dec("6000"), EmploymentIncomeTax: dec("700")},
	}

	err := adjustment.RecomputeEarnings(rows, targets, employeeFacts(), rateconfig.Default())
	require.NoError(t, err)

	first := *rows[0]
	err = adjustment.RecomputeEarnings(rows, targets, employeeFacts(), rateconfig.Default())
	require.NoError(t, err)

	assert.True(t, first.GroupRecomputedTax.Equal(rows[0].GroupRecomputedTax))
	assert.True(t, first.GroupGrossTaxablePay.Equal(rows[0].GroupGrossTaxablePay))
	assert.True(t, first.RecordTotalEarningDeduction.Equal(rows[0].RecordTotalEarningDeduction))
}

func TestRecomputeEarnings_OrderIndependent(t *testing.T) {
	record := uuid.New()
	target := uuid.New()

	forward := []*adjustment.EarningAdjustment{
		earningRow(record, target, allowance.ComponentBasicSalary, "100"),
		earningRow(record, target, allowance.ComponentHousingAllowance, "250"),
		earningRow(record, target, allowance.ComponentMedicalAllowance, "400"),
	}
	reversed := []*adjustment.EarningAdjustment{
		earningRow(record, target, allowance.ComponentMedicalAllowance, "400"),
		earningRow(record, target, allowance.ComponentHousingAllowance, "250"),
		earningRow(record, target, allowance.ComponentBasicSalary, "100"),
	}
	targets := map[uuid.UUID]adjustment.TargetFacts{
		target: {GrossTaxablePay: dec("3000"), EmploymentIncomeTax: dec("150")},
	}

	require.NoError(t, adjustment.RecomputeEarnings(forward, targets, employeeFacts(), rateconfig.Default()))
	require.NoError(t, adjustment.RecomputeEarnings(reversed, targets, employeeFacts(), rateconfig.Default()))

	assert.True(t, forward[0].GroupGrossTaxablePay.Equal(reversed[0].GroupGrossTaxablePay))
	assert.True(t, forward[0].GroupGrossNonTaxablePay.Equal(reversed[0].GroupGrossNonTaxablePay))
	assert.True(t, forward[0].GroupIncrementalTax.Equal(reversed[0].GroupIncrementalTax))
	assert.True(t, forward[0].RecordExpense.Equal(reversed[0].RecordExpense))
}

func TestRecomputeEarnings_RecordLevelCollapsesTargets(t *testing.T) {
	record := uuid.New()
	targetA := uuid.New()
	targetB := uuid.New()

	rows := []*adjustment.EarningAdjustment{
		earningRow(record, targetA, allowance.ComponentBasicSalary, "100"),
		earningRow(record, targetA, allowance.ComponentBasicSalary, "200"),
		earningRow(record, targetB, allowance.ComponentCommission, "500"),
	}
	targets := map[uuid.UUID]adjustment.TargetFacts{
		targetA: {GrossTaxablePay: dec("5000"), EmploymentIncomeTax: dec("500")},
		targetB: {GrossTaxablePay: dec("2500"), EmploymentIncomeTax: dec("75")},
	}

	err := adjustment.RecomputeEarnings(rows, targets, employeeFacts(), rateconfig.Default())
	require.NoError(t, err)

	// Record totals are the sums over one representative per target:
	// 300 from targetA plus 500 from targetB, never 300 per row.
	for _, row := range rows {
		assert.Equal(t, "800.00", row.RecordGrossTaxablePay.StringFixed(2))
		assert.Equal(t, "800.00", row.RecordGrossPay.StringFixed(2))
	}

	// targetB: cumulative 3000 in the 15% bracket: 3000*0.15-300 = 150,
	// incremental 75. Record incremental = 60 + 75.
	assert.Equal(t, "135.00", rows[0].RecordIncrementalTax.StringFixed(2))
}

func TestRecomputeEarnings_PartialSplit(t *testing.T) {
	record := uuid.New()
	target := uuid.New()

	rows := []*adjustment.EarningAdjustment{
		earningRow(record, target, allowance.ComponentPerDiem, "750"),
	}
	targets := map[uuid.UUID]adjustment.TargetFacts{
		target: {GrossTaxablePay: dec("4000"), EmploymentIncomeTax: dec("300")},
	}

	err := adjustment.RecomputeEarnings(rows, targets, employeeFacts(), rateconfig.Default())
	require.NoError(t, err)

	// Expert class, daily 1500, limit 320 under the 500 cap: taxable
	// daily 1000, scaled by 750/1500.
	assert.Equal(t, "500.00", rows[0].Taxable.StringFixed(2))
	assert.Equal(t, "250.00", rows[0].NonTaxable.StringFixed(2))
	assert.True(t, rows[0].Taxable.Add(rows[0].NonTaxable).Equal(rows[0].Amount))

	// No pension on per diem.
	assert.True(t, rows[0].EmployeePensionContribution.IsZero())
}

func TestRecomputeEarnings_UnknownComponent(t *testing.T) {
	record := uuid.New()
	target := uuid.New()

	rows := []*adjustment.EarningAdjustment{
		earningRow(record, target, "signing_bonus_2x", "100"),
	}
	targets := map[uuid.UUID]adjustment.TargetFacts{
		target: {GrossTaxablePay: dec("4000"), EmploymentIncomeTax: dec("300")},
	}

	err := adjustment.RecomputeEarnings(rows, targets, employeeFacts(), rateconfig.Default())
	assert.Error(t, err)
}

func TestRecomputeDeductions(t *testing.T) {
	record := uuid.New()
	targetA := uuid.New()
	targetB := uuid.New()

	rows := []*adjustment.DeductionAdjustment{
		{ID: uuid.New(), RecordPayrollID: record, TargetPayrollID: targetA, Component: "loan_payment", Amount: dec("120")},
		{ID: uuid.New(), RecordPayrollID: record, TargetPayrollID: targetA, Component: "red_cross", Amount: dec("30")},
		{ID: uuid.New(), RecordPayrollID: record, TargetPayrollID: targetB, Component: "court_order", Amount: dec("200")},
	}

	adjustment.RecomputeDeductions(rows)

	assert.Equal(t, "150.00", rows[0].GroupTotalDeduction.StringFixed(2))
	assert.Equal(t, "150.00", rows[1].GroupTotalDeduction.StringFixed(2))
	assert.Equal(t, "200.00", rows[2].GroupTotalDeduction.StringFixed(2))

	for _, row := range rows {
		assert.Equal(t, "350.00", row.RecordTotalDeduction.StringFixed(2))
	}
}
