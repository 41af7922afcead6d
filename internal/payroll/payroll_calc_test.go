package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-payroll/internal/payroll"
	"go-payroll/internal/rateconfig"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func facts(salary string) payroll.EmployeeFacts {
	return payroll.EmployeeFacts{
		BasicSalary:  dec(salary),
		WorkingArea:  rateconfig.AreaOther,
		DailyPerDiem: decimal.Zero,
	}
}

func TestCalculate_OvertimeAndTax(t *testing.T) {
	p := &payroll.Payroll{
		BasicSalary:  dec("10000"),
		EveningHours: 10,
	}

	err := payroll.Calculate(p, facts("10000"), rateconfig.Default())
	require.NoError(t, err)

	// 10 hours at (10000 / 240) * 1.25.
	assert.Equal(t, "520.83", p.Overtime.StringFixed(2))
	assert.Equal(t, "10520.83", p.GrossPay.StringFixed(2))
	assert.Equal(t, "10520.83", p.GrossTaxablePay.StringFixed(2))
	assert.Equal(t, "0.00", p.GrossNonTaxablePay.StringFixed(2))

	// 30% bracket: 10520.83 * 0.30 - 1350.
	assert.Equal(t, "1806.25", p.EmploymentIncomeTax.StringFixed(2))
	assert.Equal(t, "700.00", p.EmployeePensionContribution.StringFixed(2))
	assert.Equal(t, "1100.00", p.EmployerPensionContribution.StringFixed(2))
	assert.Equal(t, "2506.25", p.TotalPayrollDeduction.StringFixed(2))
	assert.Equal(t, "8014.58", p.NetPay.StringFixed(2))
	assert.Equal(t, "11620.83", p.Expense.StringFixed(2))
}

func TestCalculate_AllowanceSplits(t *testing.T) {
	p := &payroll.Payroll{
		BasicSalary:           dec("8000"),
		TransportHomeToOffice: dec("900"),
		TransportForWork:      dec("2500"),
		PerDiem:               dec("750"),
		HardshipAllowance:     dec("1500"),
	}

	emp := payroll.EmployeeFacts{
		BasicSalary:        dec("8000"),
		WorkingArea:        rateconfig.AreaNonGovernmentalExpert,
		WorkingEnvironment: rateconfig.EnvironmentAdverse,
		DailyPerDiem:       dec("1500"),
	}

	err := payroll.Calculate(p, emp, rateconfig.Default())
	require.NoError(t, err)

	// Flat cap 600.
	assert.Equal(t, "300.00", p.TransportHomeToOfficeTaxable.StringFixed(2))
	assert.Equal(t, "600.00", p.TransportHomeToOfficeNonTaxable.StringFixed(2))

	// Limit is salary/4 = 2000, below the 2200 cap.
	assert.Equal(t, "500.00", p.TransportForWorkTaxable.StringFixed(2))
	assert.Equal(t, "2000.00", p.TransportForWorkNonTaxable.StringFixed(2))

	// Expert class: daily limit 320 is under the 500 cap, so the daily
	// taxable part is 1500 - 500 = 1000, scaled by 750/1500.
	assert.Equal(t, "500.00", p.PerDiemTaxable.StringFixed(2))
	assert.Equal(t, "250.00", p.PerDiemNonTaxable.StringFixed(2))

	// Adverse environment exempts up to 25% of salary.
	assert.Equal(t, "0.00", p.HardshipAllowanceTaxable.StringFixed(2))
	assert.Equal(t, "1500.00", p.HardshipAllowanceNonTaxable.StringFixed(2))

	assert.True(t, p.GrossPay.Equal(p.GrossTaxablePay.Add(p.GrossNonTaxablePay)),
		"gross %s != taxable %s + non-taxable %s", p.GrossPay, p.GrossTaxablePay, p.GrossNonTaxablePay)
}

func TestCalculate_CostSharePay(t *testing.T) {
	p := &payroll.Payroll{
		BasicSalary:      dec("10000"),
		CostSharePercent: dec("10"),
	}

	err := payroll.Calculate(p, facts("10000"), rateconfig.Default())
	require.NoError(t, err)

	assert.Equal(t, "1000.00", p.UniversityCostSharePay.StringFixed(2))
	assert.True(t, p.TotalPayrollDeduction.GreaterThanOrEqual(dec("1000")))
}

func TestCalculate_ExemptComponentsStayUntaxed(t *testing.T) {
	base := &payroll.Payroll{BasicSalary: dec("5000")}
	err := payroll.Calculate(base, facts("5000"), rateconfig.Default())
	require.NoError(t, err)

	withExempt := &payroll.Payroll{
		BasicSalary:      dec("5000"),
		MedicalAllowance: dec("2000"),
		CashGift:         dec("500"),
	}
	err = payroll.Calculate(withExempt, facts("5000"), rateconfig.Default())
	require.NoError(t, err)

	assert.Equal(t, base.EmploymentIncomeTax.StringFixed(2), withExempt.EmploymentIncomeTax.StringFixed(2))
	assert.Equal(t, "2500.00", withExempt.GrossNonTaxablePay.StringFixed(2))
	assert.Equal(t, base.GrossPay.Add(dec("2500")).StringFixed(2), withExempt.GrossPay.StringFixed(2))
}

func TestCalculate_NoSalaryNoOvertime(t *testing.T) {
	p := &payroll.Payroll{
		BasicSalary:  dec("3000"),
		EveningHours: 8,
		NightHours:   4,
	}

	err := payroll.Calculate(p, payroll.EmployeeFacts{BasicSalary: decimal.Zero}, rateconfig.Default())
	require.NoError(t, err)

	assert.True(t, p.Overtime.IsZero())
}

func TestCalculate_GrossIdentity(t *testing.T) {
	cases := []struct {
		name string
		p    payroll.Payroll
		emp  payroll.EmployeeFacts
	}{
		{
			name: "everything at once",
			p: payroll.Payroll{
				BasicSalary:           dec("12000"),
				EveningHours:          5,
				PublicHolidayHours:    2,
				HousingAllowance:      dec("1500"),
				Commission:            dec("800"),
				TransportHomeToOffice: dec("700"),
				FuelForWork:           dec("3200"),
				PerDiem:               dec("2400"),
				HardshipAllowance:     dec("5000"),
				TuitionFees:           dec("1000"),
				LoanPayment:           dec("900"),
			},
			emp: payroll.EmployeeFacts{
				BasicSalary:        dec("12000"),
				WorkingArea:        rateconfig.AreaNonGovernmentalManager,
				WorkingEnvironment: rateconfig.EnvironmentVeryAdverse,
				DailyPerDiem:       dec("1200"),
			},
		},
		{
			name: "fully non-taxable per diem class",
			p: payroll.Payroll{
				BasicSalary: dec("6000"),
				PerDiem:     dec("1800"),
			},
			emp: payroll.EmployeeFacts{
				BasicSalary:  dec("6000"),
				WorkingArea:  rateconfig.AreaGovernmentOfficial,
				DailyPerDiem: dec("600"),
			},
		},
		{
			name: "unknown area makes per diem taxable",
			p: payroll.Payroll{
				BasicSalary: dec("6000"),
				PerDiem:     dec("1800"),
			},
			emp: payroll.EmployeeFacts{
				BasicSalary:  dec("6000"),
				WorkingArea:  "head_office",
				DailyPerDiem: dec("600"),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.p
			err := payroll.Calculate(&p, tc.emp, rateconfig.Default())
			require.NoError(t, err)

			assert.True(t, p.GrossPay.Equal(p.GrossTaxablePay.Add(p.GrossNonTaxablePay)),
				"gross %s != taxable %s + non-taxable %s", p.GrossPay, p.GrossTaxablePay, p.GrossNonTaxablePay)
			assert.True(t, p.NetPay.Equal(p.GrossPay.Sub(p.TotalPayrollDeduction).Round(2)))
			assert.True(t, p.Expense.Equal(p.GrossPay.Add(p.EmployerPensionContribution)))
		})
	}
}
