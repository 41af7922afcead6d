package allowance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertSplit(t *testing.T, got Split, taxable, nonTaxable string) {
	t.Helper()
	assert.True(t, d(taxable).Equal(got.Taxable), "taxable: want %s got %s", taxable, got.Taxable)
	assert.True(t, d(nonTaxable).Equal(got.NonTaxable), "non-taxable: want %s got %s", nonTaxable, got.NonTaxable)
}

func TestFlatCap(t *testing.T) {
	cap := d("600")

	tests := []struct {
		name       string
		amount     string
		taxable    string
		nonTaxable string
	}{
		{"under cap", "400", "0", "400"},
		{"at cap", "600", "0", "600"},
		{"over cap", "800", "200", "600"},
		{"zero", "0", "0", "0"},
		{"negative treated as zero", "-50", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSplit(t, FlatCap(d(tt.amount), cap), tt.taxable, tt.nonTaxable)
		})
	}
}

func TestSalaryRatio(t *testing.T) {
	divisor := d("4")
	cap := d("2200")

	tests := []struct {
		name       string
		amount     string
		salary     string
		taxable    string
		nonTaxable string
	}{
		// salary 8000 -> limit 2000, limit < cap
		{"within limit", "1500", "8000", "0", "1500"},
		{"limit binds before cap", "3000", "8000", "1000", "2000"},
		// salary 12000 -> limit 3000 >= cap, cap binds
		{"cap binds", "3200", "12000", "1000", "2200"},
		{"within limit high salary", "2500", "12000", "0", "2500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalaryRatio(d(tt.amount), d(tt.salary), divisor, cap)
			assertSplit(t, got, tt.taxable, tt.nonTaxable)
		})
	}
}

func TestHardship(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		salary     string
		percent    string
		taxable    string
		nonTaxable string
	}{
		{"adverse within limit", "2000", "10000", "0.25", "0", "2000"},
		{"adverse over limit", "3000", "10000", "0.25", "500", "2500"},
		{"very adverse over limit", "5000", "10000", "0.40", "1000", "4000"},
		{"no qualifying environment", "1000", "10000", "0", "1000", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hardship(d(tt.amount), d(tt.salary), d(tt.percent))
			assertSplit(t, got, tt.taxable, tt.nonTaxable)
		})
	}
}

func TestPerDiem(t *testing.T) {
	managerRule := PerDiemRule{PercentLimit: d("0.05"), CapAmount: d("1000")}
	expertRule := PerDiemRule{PercentLimit: d("0.04"), CapAmount: d("500")}
	exemptRule := PerDiemRule{FullyNonTaxable: true}

	t.Run("fully non taxable class", func(t *testing.T) {
		got := PerDiem(d("5000"), d("500"), d("8000"), exemptRule)
		assertSplit(t, got, "0", "5000")
	})

	t.Run("daily rate within percent limit", func(t *testing.T) {
		// salary 10000, limit 500, daily 400 -> fully exempt
		got := PerDiem(d("1200"), d("400"), d("10000"), managerRule)
		assertSplit(t, got, "0", "1200")
	})

	t.Run("limit below cap", func(t *testing.T) {
		// salary 10000, limit 500 < cap 1000, daily 1200
		// taxable daily = 1200 - 1000 = 200; scaled over 3 days
		got := PerDiem(d("3600"), d("1200"), d("10000"), managerRule)
		assertSplit(t, got, "600", "3000")
	})

	t.Run("limit above cap", func(t *testing.T) {
		// salary 24000, limit 1200 >= cap 1000, daily 1500
		// taxable daily = 1500 - 1200 = 300
		got := PerDiem(d("1500"), d("1500"), d("24000"), managerRule)
		assertSplit(t, got, "300", "1200")
	})

	t.Run("expert class uses its own rule", func(t *testing.T) {
		// salary 10000, limit 400 < cap 500, daily 800
		// taxable daily = 800 - 500 = 300
		got := PerDiem(d("800"), d("800"), d("10000"), expertRule)
		assertSplit(t, got, "300", "500")
	})

	t.Run("missing daily rate makes claim taxable", func(t *testing.T) {
		got := PerDiem(d("900"), decimal.Zero, d("10000"), managerRule)
		assertSplit(t, got, "900", "0")
	})
}

func TestSplitSumsToAmount(t *testing.T) {
	amounts := []string{"0.01", "599.99", "600", "600.01", "12345.67"}

	for _, a := range amounts {
		amount := d(a)

		splits := []Split{
			FlatCap(amount, d("600")),
			SalaryRatio(amount, d("8000"), d("4"), d("2200")),
			Hardship(amount, d("8000"), d("0.25")),
			PerDiem(amount, d("700"), d("8000"), PerDiemRule{PercentLimit: d("0.05"), CapAmount: d("1000")}),
		}

		for i, s := range splits {
			assert.True(t, s.Total().Equal(amount), "split %d for amount %s: %s + %s", i, a, s.Taxable, s.NonTaxable)
			assert.False(t, s.Taxable.IsNegative(), "split %d taxable negative", i)
			assert.False(t, s.NonTaxable.IsNegative(), "split %d non-taxable negative", i)
		}
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassFullyTaxable, Classify(ComponentBasicSalary))
	assert.Equal(t, ClassPartiallyTaxable, Classify(ComponentTransportForWork))
	assert.Equal(t, ClassNonTaxable, Classify(ComponentMedicalAllowance))
	assert.Equal(t, ClassDeduction, Classify("loan_payment"))
	assert.Equal(t, ClassUnknown, Classify("not_a_component"))
	assert.Equal(t, ClassUnknown, Classify("food_deduction"))
}

func TestIsPensionable(t *testing.T) {
	assert.True(t, IsPensionable(ComponentBasicSalary))
	assert.False(t, IsPensionable(ComponentOvertime))
}
