package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func testSchedule() []Bracket {
	return []Bracket{
		{Min: d("0"), Max: dp("2000"), Rate: d("0"), Deduction: d("0")},
		{Min: d("2000"), Max: dp("4000"), Rate: d("15"), Deduction: d("300")},
		{Min: d("4000"), Max: dp("7000"), Rate: d("20"), Deduction: d("500")},
		{Min: d("7000"), Max: dp("10000"), Rate: d("25"), Deduction: d("850")},
		{Min: d("10000"), Max: dp("14000"), Rate: d("30"), Deduction: d("1350")},
		{Min: d("14000"), Max: nil, Rate: d("35"), Deduction: d("2050")},
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"zero base", "0", "0"},
		{"negative base", "-100", "0"},
		{"inside exempt bracket", "1500", "0"},
		{"upper edge of exempt bracket", "2000", "0"},
		{"just above exempt bracket", "2000.01", "0"},
		{"middle bracket", "5000", "500"},
		{"bracket upper edge", "7000", "900"},
		{"fourth bracket lower side", "7000.01", "900"},
		{"open top bracket", "20000", "4950"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(d(tt.base), testSchedule())
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestCalculateFloorsNegativeResult(t *testing.T) {
	schedule := []Bracket{
		{Min: d("0"), Max: nil, Rate: d("10"), Deduction: d("1000")},
	}

	got := Calculate(d("100"), schedule)
	assert.True(t, got.IsZero(), "tax below zero must floor at zero, got %s", got)
}

func TestCalculateNoMatchingBracket(t *testing.T) {
	schedule := []Bracket{
		{Min: d("5000"), Max: dp("9000"), Rate: d("20"), Deduction: d("500")},
	}

	got := Calculate(d("100"), schedule)
	assert.True(t, got.IsZero())
}

func TestCalculateRoundsHalfUp(t *testing.T) {
	schedule := []Bracket{
		{Min: d("0"), Max: nil, Rate: d("15"), Deduction: d("0")},
	}

	// 33.33 * 15% = 4.9995 -> 5.00
	got := Calculate(d("33.33"), schedule)
	assert.True(t, d("5.00").Equal(got), "got %s", got)
}
