package absence_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-payroll/internal/absence"
)

func TestDeduction(t *testing.T) {
	salary := decimal.RequireFromString("9000")

	got, err := absence.Deduction(salary, 3)
	require.NoError(t, err)
	assert.Equal(t, "900.00", got.StringFixed(2))

	got, err = absence.Deduction(salary, 0)
	require.NoError(t, err)
	assert.Equal(t, "0.00", got.StringFixed(2))

	got, err = absence.Deduction(salary, 30)
	require.NoError(t, err)
	assert.Equal(t, "9000.00", got.StringFixed(2))
}

func TestDeduction_Invalid(t *testing.T) {
	salary := decimal.RequireFromString("9000")

	_, err := absence.Deduction(decimal.Zero, 3)
	assert.ErrorIs(t, err, absence.ErrInvalidMonthlySalary)

	_, err = absence.Deduction(salary, 31)
	assert.ErrorIs(t, err, absence.ErrInvalidAbsenceDays)

	_, err = absence.Deduction(salary, -1)
	assert.ErrorIs(t, err, absence.ErrInvalidAbsenceDays)
}

func TestRemainingSalary(t *testing.T) {
	salary := decimal.RequireFromString("10000")

	got, err := absence.RemainingSalary(salary, 6)
	require.NoError(t, err)
	assert.Equal(t, "8000.00", got.StringFixed(2))

	deduction, err := absence.Deduction(salary, 6)
	require.NoError(t, err)
	assert.Equal(t, salary.StringFixed(2), got.Add(deduction).StringFixed(2))
}
