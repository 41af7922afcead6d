// Package absence prices unpaid leave against a monthly salary. A month
// counts as 30 payable days regardless of the calendar month.
package absence

import (
	"net/http"

	"github.com/shopspring/decimal"

	"go-payroll/internal/shared/apperror"
)

var daysPerMonth = decimal.NewFromInt(30)

var (
	ErrInvalidMonthlySalary = apperror.New(
		apperror.CodeValidationError,
		"Monthly salary must be a positive amount",
		http.StatusBadRequest,
	)

	ErrInvalidAbsenceDays = apperror.New(
		apperror.CodeValidationError,
		"Absence days must be between 0 and 30",
		http.StatusBadRequest,
	)
)

// Deduction returns the salary withheld for the given absence days.
func Deduction(monthlySalary decimal.Decimal, absenceDays int) (decimal.Decimal, error) {
	if monthlySalary.Sign() <= 0 {
		return decimal.Zero, ErrInvalidMonthlySalary
	}
	if absenceDays < 0 || absenceDays > 30 {
		return decimal.Zero, ErrInvalidAbsenceDays
	}

	days := decimal.NewFromInt(int64(absenceDays))
	return monthlySalary.Div(daysPerMonth).Mul(days), nil
}

// RemainingSalary returns what is left of the monthly salary after the
// absence deduction.
func RemainingSalary(monthlySalary decimal.Decimal, absenceDays int) (decimal.Decimal, error) {
	deduction, err := Deduction(monthlySalary, absenceDays)
	if err != nil {
		return decimal.Zero, err
	}
	return monthlySalary.Sub(deduction), nil
}
