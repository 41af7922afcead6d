package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll record not found",
		http.StatusNotFound,
	)

	ErrPayrollAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A payroll record already exists for this employee and pay period",
		http.StatusConflict,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found in this organization",
		http.StatusNotFound,
	)

	ErrPayPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay period not found in this organization",
		http.StatusNotFound,
	)

	ErrPerDiemWithoutDailyRate = apperror.New(
		apperror.CodeValidationError,
		"Per diem cannot be claimed for an employee without a daily per diem rate",
		http.StatusBadRequest,
	)

	ErrHardshipNotEligible = apperror.New(
		apperror.CodeValidationError,
		"Hardship allowance requires a qualifying working environment",
		http.StatusBadRequest,
	)

	ErrCostShareExceedsDebt = apperror.New(
		apperror.CodeValidationError,
		"Cumulative university cost share would exceed the employee's outstanding debt",
		http.StatusBadRequest,
	)

	ErrMissingContractSalary = apperror.New(
		apperror.CodeValidationError,
		"Employee has no contract salary on file",
		http.StatusBadRequest,
	)

	ErrNegativeAmount = apperror.New(
		apperror.CodeValidationError,
		"Pay component amounts must be zero or positive",
		http.StatusBadRequest,
	)

	ErrNegativeHours = apperror.New(
		apperror.CodeValidationError,
		"Overtime hours must be zero or positive",
		http.StatusBadRequest,
	)
)
