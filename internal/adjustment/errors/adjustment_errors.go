package adjustmenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAdjustmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Adjustment not found",
		http.StatusNotFound,
	)

	ErrRecordPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Record payroll not found in this organization",
		http.StatusNotFound,
	)

	ErrTargetPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Target payroll not found in this organization",
		http.StatusNotFound,
	)

	ErrPayrollEmployeeMismatch = apperror.New(
		apperror.CodeValidationError,
		"Record and target payrolls must belong to the same employee",
		http.StatusBadRequest,
	)

	ErrUnknownEarningComponent = apperror.New(
		apperror.CodeValidationError,
		"Component is not a recognized earning component",
		http.StatusBadRequest,
	)

	ErrUnknownDeductionComponent = apperror.New(
		apperror.CodeValidationError,
		"Component is not a recognized deduction component",
		http.StatusBadRequest,
	)

	ErrNegativeAmount = apperror.New(
		apperror.CodeValidationError,
		"Adjustment amount must be zero or positive",
		http.StatusBadRequest,
	)

	ErrPerDiemWithoutDailyRate = apperror.New(
		apperror.CodeValidationError,
		"Per diem cannot be adjusted for an employee without a daily per diem rate",
		http.StatusBadRequest,
	)

	ErrHardshipNotEligible = apperror.New(
		apperror.CodeValidationError,
		"Hardship allowance requires a qualifying working environment",
		http.StatusBadRequest,
	)

	ErrInvalidPeriodRange = apperror.New(
		apperror.CodeValidationError,
		"Period end must not be before period start",
		http.StatusBadRequest,
	)
)
