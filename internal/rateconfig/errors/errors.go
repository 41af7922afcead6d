package rateconfigerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidAmount = apperror.New(
		apperror.CodeValidationError,
		"Rate amounts must be valid non-negative decimals",
		http.StatusBadRequest,
	)

	ErrInvalidMultiplier = apperror.New(
		apperror.CodeValidationError,
		"Overtime multiplier must be a positive decimal",
		http.StatusBadRequest,
	)

	ErrInvalidDivisor = apperror.New(
		apperror.CodeValidationError,
		"Salary divisor must be a positive decimal",
		http.StatusBadRequest,
	)

	ErrInvalidPercent = apperror.New(
		apperror.CodeValidationError,
		"Percent must be a decimal between 0 and 1",
		http.StatusBadRequest,
	)

	ErrEmptyTaxSchedule = apperror.New(
		apperror.CodeValidationError,
		"A tax schedule needs at least one bracket",
		http.StatusBadRequest,
	)

	ErrOpenBracketNotLast = apperror.New(
		apperror.CodeValidationError,
		"Only the last tax bracket may omit its upper bound",
		http.StatusBadRequest,
	)
)
