package payperioderrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay period not found",
		http.StatusNotFound,
	)

	ErrPayPeriodExists = apperror.New(
		apperror.CodeConflict,
		"A pay period for this month already exists",
		http.StatusConflict,
	)

	ErrInvalidMonth = apperror.New(
		apperror.CodeValidationError,
		"Month must be between 1 and 12",
		http.StatusBadRequest,
	)

	ErrInvalidYear = apperror.New(
		apperror.CodeValidationError,
		"Year is out of range",
		http.StatusBadRequest,
	)

	ErrUnknownComponent = apperror.New(
		apperror.CodeValidationError,
		"Unknown pay component in toggle set",
		http.StatusBadRequest,
	)
)
