package summaryerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay period not found in this organization",
		http.StatusNotFound,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found in this organization",
		http.StatusNotFound,
	)

	ErrInvalidYear = apperror.New(
		apperror.CodeValidationError,
		"Year must be a four digit number",
		http.StatusBadRequest,
	)
)
