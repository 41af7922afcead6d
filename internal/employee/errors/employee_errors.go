package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrPersonnelIDTaken = apperror.New(
		apperror.CodeConflict,
		"An employee with this personnel ID already exists in the organization",
		http.StatusConflict,
	)

	ErrNegativeSalary = apperror.New(
		apperror.CodeValidationError,
		"Basic salary must be zero or positive",
		http.StatusBadRequest,
	)
)
