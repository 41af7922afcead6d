package severanceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrSeveranceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Severance record not found",
		http.StatusNotFound,
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

	ErrTenureTooShort = apperror.New(
		apperror.CodeValidationError,
		"Severance requires at least one full year of service",
		http.StatusBadRequest,
	)

	ErrInvalidServiceDates = apperror.New(
		apperror.CodeValidationError,
		"Service end date must be after the start date",
		http.StatusBadRequest,
	)

	ErrInvalidDailyWage = apperror.New(
		apperror.CodeValidationError,
		"Daily wage must be a positive amount",
		http.StatusBadRequest,
	)

	ErrUnknownSeveranceType = apperror.New(
		apperror.CodeValidationError,
		"Unknown severance type",
		http.StatusBadRequest,
	)
)
