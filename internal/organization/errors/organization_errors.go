package organizationerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)

	ErrOrganizationNameTaken = apperror.New(
		apperror.CodeConflict,
		"An organization with this name already exists",
		http.StatusConflict,
	)
)
