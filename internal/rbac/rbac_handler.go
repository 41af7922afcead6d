package rbac

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce answers whether a user may perform an action on a resource
// inside an organization. It is a read-only probe; policies themselves
// are managed out of band.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidationError, "Invalid input", err.Error())
		return
	}

	if !normalizeEnforceRequest(&req) {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidationError,
			"user_id, organization_id, resource, and action are required", nil)
		return
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{
		Allowed: allowed,
	}, nil)
}

func normalizeEnforceRequest(req *EnforceRequest) bool {
	req.UserID = strings.TrimSpace(req.UserID)
	req.OrganizationID = strings.TrimSpace(req.OrganizationID)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	return req.UserID != "" && req.OrganizationID != "" && req.Resource != "" && req.Action != ""
}
