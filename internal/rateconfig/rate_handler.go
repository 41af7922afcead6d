package rateconfig

import (
	"net/http"

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

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetEffective(c *gin.Context) {
	orgID := c.GetString("organization_id")

	resp, err := h.service.GetEffective(c.Request.Context(), orgID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SetOvertimeRate(c *gin.Context) {
	orgID := c.GetString("organization_id")

	var req SetOvertimeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.service.SetOvertimeRate(c.Request.Context(), orgID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, nil)
}

func (h *Handler) SetFlatCap(c *gin.Context) {
	orgID := c.GetString("organization_id")

	var req SetFlatCapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.service.SetFlatCap(c.Request.Context(), orgID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, nil)
}

func (h *Handler) SetSalaryRatio(c *gin.Context) {
	orgID := c.GetString("organization_id")

	var req SetSalaryRatioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.service.SetSalaryRatio(c.Request.Context(), orgID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, nil)
}

func (h *Handler) SetHardshipRate(c *gin.Context) {
	orgID := c.GetString("organization_id")

	var req SetHardshipRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.service.SetHardshipRate(c.Request.Context(), orgID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, nil)
}

func (h *Handler) SetPerDiemRate(c *gin.Context) {
	orgID := c.GetString("organization_id")

	var req SetPerDiemRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.service.SetPerDiemRate(c.Request.Context(), orgID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, nil)
}

func (h *Handler) SetPensionRate(c *gin.Context) {
	orgID := c.GetString("organization_id")

	var req SetPensionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.service.SetPensionRate(c.Request.Context(), orgID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, nil)
}

func (h *Handler) ReplaceTaxSchedule(c *gin.Context) {
	orgID := c.GetString("organization_id")

	var req ReplaceTaxScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.service.ReplaceTaxSchedule(c.Request.Context(), orgID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, nil)
}
