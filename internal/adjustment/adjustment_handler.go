package adjustment

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

func (h *Handler) CreateEarning(c *gin.Context) {
	orgID := c.GetString("organization_id")

	var req CreateEarningAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.CreateEarning(c.Request.Context(), orgID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateEarning(c *gin.Context) {
	orgID := c.GetString("organization_id")
	id := c.Param("id")

	var req UpdateEarningAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.UpdateEarning(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteEarning(c *gin.Context) {
	orgID := c.GetString("organization_id")
	id := c.Param("id")

	if err := h.service.DeleteEarning(c.Request.Context(), orgID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetEarning(c *gin.Context) {
	orgID := c.GetString("organization_id")
	id := c.Param("id")

	resp, err := h.service.GetEarning(c.Request.Context(), orgID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAllEarnings(c *gin.Context) {
	orgID := c.GetString("organization_id")

	resp, err := h.service.GetAllEarnings(c.Request.Context(), orgID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateDeduction(c *gin.Context) {
	orgID := c.GetString("organization_id")

	var req CreateDeductionAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.CreateDeduction(c.Request.Context(), orgID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateDeduction(c *gin.Context) {
	orgID := c.GetString("organization_id")
	id := c.Param("id")

	var req UpdateDeductionAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.UpdateDeduction(c.Request.Context(), orgID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteDeduction(c *gin.Context) {
	orgID := c.GetString("organization_id")
	id := c.Param("id")

	if err := h.service.DeleteDeduction(c.Request.Context(), orgID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetDeduction(c *gin.Context) {
	orgID := c.GetString("organization_id")
	id := c.Param("id")

	resp, err := h.service.GetDeduction(c.Request.Context(), orgID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAllDeductions(c *gin.Context) {
	orgID := c.GetString("organization_id")

	resp, err := h.service.GetAllDeductions(c.Request.Context(), orgID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
