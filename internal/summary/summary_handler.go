package summary

import (
	"net/http"
	"strconv"

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

func (h *Handler) Monthly(c *gin.Context) {
	orgID := c.GetString("organization_id")
	payPeriodID := c.Query("pay_period_id")
	if payPeriodID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "pay_period_id is required")
		return
	}

	resp, err := h.service.Monthly(c.Request.Context(), orgID, payPeriodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Yearly(c *gin.Context) {
	orgID := c.GetString("organization_id")

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "year must be a number")
		return
	}

	resp, err := h.service.Yearly(c.Request.Context(), orgID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Employee(c *gin.Context) {
	orgID := c.GetString("organization_id")
	employeeID := c.Param("id")

	resp, err := h.service.Employee(c.Request.Context(), orgID, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportMonthly(c *gin.Context) {
	orgID := c.GetString("organization_id")
	payPeriodID := c.Query("pay_period_id")
	if payPeriodID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "pay_period_id is required")
		return
	}

	data, filename, err := h.service.ExportMonthly(c.Request.Context(), orgID, payPeriodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(
		http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data,
	)
}
