package summary

import (
	"github.com/gin-gonic/gin"

	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	summaries := r.Group("/summaries")
	summaries.Use(middleware.AuthMiddleware())
	{
		summaries.GET("/monthly", middleware.RBACAuthorize(rbacService, "summary", "read"), handler.Monthly)
		summaries.GET("/monthly/export", middleware.RBACAuthorize(rbacService, "summary", "read"), handler.ExportMonthly)
		summaries.GET("/yearly", middleware.RBACAuthorize(rbacService, "summary", "read"), handler.Yearly)
		summaries.GET("/employees/:id", middleware.RBACAuthorize(rbacService, "summary", "read"), handler.Employee)
	}
}
