package adjustment

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
	adjustments := r.Group("/adjustments")
	adjustments.Use(middleware.AuthMiddleware())
	{
		earnings := adjustments.Group("/earnings")
		{
			earnings.GET("", middleware.RBACAuthorize(rbacService, "adjustment", "read"), handler.GetAllEarnings)
			earnings.GET("/:id", middleware.RBACAuthorize(rbacService, "adjustment", "read"), handler.GetEarning)
			earnings.POST("", middleware.RBACAuthorize(rbacService, "adjustment", "create"), handler.CreateEarning)
			earnings.PUT("/:id", middleware.RBACAuthorize(rbacService, "adjustment", "update"), handler.UpdateEarning)
			earnings.DELETE("/:id", middleware.RBACAuthorize(rbacService, "adjustment", "delete"), handler.DeleteEarning)
		}

		deductions := adjustments.Group("/deductions")
		{
			deductions.GET("", middleware.RBACAuthorize(rbacService, "adjustment", "read"), handler.GetAllDeductions)
			deductions.GET("/:id", middleware.RBACAuthorize(rbacService, "adjustment", "read"), handler.GetDeduction)
			deductions.POST("", middleware.RBACAuthorize(rbacService, "adjustment", "create"), handler.CreateDeduction)
			deductions.PUT("/:id", middleware.RBACAuthorize(rbacService, "adjustment", "update"), handler.UpdateDeduction)
			deductions.DELETE("/:id", middleware.RBACAuthorize(rbacService, "adjustment", "delete"), handler.DeleteDeduction)
		}
	}
}
