package rateconfig

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
	rates := r.Group("/rates")
	rates.Use(middleware.AuthMiddleware())
	{
		rates.GET("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "rates", "read"),
			handler.GetEffective,
		)
		rates.POST("/overtime",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "rates", "update"),
			handler.SetOvertimeRate,
		)
		rates.POST("/flat-caps",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "rates", "update"),
			handler.SetFlatCap,
		)
		rates.POST("/salary-ratios",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "rates", "update"),
			handler.SetSalaryRatio,
		)
		rates.POST("/hardship",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "rates", "update"),
			handler.SetHardshipRate,
		)
		rates.POST("/per-diem",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "rates", "update"),
			handler.SetPerDiemRate,
		)
		rates.POST("/pension",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "rates", "update"),
			handler.SetPensionRate,
		)
		rates.PUT("/tax-schedule",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "rates", "update"),
			handler.ReplaceTaxSchedule,
		)
	}
}
