package payperiod

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
	periods := r.Group("/pay-periods")
	periods.Use(middleware.AuthMiddleware())
	{
		periods.GET("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "payperiod", "read"),
			handler.GetAll,
		)
		periods.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "payperiod", "read"),
			handler.GetByID,
		)
		periods.GET("/:id/components",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "payperiod", "read"),
			handler.GetComponents,
		)
		periods.PUT("/:id/components",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payperiod", "update"),
			handler.SetComponents,
		)
		periods.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "payperiod", "update"),
			handler.Create,
		)
		periods.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "payperiod", "update"),
			handler.Delete,
		)
	}
}
