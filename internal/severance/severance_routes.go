package severance

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
	severances := r.Group("/severances")
	severances.Use(middleware.AuthMiddleware())
	{
		severances.GET("", middleware.RBACAuthorize(rbacService, "severance", "read"), handler.GetAll)
		severances.GET("/:id", middleware.RBACAuthorize(rbacService, "severance", "read"), handler.GetById)
		severances.POST("", middleware.RBACAuthorize(rbacService, "severance", "create"), handler.Create)
		severances.DELETE("/:id", middleware.RBACAuthorize(rbacService, "severance", "delete"), handler.Delete)
	}
}
