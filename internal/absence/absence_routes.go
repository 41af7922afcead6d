package absence

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
	absences := r.Group("/absences")
	absences.Use(middleware.AuthMiddleware())
	{
		absences.POST("/quote",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.Quote,
		)
	}
}
