package rbac

import (
	"github.com/gin-gonic/gin"

	"go-payroll/internal/middleware"
)

// RegisterRoutes exposes the enforcement probe used by operators to
// check a user's effective permissions inside an organization.
func RegisterRoutes(r *gin.Engine, handler *Handler) {
	group := r.Group("/rbac")
	{
		group.POST("/enforce", middleware.RateLimitByIP(5, 10), handler.Enforce)
	}
}
