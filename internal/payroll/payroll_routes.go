package payroll

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	payroll := r.Group("/payroll")

	payroll.Use(middleware.AuthMiddleware())

	{
		payroll.POST("/calculate",
			rbac.Authorize(rbacService, "payroll", "generate"),
			h.Calculate,
		)
		payroll.POST("/generate/:year/:month",
			rbac.Authorize(rbacService, "payroll", "generate"),
			middleware.RateLimitByUser(1, 2),
			middleware.Idempotency(rdb),
			h.Generate,
		)
		payroll.GET("/snapshots",
			rbac.Authorize(rbacService, "payroll", "read"),
			h.GetSnapshots,
		)
		payroll.GET("/summary/:year/:month",
			rbac.Authorize(rbacService, "payroll", "read"),
			h.GetDepartmentSummary,
		)
	}
}
