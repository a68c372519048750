package department

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	departments := r.Group("/departments")

	departments.Use(middleware.AuthMiddleware())

	{
		departments.GET("", rbac.Authorize(rbacService, "department", "read"), h.GetAll)
		departments.POST("", rbac.Authorize(rbacService, "department", "create"), h.Create)
		departments.GET("/:id", rbac.Authorize(rbacService, "department", "read"), h.GetById)
		departments.PUT("/:id", rbac.Authorize(rbacService, "department", "update"), h.Update)
		departments.PUT("/:id/incentive", rbac.Authorize(rbacService, "department", "update"), h.UpdateIncentive)
		departments.GET("/:id/incentive-history", rbac.Authorize(rbacService, "department", "read"), h.GetIncentiveHistory)
		departments.DELETE("/:id", rbac.Authorize(rbacService, "department", "delete"), h.Delete)
	}
}
