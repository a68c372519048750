package absencethreshold

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
	thresholds := r.Group("/absence-thresholds")

	thresholds.Use(middleware.AuthMiddleware())

	{
		thresholds.POST("", rbac.Authorize(rbacService, "absence_threshold", "create"), h.Create)
		thresholds.GET("", rbac.Authorize(rbacService, "absence_threshold", "read"), h.GetAll)
		thresholds.GET("/:id", rbac.Authorize(rbacService, "absence_threshold", "read"), h.GetById)
		thresholds.PUT("/:id", rbac.Authorize(rbacService, "absence_threshold", "update"), h.Update)
		thresholds.DELETE("/:id", rbac.Authorize(rbacService, "absence_threshold", "delete"), h.Delete)
	}
}
