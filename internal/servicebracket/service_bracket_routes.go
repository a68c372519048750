package servicebracket

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
	brackets := r.Group("/service-brackets")

	brackets.Use(middleware.AuthMiddleware())

	{
		brackets.POST("", rbac.Authorize(rbacService, "service_bracket", "create"), h.Create)
		brackets.GET("", rbac.Authorize(rbacService, "service_bracket", "read"), h.GetAll)
		brackets.GET("/:id", rbac.Authorize(rbacService, "service_bracket", "read"), h.GetById)
		brackets.PUT("/:id", rbac.Authorize(rbacService, "service_bracket", "update"), h.Update)
		brackets.DELETE("/:id", rbac.Authorize(rbacService, "service_bracket", "delete"), h.Delete)
	}
}
