package absence

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
	absences := r.Group("/absences")

	absences.Use(middleware.AuthMiddleware())

	{
		absences.POST("", rbac.Authorize(rbacService, "absence", "create"), h.Create)
		absences.GET("/period/:year/:month", rbac.Authorize(rbacService, "absence", "read"), h.GetAllByPeriod)
		absences.GET("/:id", rbac.Authorize(rbacService, "absence", "read"), h.GetById)
		absences.PUT("/:id", rbac.Authorize(rbacService, "absence", "update"), h.Update)
		absences.DELETE("/:id", rbac.Authorize(rbacService, "absence", "delete"), h.Delete)
	}

	employeeAbsences := r.Group("/employees/:employeeId/absences")
	employeeAbsences.Use(middleware.AuthMiddleware())
	{
		employeeAbsences.GET("", rbac.Authorize(rbacService, "absence", "read"), h.GetAllForEmployee)
	}
}
