package salary

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
	salaries := r.Group("/salaries")

	salaries.Use(middleware.AuthMiddleware())

	{
		salaries.POST("", rbac.Authorize(rbacService, "salary", "create"), h.Create)
		salaries.GET("/:id", rbac.Authorize(rbacService, "salary", "read"), h.GetById)
		salaries.DELETE("/:id", rbac.Authorize(rbacService, "salary", "delete"), h.Delete)
	}

	employeeSalaries := r.Group("/employees/:employeeId/salaries")
	employeeSalaries.Use(middleware.AuthMiddleware())
	{
		employeeSalaries.GET("", rbac.Authorize(rbacService, "salary", "read"), h.GetAllForEmployee)
		employeeSalaries.GET("/current", rbac.Authorize(rbacService, "salary", "read"), h.GetCurrent)
	}
}
