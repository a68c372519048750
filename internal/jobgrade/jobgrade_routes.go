package jobgrade

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
	grades := r.Group("/job-grades")

	grades.Use(middleware.AuthMiddleware())

	{
		grades.GET("", rbac.Authorize(rbacService, "job_grade", "read"), h.GetAll)
		grades.POST("", rbac.Authorize(rbacService, "job_grade", "create"), h.Create)
		grades.GET("/:id", rbac.Authorize(rbacService, "job_grade", "read"), h.GetById)
		grades.PUT("/:id", rbac.Authorize(rbacService, "job_grade", "update"), h.Update)
		grades.DELETE("/:id", rbac.Authorize(rbacService, "job_grade", "delete"), h.Delete)
	}
}
