package app

import (
	"database/sql"

	"go-payroll/internal/absence"
	"go-payroll/internal/absencethreshold"
	"go-payroll/internal/department"
	"go-payroll/internal/employee"
	"go-payroll/internal/jobgrade"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rbac"
	"go-payroll/internal/salary"
	"go-payroll/internal/servicebracket"
	"go-payroll/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	absenceRepo := absence.NewRepository(gormDB)
	thresholdRepo := absencethreshold.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	jobGradeRepo := jobgrade.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	bracketRepo := servicebracket.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	absenceService := absence.NewService(db, absenceRepo)
	thresholdService := absencethreshold.NewService(db, thresholdRepo)
	departmentService := department.NewServiceWithOutbox(db, departmentRepo, outboxRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo)
	jobGradeService := jobgrade.NewService(db, jobGradeRepo)
	salaryService := salary.NewService(db, salaryRepo)
	bracketService := servicebracket.NewService(db, bracketRepo)

	payrollService := payroll.NewService(db, payrollRepo, payroll.Providers{
		Employees:  employeeRepo,
		Salaries:   salaryRepo,
		Incentives: departmentRepo,
		Brackets:   bracketRepo,
		Thresholds: thresholdRepo,
		Absences:   absenceRepo,
	}, rdb, outboxRepo)

	// --- Handlers ---
	absenceHandler := absence.NewHandler(absenceService)
	thresholdHandler := absencethreshold.NewHandler(thresholdService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	jobGradeHandler := jobgrade.NewHandler(jobGradeService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)
	salaryHandler := salary.NewHandler(salaryService)
	bracketHandler := servicebracket.NewHandler(bracketService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		absence.RegisterRoutes(api, absenceHandler, rbacService)
		absencethreshold.RegisterRoutes(api, thresholdHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		jobgrade.RegisterRoutes(api, jobGradeHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		salary.RegisterRoutes(api, salaryHandler, rbacService)
		servicebracket.RegisterRoutes(api, bracketHandler, rbacService)
	}

	return nil
}
