package employee

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/gormtx"
	"go-payroll/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindAllActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
	SoftDelete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: gormtx.Bind(r.db, tx), tx: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employees.*, departments.name AS department_name, job_grades.name AS job_grade_name").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Joins("JOIN job_grades ON job_grades.id = employees.job_grade_id").
		Where("employees.deleted_at IS NULL").
		Order("employees.employee_number ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employees.*, departments.name AS department_name, job_grades.name AS job_grade_name").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Joins("JOIN job_grades ON job_grades.id = employees.job_grade_id").
		Where("employees.deleted_at IS NULL").
		Where("employees.id = ?", id).
		First(&empl).Error
	return &empl, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.NotDeleted).
		Where("employment_status = ?", StatusActive).
		Order("employee_number ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(scope.NotDeleted).
		Where("id = ?", id).
		Update("deleted_at", gorm.Expr("now()")).Error
}
