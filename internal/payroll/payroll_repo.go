package payroll

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/gormtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, snapshot *PayrollSnapshot) error
	CreateBatch(ctx context.Context, snapshots []PayrollSnapshot) error
	Exists(ctx context.Context, employeeID string, year, month int) (bool, error)
	DeleteByPeriod(ctx context.Context, year, month int) error
	FindByPeriod(ctx context.Context, year, month int) ([]PayrollSnapshot, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]PayrollSnapshot, error)
	FindByDepartment(ctx context.Context, departmentID string, year, month int) ([]PayrollSnapshot, error)
	SummarizeByDepartment(ctx context.Context, year, month int) ([]DepartmentSummaryRow, error)
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

// Upsert replaces the snapshot for (employee, year, month) if one exists.
// The unique constraint is the last line of defense against concurrent
// writers; the service layer checks existence first for the conflict error.
func (r *repository) Upsert(ctx context.Context, snapshot *PayrollSnapshot) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"department_id",
				"base_salary",
				"department_incentive_percentage",
				"department_incentive_amount",
				"service_years_incentive_percentage",
				"service_years_incentive_amount",
				"attendance_adjustment_percentage",
				"attendance_adjustment_amount",
				"gross_salary",
				"absence_days",
				"years_of_service",
				"updated_at",
			}),
		}).
		Create(snapshot).Error
}

func (r *repository) CreateBatch(ctx context.Context, snapshots []PayrollSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(snapshots, 200).Error
}

func (r *repository) Exists(ctx context.Context, employeeID string, year, month int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollSnapshot{}).
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) DeleteByPeriod(ctx context.Context, year, month int) error {
	return r.db.WithContext(ctx).
		Where("year = ? AND month = ?", year, month).
		Delete(&PayrollSnapshot{}).Error
}

func (r *repository) FindByPeriod(ctx context.Context, year, month int) ([]PayrollSnapshot, error) {
	var snapshots []PayrollSnapshot
	query := `
SELECT
	payroll_snapshots.*,
	employees.full_name AS employee_name,
	departments.name AS department_name
FROM payroll_snapshots
JOIN employees ON employees.id = payroll_snapshots.employee_id
JOIN departments ON departments.id = payroll_snapshots.department_id
WHERE payroll_snapshots.year = ? AND payroll_snapshots.month = ?
ORDER BY employees.full_name ASC
`

	err := r.db.WithContext(ctx).Raw(query, year, month).Scan(&snapshots).Error
	return snapshots, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]PayrollSnapshot, error) {
	var snapshots []PayrollSnapshot
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&snapshots).Error
	return snapshots, err
}

func (r *repository) FindByDepartment(ctx context.Context, departmentID string, year, month int) ([]PayrollSnapshot, error) {
	var snapshots []PayrollSnapshot
	query := `
SELECT
	payroll_snapshots.*,
	employees.full_name AS employee_name,
	departments.name AS department_name
FROM payroll_snapshots
JOIN employees ON employees.id = payroll_snapshots.employee_id
JOIN departments ON departments.id = payroll_snapshots.department_id
WHERE payroll_snapshots.department_id = ?
	AND payroll_snapshots.year = ?
	AND payroll_snapshots.month = ?
ORDER BY employees.full_name ASC
`

	err := r.db.WithContext(ctx).Raw(query, departmentID, year, month).Scan(&snapshots).Error
	return snapshots, err
}

func (r *repository) SummarizeByDepartment(ctx context.Context, year, month int) ([]DepartmentSummaryRow, error) {
	var rows []DepartmentSummaryRow
	query := `
SELECT
	departments.id::text AS department_id,
	departments.name AS department_name,
	COUNT(*) AS employee_count,
	SUM(payroll_snapshots.base_salary)::text AS total_base_salary,
	SUM(payroll_snapshots.gross_salary)::text AS total_gross_salary
FROM payroll_snapshots
JOIN departments ON departments.id = payroll_snapshots.department_id
WHERE payroll_snapshots.year = ? AND payroll_snapshots.month = ?
GROUP BY departments.id, departments.name
ORDER BY departments.name ASC
`

	err := r.db.WithContext(ctx).Raw(query, year, month).Scan(&rows).Error
	return rows, err
}
