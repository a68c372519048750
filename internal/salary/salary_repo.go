package salary

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/gormtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *SalaryRecord) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error)
	FindByID(ctx context.Context, id string) (*SalaryRecord, error)
	FindCurrentOnOrBefore(ctx context.Context, employeeID string, asOf time.Time) (*SalaryRecord, error)
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error) {
	var records []SalaryRecord
	query := `
SELECT
	salary_records.*,
	employees.full_name AS employee_name
FROM salary_records
JOIN employees ON employees.id = salary_records.employee_id
WHERE salary_records.employee_id = ?
ORDER BY
	salary_records.effective_date DESC,
	salary_records.created_at DESC
`

	err := r.db.WithContext(ctx).Raw(query, employeeID).Scan(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		First(&record, "id = ?", id).Error
	return &record, err
}

// FindCurrentOnOrBefore returns the salary record in effect at asOf: the one
// with the greatest effective_date <= asOf. The secondary created_at/id sort
// makes the result deterministic, although the unique constraint on
// (employee_id, effective_date) means one employee can never actually tie.
func (r *repository) FindCurrentOnOrBefore(ctx context.Context, employeeID string, asOf time.Time) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("effective_date <= ?", asOf.Format("2006-01-02")).
		Order("effective_date DESC, created_at DESC, id DESC").
		First(&record).Error
	return &record, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&SalaryRecord{}, "id = ?", id).Error
}
