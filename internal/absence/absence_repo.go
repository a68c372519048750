package absence

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/gormtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=absence_repo.go -destination=mock/absence_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *AbsenceRecord) error
	FindAllByPeriod(ctx context.Context, year, month int) ([]AbsenceRecord, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]AbsenceRecord, error)
	FindByID(ctx context.Context, id string) (*AbsenceRecord, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*AbsenceRecord, error)
	Update(ctx context.Context, record *AbsenceRecord) error
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

func (r *repository) Create(ctx context.Context, record *AbsenceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindAllByPeriod(ctx context.Context, year, month int) ([]AbsenceRecord, error) {
	var records []AbsenceRecord
	query := `
SELECT
	absence_records.*,
	employees.full_name AS employee_name
FROM absence_records
JOIN employees ON employees.id = absence_records.employee_id
WHERE absence_records.year = ? AND absence_records.month = ?
ORDER BY employees.full_name ASC
`

	err := r.db.WithContext(ctx).Raw(query, year, month).Scan(&records).Error
	return records, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]AbsenceRecord, error) {
	var records []AbsenceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*AbsenceRecord, error) {
	var record AbsenceRecord
	err := r.db.WithContext(ctx).
		First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) FindByEmployeeAndPeriod(
	ctx context.Context,
	employeeID string,
	year, month int,
) (*AbsenceRecord, error) {
	var record AbsenceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		First(&record).Error
	return &record, err
}

func (r *repository) Update(ctx context.Context, record *AbsenceRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&AbsenceRecord{}, "id = ?", id).Error
}
