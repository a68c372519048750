package department

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/gormtx"
	"go-payroll/internal/shared/scope"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	SoftDelete(ctx context.Context, id string) error
	CurrentIncentive(ctx context.Context, departmentID string) (decimal.NullDecimal, error)
	AppendIncentiveHistory(ctx context.Context, row *IncentiveHistory) error
	FindIncentiveHistory(ctx context.Context, departmentID string) ([]IncentiveHistory, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(scope.NotDeleted).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(scope.NotDeleted).
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&Department{}).
		Scopes(scope.NotDeleted).
		Where("id = ?", id).
		Update("deleted_at", gorm.Expr("now()")).Error
}

func (r *repository) CurrentIncentive(ctx context.Context, departmentID string) (decimal.NullDecimal, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(scope.NotDeleted).
		Select("incentive_percentage").
		First(&dept, "id = ?", departmentID).Error
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return dept.IncentivePercentage, nil
}

func (r *repository) AppendIncentiveHistory(ctx context.Context, row *IncentiveHistory) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindIncentiveHistory(ctx context.Context, departmentID string) ([]IncentiveHistory, error) {
	var rows []IncentiveHistory
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("effective_date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}
