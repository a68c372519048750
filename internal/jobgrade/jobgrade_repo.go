package jobgrade

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/gormtx"
	"go-payroll/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=jobgrade_repo.go -destination=mock/jobgrade_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, grade *JobGrade) error
	FindAll(ctx context.Context) ([]JobGrade, error)
	FindByID(ctx context.Context, id string) (*JobGrade, error)
	Update(ctx context.Context, grade *JobGrade) error
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

func (r *repository) Create(ctx context.Context, grade *JobGrade) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

func (r *repository) FindAll(ctx context.Context) ([]JobGrade, error) {
	var grades []JobGrade
	err := r.db.WithContext(ctx).
		Scopes(scope.NotDeleted).
		Order("name ASC").
		Find(&grades).Error
	return grades, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*JobGrade, error) {
	var grade JobGrade
	err := r.db.WithContext(ctx).
		Scopes(scope.NotDeleted).
		First(&grade, "id = ?", id).Error
	return &grade, err
}

func (r *repository) Update(ctx context.Context, grade *JobGrade) error {
	return r.db.WithContext(ctx).Save(grade).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&JobGrade{}).
		Scopes(scope.NotDeleted).
		Where("id = ?", id).
		Update("deleted_at", gorm.Expr("now()")).Error
}
