package servicebracket

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/gormtx"
	"go-payroll/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=service_bracket_repo.go -destination=mock/service_bracket_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, bracket *ServiceBracket) error
	FindAll(ctx context.Context) ([]ServiceBracket, error)
	FindActive(ctx context.Context) ([]ServiceBracket, error)
	FindByID(ctx context.Context, id string) (*ServiceBracket, error)
	Update(ctx context.Context, bracket *ServiceBracket) error
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

func (r *repository) Create(ctx context.Context, bracket *ServiceBracket) error {
	return r.db.WithContext(ctx).Create(bracket).Error
}

func (r *repository) FindAll(ctx context.Context) ([]ServiceBracket, error) {
	var brackets []ServiceBracket
	err := r.db.WithContext(ctx).
		Scopes(scope.NotDeleted).
		Order("min_years ASC").
		Find(&brackets).Error
	return brackets, err
}

func (r *repository) FindActive(ctx context.Context) ([]ServiceBracket, error) {
	var brackets []ServiceBracket
	err := r.db.WithContext(ctx).
		Scopes(scope.NotDeleted).
		Where("is_active = ?", true).
		Order("min_years ASC").
		Find(&brackets).Error
	return brackets, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*ServiceBracket, error) {
	var bracket ServiceBracket
	err := r.db.WithContext(ctx).
		Scopes(scope.NotDeleted).
		First(&bracket, "id = ?", id).Error
	return &bracket, err
}

func (r *repository) Update(ctx context.Context, bracket *ServiceBracket) error {
	return r.db.WithContext(ctx).Save(bracket).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&ServiceBracket{}).
		Scopes(scope.NotDeleted).
		Where("id = ?", id).
		Update("deleted_at", gorm.Expr("now()")).Error
}
