package jobgrade

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	jobgradeerrors "go-payroll/internal/jobgrade/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=jobgrade_service.go -destination=mock/jobgrade_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobGradeRequest) (JobGradeResponse, error)
	GetAll(ctx context.Context) ([]JobGradeResponse, error)
	GetByID(ctx context.Context, id string) (JobGradeResponse, error)
	Update(ctx context.Context, id string, req UpdateJobGradeRequest) (JobGradeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	req CreateJobGradeRequest,
) (JobGradeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobGradeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	grade := &JobGrade{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := qtx.Create(ctx, grade); err != nil {
		return JobGradeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return JobGradeResponse{}, err
	}

	return mapToResponse(*grade), nil
}

func (s *service) GetAll(ctx context.Context) ([]JobGradeResponse, error) {
	grades, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(grades), nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobGradeResponse, error) {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobGradeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*grade), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateJobGradeRequest,
) (JobGradeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobGradeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	grade, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobGradeResponse{}, mapRepositoryError(err)
	}

	grade.Name = req.Name
	grade.Description = req.Description

	if err := qtx.Update(ctx, grade); err != nil {
		return JobGradeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return JobGradeResponse{}, err
	}

	return mapToResponse(*grade), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.SoftDelete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return jobgradeerrors.ErrJobGradeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_job_grade_name" {
			return jobgradeerrors.ErrJobGradeNameAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_job_grade_name") {
		return jobgradeerrors.ErrJobGradeNameAlreadyExists
	}

	return err
}

func mapToResponse(grade JobGrade) JobGradeResponse {
	return JobGradeResponse{
		ID:          grade.ID.String(),
		Name:        grade.Name,
		Description: grade.Description,
		CreatedAt:   grade.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   grade.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func mapToListResponse(grades []JobGrade) []JobGradeResponse {
	res := make([]JobGradeResponse, len(grades))
	for i, g := range grades {
		res[i] = mapToResponse(g)
	}
	return res
}
