package salary

import (
	"context"
	"database/sql"
	"time"

	salaryerrors "go-payroll/internal/salary/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryRecordRequest) (SalaryRecordResponse, error)
	GetAllForEmployee(ctx context.Context, employeeID string) ([]SalaryRecordResponse, error)
	GetByID(ctx context.Context, id string) (SalaryRecordResponse, error)
	GetCurrent(ctx context.Context, employeeID string, asOf time.Time) (SalaryRecordResponse, error)
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
	req CreateSalaryRecordRequest,
) (SalaryRecordResponse, error) {
	baseSalary, err := decimal.NewFromString(req.BaseSalary)
	if err != nil || baseSalary.IsNegative() {
		return SalaryRecordResponse{}, salaryerrors.ErrInvalidBaseSalary
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return SalaryRecordResponse{}, salaryerrors.ErrInvalidEffectiveDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record := &SalaryRecord{
		ID:            uuid.New(),
		EmployeeID:    uuid.MustParse(req.EmployeeID),
		BaseSalary:    baseSalary,
		EffectiveDate: effectiveDate,
		Notes:         req.Notes,
	}

	if err := qtx.Create(ctx, record); err != nil {
		return SalaryRecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryRecordResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) GetAllForEmployee(
	ctx context.Context,
	employeeID string,
) ([]SalaryRecordResponse, error) {
	records, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryRecordResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SalaryRecordResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*record), nil
}

// GetCurrent resolves the salary in effect for the employee at asOf.
func (s *service) GetCurrent(
	ctx context.Context,
	employeeID string,
	asOf time.Time,
) (SalaryRecordResponse, error) {
	record, err := s.repo.FindCurrentOnOrBefore(ctx, employeeID, asOf)
	if err != nil {
		return SalaryRecordResponse{}, mapCurrentError(err)
	}

	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(record SalaryRecord) SalaryRecordResponse {
	return SalaryRecordResponse{
		ID:            record.ID.String(),
		EmployeeID:    record.EmployeeID.String(),
		EmployeeName:  record.EmployeeName,
		BaseSalary:    record.BaseSalary.String(),
		EffectiveDate: record.EffectiveDate.Format("2006-01-02"),
		Notes:         record.Notes,
	}
}

func mapToListResponse(records []SalaryRecord) []SalaryRecordResponse {
	res := make([]SalaryRecordResponse, len(records))
	for i, record := range records {
		res[i] = mapToResponse(record)
	}
	return res
}
