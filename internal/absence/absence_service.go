package absence

import (
	"context"
	"database/sql"

	absenceerrors "go-payroll/internal/absence/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=absence_service.go -destination=mock/absence_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAbsenceRecordRequest) (AbsenceRecordResponse, error)
	GetAllByPeriod(ctx context.Context, year, month int) ([]AbsenceRecordResponse, error)
	GetAllForEmployee(ctx context.Context, employeeID string) ([]AbsenceRecordResponse, error)
	GetByID(ctx context.Context, id string) (AbsenceRecordResponse, error)
	Update(ctx context.Context, id string, req UpdateAbsenceRecordRequest) (AbsenceRecordResponse, error)
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
	req CreateAbsenceRecordRequest,
) (AbsenceRecordResponse, error) {
	adjustment, err := parseAdjustmentOverride(req.AdjustmentPercentage)
	if err != nil {
		return AbsenceRecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record := &AbsenceRecord{
		ID:                   uuid.New(),
		EmployeeID:           uuid.MustParse(req.EmployeeID),
		Year:                 req.Year,
		Month:                req.Month,
		AbsenceDays:          req.AbsenceDays,
		AdjustmentPercentage: adjustment,
	}

	if err := qtx.Create(ctx, record); err != nil {
		return AbsenceRecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AbsenceRecordResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) GetAllByPeriod(ctx context.Context, year, month int) ([]AbsenceRecordResponse, error) {
	records, err := s.repo.FindAllByPeriod(ctx, year, month)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) GetAllForEmployee(ctx context.Context, employeeID string) ([]AbsenceRecordResponse, error) {
	records, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AbsenceRecordResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AbsenceRecordResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*record), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateAbsenceRecordRequest,
) (AbsenceRecordResponse, error) {
	adjustment, err := parseAdjustmentOverride(req.AdjustmentPercentage)
	if err != nil {
		return AbsenceRecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AbsenceRecordResponse{}, mapRepositoryError(err)
	}

	record.AbsenceDays = req.AbsenceDays
	record.AdjustmentPercentage = adjustment

	if err := qtx.Update(ctx, record); err != nil {
		return AbsenceRecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AbsenceRecordResponse{}, err
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

func parseAdjustmentOverride(raw *string) (decimal.NullDecimal, error) {
	if raw == nil {
		return decimal.NullDecimal{}, nil
	}

	value, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.NullDecimal{}, absenceerrors.ErrInvalidAdjustmentPercentage
	}

	limit := decimal.NewFromInt(100)
	if value.LessThan(limit.Neg()) || value.GreaterThan(limit) {
		return decimal.NullDecimal{}, absenceerrors.ErrInvalidAdjustmentPercentage
	}

	return decimal.NullDecimal{Decimal: value, Valid: true}, nil
}

func mapToResponse(record AbsenceRecord) AbsenceRecordResponse {
	resp := AbsenceRecordResponse{
		ID:           record.ID.String(),
		EmployeeID:   record.EmployeeID.String(),
		EmployeeName: record.EmployeeName,
		Year:         record.Year,
		Month:        record.Month,
		AbsenceDays:  record.AbsenceDays,
	}
	if record.AdjustmentPercentage.Valid {
		v := record.AdjustmentPercentage.Decimal.String()
		resp.AdjustmentPercentage = &v
	}
	return resp
}

func mapToListResponse(records []AbsenceRecord) []AbsenceRecordResponse {
	res := make([]AbsenceRecordResponse, len(records))
	for i, record := range records {
		res[i] = mapToResponse(record)
	}
	return res
}
