package absencethreshold

import (
	"context"
	"database/sql"

	absencethresholderrors "go-payroll/internal/absencethreshold/errors"
	"go-payroll/internal/shared/ranges"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=absence_threshold_service.go -destination=mock/absence_threshold_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAbsenceThresholdRequest) (AbsenceThresholdResponse, error)
	GetAll(ctx context.Context) ([]AbsenceThresholdResponse, error)
	GetByID(ctx context.Context, id string) (AbsenceThresholdResponse, error)
	Update(ctx context.Context, id string, req UpdateAbsenceThresholdRequest) (AbsenceThresholdResponse, error)
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
	req CreateAbsenceThresholdRequest,
) (AbsenceThresholdResponse, error) {
	percentage, err := parseAdjustment(req.AdjustmentPercentage)
	if err != nil {
		return AbsenceThresholdResponse{}, err
	}
	if err := validateDaysRange(req.MinDays, req.MaxDays); err != nil {
		return AbsenceThresholdResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceThresholdResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if isActive {
		if err := s.checkOverlap(ctx, qtx, req.MinDays, req.MaxDays, ""); err != nil {
			return AbsenceThresholdResponse{}, err
		}
	}

	threshold := &AbsenceThreshold{
		ID:                   uuid.New(),
		Name:                 req.Name,
		MinDays:              req.MinDays,
		MaxDays:              req.MaxDays,
		AdjustmentPercentage: percentage,
		IsActive:             isActive,
	}

	if err := qtx.Create(ctx, threshold); err != nil {
		return AbsenceThresholdResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AbsenceThresholdResponse{}, err
	}

	return mapToResponse(*threshold), nil
}

func (s *service) GetAll(ctx context.Context) ([]AbsenceThresholdResponse, error) {
	thresholds, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(thresholds), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AbsenceThresholdResponse, error) {
	threshold, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AbsenceThresholdResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*threshold), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateAbsenceThresholdRequest,
) (AbsenceThresholdResponse, error) {
	percentage, err := parseAdjustment(req.AdjustmentPercentage)
	if err != nil {
		return AbsenceThresholdResponse{}, err
	}
	if err := validateDaysRange(req.MinDays, req.MaxDays); err != nil {
		return AbsenceThresholdResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceThresholdResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	threshold, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AbsenceThresholdResponse{}, mapRepositoryError(err)
	}

	isActive := threshold.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	if isActive {
		if err := s.checkOverlap(ctx, qtx, req.MinDays, req.MaxDays, id); err != nil {
			return AbsenceThresholdResponse{}, err
		}
	}

	threshold.Name = req.Name
	threshold.MinDays = req.MinDays
	threshold.MaxDays = req.MaxDays
	threshold.AdjustmentPercentage = percentage
	threshold.IsActive = isActive

	if err := qtx.Update(ctx, threshold); err != nil {
		return AbsenceThresholdResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AbsenceThresholdResponse{}, err
	}

	return mapToResponse(*threshold), nil
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

func (s *service) checkOverlap(
	ctx context.Context,
	repo Repository,
	minDays int,
	maxDays *int,
	excludeID string,
) error {
	active, err := repo.FindActive(ctx)
	if err != nil {
		return mapRepositoryError(err)
	}

	for i := range active {
		if active[i].ID.String() == excludeID {
			continue
		}
		if ranges.Overlaps(minDays, maxDays, active[i].MinDays, active[i].MaxDays) {
			return absencethresholderrors.ErrAbsenceThresholdOverlap
		}
	}

	return nil
}

// parseAdjustment accepts signed percentages, unlike service brackets.
func parseAdjustment(raw string) (decimal.Decimal, error) {
	percentage, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, absencethresholderrors.ErrInvalidAdjustmentPercentage
	}

	limit := decimal.NewFromInt(100)
	if percentage.LessThan(limit.Neg()) || percentage.GreaterThan(limit) {
		return decimal.Decimal{}, absencethresholderrors.ErrInvalidAdjustmentPercentage
	}
	return percentage, nil
}

func validateDaysRange(minDays int, maxDays *int) error {
	if maxDays != nil && *maxDays < minDays {
		return absencethresholderrors.ErrInvalidDaysRange
	}
	return nil
}

func mapToResponse(threshold AbsenceThreshold) AbsenceThresholdResponse {
	return AbsenceThresholdResponse{
		ID:                   threshold.ID.String(),
		Name:                 threshold.Name,
		MinDays:              threshold.MinDays,
		MaxDays:              threshold.MaxDays,
		AdjustmentPercentage: threshold.AdjustmentPercentage.String(),
		IsActive:             threshold.IsActive,
		CreatedAt:            threshold.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:            threshold.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func mapToListResponse(thresholds []AbsenceThreshold) []AbsenceThresholdResponse {
	res := make([]AbsenceThresholdResponse, len(thresholds))
	for i, th := range thresholds {
		res[i] = mapToResponse(th)
	}
	return res
}
