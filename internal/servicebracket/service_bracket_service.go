package servicebracket

import (
	"context"
	"database/sql"

	servicebracketerrors "go-payroll/internal/servicebracket/errors"
	"go-payroll/internal/shared/ranges"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service_bracket_service.go -destination=mock/service_bracket_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateServiceBracketRequest) (ServiceBracketResponse, error)
	GetAll(ctx context.Context) ([]ServiceBracketResponse, error)
	GetByID(ctx context.Context, id string) (ServiceBracketResponse, error)
	Update(ctx context.Context, id string, req UpdateServiceBracketRequest) (ServiceBracketResponse, error)
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
	req CreateServiceBracketRequest,
) (ServiceBracketResponse, error) {
	percentage, err := parsePercentage(req.IncentivePercentage)
	if err != nil {
		return ServiceBracketResponse{}, err
	}
	if err := validateYearsRange(req.MinYears, req.MaxYears); err != nil {
		return ServiceBracketResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ServiceBracketResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if isActive {
		if err := s.checkOverlap(ctx, qtx, req.MinYears, req.MaxYears, ""); err != nil {
			return ServiceBracketResponse{}, err
		}
	}

	bracket := &ServiceBracket{
		ID:                  uuid.New(),
		Name:                req.Name,
		MinYears:            req.MinYears,
		MaxYears:            req.MaxYears,
		IncentivePercentage: percentage,
		IsActive:            isActive,
	}

	if err := qtx.Create(ctx, bracket); err != nil {
		return ServiceBracketResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ServiceBracketResponse{}, err
	}

	return mapToResponse(*bracket), nil
}

func (s *service) GetAll(ctx context.Context) ([]ServiceBracketResponse, error) {
	brackets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(brackets), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ServiceBracketResponse, error) {
	bracket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServiceBracketResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*bracket), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateServiceBracketRequest,
) (ServiceBracketResponse, error) {
	percentage, err := parsePercentage(req.IncentivePercentage)
	if err != nil {
		return ServiceBracketResponse{}, err
	}
	if err := validateYearsRange(req.MinYears, req.MaxYears); err != nil {
		return ServiceBracketResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ServiceBracketResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	bracket, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ServiceBracketResponse{}, mapRepositoryError(err)
	}

	isActive := bracket.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	if isActive {
		if err := s.checkOverlap(ctx, qtx, req.MinYears, req.MaxYears, id); err != nil {
			return ServiceBracketResponse{}, err
		}
	}

	bracket.Name = req.Name
	bracket.MinYears = req.MinYears
	bracket.MaxYears = req.MaxYears
	bracket.IncentivePercentage = percentage
	bracket.IsActive = isActive

	if err := qtx.Update(ctx, bracket); err != nil {
		return ServiceBracketResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ServiceBracketResponse{}, err
	}

	return mapToResponse(*bracket), nil
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

// checkOverlap rejects the candidate range when it intersects any other
// active bracket. excludeID skips the bracket being updated.
func (s *service) checkOverlap(
	ctx context.Context,
	repo Repository,
	minYears int,
	maxYears *int,
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
		if ranges.Overlaps(minYears, maxYears, active[i].MinYears, active[i].MaxYears) {
			return servicebracketerrors.ErrServiceBracketOverlap
		}
	}

	return nil
}

func parsePercentage(raw string) (decimal.Decimal, error) {
	percentage, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, servicebracketerrors.ErrInvalidIncentivePercentage
	}
	if percentage.IsNegative() || percentage.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Decimal{}, servicebracketerrors.ErrInvalidIncentivePercentage
	}
	return percentage, nil
}

func validateYearsRange(minYears int, maxYears *int) error {
	if maxYears != nil && *maxYears < minYears {
		return servicebracketerrors.ErrInvalidYearsRange
	}
	return nil
}

func mapToResponse(bracket ServiceBracket) ServiceBracketResponse {
	return ServiceBracketResponse{
		ID:                  bracket.ID.String(),
		Name:                bracket.Name,
		MinYears:            bracket.MinYears,
		MaxYears:            bracket.MaxYears,
		IncentivePercentage: bracket.IncentivePercentage.String(),
		IsActive:            bracket.IsActive,
		CreatedAt:           bracket.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:           bracket.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func mapToListResponse(brackets []ServiceBracket) []ServiceBracketResponse {
	res := make([]ServiceBracketResponse, len(brackets))
	for i, b := range brackets {
		res[i] = mapToResponse(b)
	}
	return res
}
