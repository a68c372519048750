package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	departmenterrors "go-payroll/internal/department/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	UpdateIncentive(ctx context.Context, id string, req UpdateIncentiveRequest) (DepartmentResponse, error)
	GetIncentiveHistory(ctx context.Context, id string) ([]IncentiveHistoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return NewServiceWithOutbox(db, repo, nil)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateDepartmentRequest,
) (DepartmentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept.Name = req.Name

	if err := qtx.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

// UpdateIncentive moves the department's current incentive percentage and
// closes out the displaced value into the history log in one transaction.
// The two writes are never issued independently: either both land or
// neither does. The first assignment displaces nothing and writes no
// history row.
func (s *service) UpdateIncentive(
	ctx context.Context,
	id string,
	req UpdateIncentiveRequest,
) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	pct, err := decimal.NewFromString(req.Percentage)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidIncentivePercentage
	}
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return DepartmentResponse{}, departmenterrors.ErrInvalidIncentivePercentage
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	now := time.Now().UTC()
	setDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if dept.IncentivePercentage.Valid {
		effectiveDate := setDate
		if dept.IncentiveSetDate != nil {
			effectiveDate = *dept.IncentiveSetDate
		}
		if err := qtx.AppendIncentiveHistory(ctx, &IncentiveHistory{
			ID:            uuid.New(),
			DepartmentID:  dept.ID,
			Percentage:    dept.IncentivePercentage.Decimal,
			EffectiveDate: effectiveDate,
		}); err != nil {
			return DepartmentResponse{}, mapRepositoryError(err)
		}
	}

	dept.IncentivePercentage = decimal.NewNullDecimal(pct)
	dept.IncentiveSetDate = &setDate

	if err := qtx.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.DepartmentIncentiveChangedEvent{
			EventType:     "department_incentive_changed",
			RequestID:     rid,
			DepartmentID:  dept.ID.String(),
			Percentage:    pct.String(),
			EffectiveDate: setDate.Format("2006-01-02"),
			OccurredAt:    now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return DepartmentResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "department",
			AggregateID:   dept.ID.String(),
			EventType:     event.EventType,
			Topic:         events.DepartmentIncentiveChangedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("incentive change outbox persist failed",
				zap.String("department_id", dept.ID.String()),
				zap.Error(err),
			)
			return DepartmentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.logger.Info("department incentive updated",
		zap.String("request_id", rid),
		zap.String("department_id", dept.ID.String()),
		zap.String("percentage", pct.String()),
	)

	return mapToResponse(*dept), nil
}

func (s *service) GetIncentiveHistory(ctx context.Context, id string) ([]IncentiveHistoryResponse, error) {
	// Confirm the department exists so an unknown id is a 404, not an empty list
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	rows, err := s.repo.FindIncentiveHistory(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]IncentiveHistoryResponse, len(rows))
	for i, row := range rows {
		res[i] = IncentiveHistoryResponse{
			ID:            row.ID.String(),
			DepartmentID:  row.DepartmentID.String(),
			Percentage:    row.Percentage.String(),
			EffectiveDate: row.EffectiveDate.Format("2006-01-02"),
		}
	}
	return res, nil
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
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_department_name" {
			return departmenterrors.ErrDepartmentNameAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_department_name") {
		return departmenterrors.ErrDepartmentNameAlreadyExists
	}

	return err
}

func mapToResponse(dept Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:        dept.ID.String(),
		Name:      dept.Name,
		CreatedAt: dept.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: dept.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if dept.IncentivePercentage.Valid {
		v := dept.IncentivePercentage.Decimal.String()
		resp.IncentivePercentage = &v
	}
	if dept.IncentiveSetDate != nil {
		v := dept.IncentiveSetDate.Format("2006-01-02")
		resp.IncentiveSetDate = &v
	}

	return resp
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
