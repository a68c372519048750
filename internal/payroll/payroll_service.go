package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-payroll/internal/absencethreshold"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/servicebracket"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	generateLockTTL = 10 * time.Minute
	summaryCacheTTL = 10 * time.Minute
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CalculateGrossPay(ctx context.Context, req CalculateGrossPayRequest) (SnapshotResponse, error)
	GenerateMonthlySnapshots(ctx context.Context, year, month int) (GenerationResultResponse, error)
	GetSnapshots(ctx context.Context, year, month int) ([]SnapshotResponse, error)
	GetSnapshotsForEmployee(ctx context.Context, employeeID string) ([]SnapshotResponse, error)
	GetSnapshotsByDepartment(ctx context.Context, departmentID string, year, month int) ([]SnapshotResponse, error)
	GetDepartmentSummary(ctx context.Context, year, month int) (DepartmentSummaryResponse, error)
	RefreshDepartmentSummary(ctx context.Context, year, month int) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	providers Providers
	rdb       *redis.Client
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
	group     singleflight.Group
}

func NewService(
	db *sql.DB,
	repo Repository,
	providers Providers,
	rdb *redis.Client,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		providers: providers,
		rdb:       rdb,
		outbox:    outboxRepo,
		logger:    l,
	}
}

// CalculateGrossPay computes and persists one employee's snapshot for the
// period. An existing snapshot is a conflict unless the caller asks for
// regeneration.
func (s *service) CalculateGrossPay(
	ctx context.Context,
	req CalculateGrossPayRequest,
) (SnapshotResponse, error) {
	if req.Month < 1 || req.Month > 12 {
		return SnapshotResponse{}, payrollerrors.ErrInvalidPeriod
	}

	emp, err := s.providers.Employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SnapshotResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return SnapshotResponse{}, err
	}

	if !req.Regenerate {
		exists, err := s.repo.Exists(ctx, req.EmployeeID, req.Year, req.Month)
		if err != nil {
			return SnapshotResponse{}, err
		}
		if exists {
			return SnapshotResponse{}, payrollerrors.ErrSnapshotAlreadyExists
		}
	}

	brackets, err := s.providers.Brackets.FindActive(ctx)
	if err != nil {
		return SnapshotResponse{}, err
	}
	thresholds, err := s.providers.Thresholds.FindActive(ctx)
	if err != nil {
		return SnapshotResponse{}, err
	}

	snapshot, err := s.computeForEmployee(ctx, *emp, req.Year, req.Month, bracketSet{brackets, thresholds})
	if err != nil {
		return SnapshotResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SnapshotResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, snapshot); err != nil {
		return SnapshotResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SnapshotResponse{}, err
	}

	// The cached department summary no longer reflects this period.
	if s.rdb != nil {
		s.rdb.Del(context.WithoutCancel(ctx), summaryCacheKey(req.Year, req.Month))
	}

	s.logger.Info("snapshot calculated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.String("gross_salary", snapshot.GrossSalary.String()),
	)

	return mapToSnapshotResponse(*snapshot), nil
}

// GenerateMonthlySnapshots replaces the full snapshot set for the period.
// Generation is serialized per period: in-process via singleflight, across
// instances via a Redis lock. The computation runs without holding a
// database transaction; the replace happens in a single transaction at the
// end, so a cancelled run leaves the previous snapshot set intact.
func (s *service) GenerateMonthlySnapshots(
	ctx context.Context,
	year, month int,
) (GenerationResultResponse, error) {
	if month < 1 || month > 12 {
		return GenerationResultResponse{}, payrollerrors.ErrInvalidPeriod
	}

	key := periodKey(year, month)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.generateLocked(ctx, year, month)
	})
	if err != nil {
		return GenerationResultResponse{}, err
	}
	return v.(GenerationResultResponse), nil
}

func (s *service) generateLocked(ctx context.Context, year, month int) (GenerationResultResponse, error) {
	if s.rdb != nil {
		lockKey := "payroll:generate:lock:" + periodKey(year, month)
		acquired, err := s.rdb.SetNX(ctx, lockKey, "locked", generateLockTTL).Result()
		if err != nil {
			return GenerationResultResponse{}, err
		}
		if !acquired {
			return GenerationResultResponse{}, payrollerrors.ErrGenerationInProgress
		}
		defer s.rdb.Del(context.WithoutCancel(ctx), lockKey)
	}

	employees, err := s.providers.Employees.FindAllActive(ctx)
	if err != nil {
		return GenerationResultResponse{}, err
	}
	brackets, err := s.providers.Brackets.FindActive(ctx)
	if err != nil {
		return GenerationResultResponse{}, err
	}
	thresholds, err := s.providers.Thresholds.FindActive(ctx)
	if err != nil {
		return GenerationResultResponse{}, err
	}
	set := bracketSet{brackets, thresholds}

	snapshots := make([]PayrollSnapshot, 0, len(employees))
	skipped := make([]SkippedEmployee, 0)

	for _, emp := range employees {
		// Cooperative cancellation between employees. Nothing has been
		// written yet, so aborting here is safe.
		if err := ctx.Err(); err != nil {
			return GenerationResultResponse{}, err
		}

		snapshot, err := s.computeForEmployee(ctx, emp, year, month, set)
		if err != nil {
			skipped = append(skipped, SkippedEmployee{
				EmployeeID:     emp.ID.String(),
				EmployeeNumber: emp.EmployeeNumber,
				Reason:         err.Error(),
			})
			continue
		}
		snapshots = append(snapshots, *snapshot)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GenerationResultResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteByPeriod(ctx, year, month); err != nil {
		return GenerationResultResponse{}, err
	}
	if err := qtx.CreateBatch(ctx, snapshots); err != nil {
		return GenerationResultResponse{}, err
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event := events.PayrollSnapshotsGeneratedEvent{
			EventType:     "payroll_snapshots_generated",
			RequestID:     rid,
			Year:          year,
			Month:         month,
			SnapshotCount: len(snapshots),
			SkippedCount:  len(skipped),
			GeneratedBy:   contextutil.GetUserID(ctx),
			OccurredAt:    time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return GenerationResultResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_period",
			AggregateID:   periodKey(year, month),
			EventType:     event.EventType,
			Topic:         events.PayrollSnapshotsGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return GenerationResultResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return GenerationResultResponse{}, err
	}

	if s.rdb != nil {
		s.rdb.Del(context.WithoutCancel(ctx), summaryCacheKey(year, month))
	}

	s.logger.Info("monthly snapshots generated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("snapshot_count", len(snapshots)),
		zap.Int("skipped_count", len(skipped)),
	)

	return GenerationResultResponse{
		Year:          year,
		Month:         month,
		SnapshotCount: len(snapshots),
		Skipped:       skipped,
	}, nil
}

// bracketSet is the configuration view captured once per run.
type bracketSet struct {
	brackets   []servicebracket.ServiceBracket
	thresholds []absencethreshold.AbsenceThreshold
}

func (s *service) computeForEmployee(
	ctx context.Context,
	emp employee.Employee,
	year, month int,
	set bracketSet,
) (*PayrollSnapshot, error) {
	refDate := PeriodEnd(year, month)

	salaryRecord, err := s.providers.Salaries.FindCurrentOnOrBefore(ctx, emp.ID.String(), refDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrNoSalaryForPeriod
		}
		return nil, err
	}

	incentive, err := s.providers.Incentives.CurrentIncentive(ctx, emp.DepartmentID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	absenceRecord, err := s.providers.Absences.FindByEmployeeAndPeriod(ctx, emp.ID.String(), year, month)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		absenceRecord = nil
	}

	result := Compute(CalcInput{
		BaseSalary:          salaryRecord.BaseSalary,
		HireDate:            emp.HireDate,
		ReferenceDate:       refDate,
		DepartmentIncentive: incentive,
		Brackets:            set.brackets,
		Thresholds:          set.thresholds,
		Absence:             absenceRecord,
	})

	return &PayrollSnapshot{
		ID:           uuid.New(),
		EmployeeID:   emp.ID,
		DepartmentID: emp.DepartmentID,
		Year:         year,
		Month:        month,

		BaseSalary: salaryRecord.BaseSalary,

		DepartmentIncentivePercentage:   result.DepartmentIncentivePercentage,
		DepartmentIncentiveAmount:       result.DepartmentIncentiveAmount,
		ServiceYearsIncentivePercentage: result.ServiceYearsIncentivePercentage,
		ServiceYearsIncentiveAmount:     result.ServiceYearsIncentiveAmount,
		AttendanceAdjustmentPercentage:  result.AttendanceAdjustmentPercentage,
		AttendanceAdjustmentAmount:      result.AttendanceAdjustmentAmount,

		GrossSalary:    result.GrossSalary,
		AbsenceDays:    result.AbsenceDays,
		YearsOfService: result.YearsOfService,
	}, nil
}

func (s *service) GetSnapshots(ctx context.Context, year, month int) ([]SnapshotResponse, error) {
	snapshots, err := s.repo.FindByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return mapToSnapshotListResponse(snapshots), nil
}

func (s *service) GetSnapshotsForEmployee(ctx context.Context, employeeID string) ([]SnapshotResponse, error) {
	snapshots, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToSnapshotListResponse(snapshots), nil
}

func (s *service) GetSnapshotsByDepartment(
	ctx context.Context,
	departmentID string,
	year, month int,
) ([]SnapshotResponse, error) {
	snapshots, err := s.repo.FindByDepartment(ctx, departmentID, year, month)
	if err != nil {
		return nil, err
	}
	return mapToSnapshotListResponse(snapshots), nil
}

// GetDepartmentSummary serves the per-department totals report, cached in
// Redis until the period is regenerated.
func (s *service) GetDepartmentSummary(ctx context.Context, year, month int) (DepartmentSummaryResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, summaryCacheKey(year, month)).Result()
		if err == nil {
			var rows []DepartmentSummaryRow
			if err := json.Unmarshal([]byte(cached), &rows); err == nil {
				return DepartmentSummaryResponse{Year: year, Month: month, Departments: rows}, nil
			}
		}
	}

	rows, err := s.repo.SummarizeByDepartment(ctx, year, month)
	if err != nil {
		return DepartmentSummaryResponse{}, err
	}

	s.cacheSummary(ctx, year, month, rows)

	return DepartmentSummaryResponse{Year: year, Month: month, Departments: rows}, nil
}

// RefreshDepartmentSummary rebuilds the cached report. The consumer calls
// this when a snapshots-generated event arrives.
func (s *service) RefreshDepartmentSummary(ctx context.Context, year, month int) error {
	rows, err := s.repo.SummarizeByDepartment(ctx, year, month)
	if err != nil {
		return err
	}

	s.cacheSummary(ctx, year, month, rows)
	return nil
}

func (s *service) cacheSummary(ctx context.Context, year, month int, rows []DepartmentSummaryRow) {
	if s.rdb == nil {
		return
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, summaryCacheKey(year, month), payload, summaryCacheTTL).Err(); err != nil {
		s.logger.Warn("summary cache write failed",
			zap.Int("year", year),
			zap.Int("month", month),
			zap.Error(err),
		)
	}
}

func periodKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func summaryCacheKey(year, month int) string {
	return "payroll:report:" + periodKey(year, month)
}

func mapToSnapshotResponse(s PayrollSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:             s.ID.String(),
		EmployeeID:     s.EmployeeID.String(),
		EmployeeName:   s.EmployeeName,
		DepartmentID:   s.DepartmentID.String(),
		DepartmentName: s.DepartmentName,
		Year:           s.Year,
		Month:          s.Month,

		BaseSalary:                      s.BaseSalary.String(),
		DepartmentIncentivePercentage:   s.DepartmentIncentivePercentage.String(),
		DepartmentIncentiveAmount:       s.DepartmentIncentiveAmount.String(),
		ServiceYearsIncentivePercentage: s.ServiceYearsIncentivePercentage.String(),
		ServiceYearsIncentiveAmount:     s.ServiceYearsIncentiveAmount.String(),
		AttendanceAdjustmentPercentage:  s.AttendanceAdjustmentPercentage.String(),
		AttendanceAdjustmentAmount:      s.AttendanceAdjustmentAmount.String(),
		GrossSalary:                     s.GrossSalary.String(),

		AbsenceDays:    s.AbsenceDays,
		YearsOfService: s.YearsOfService,
	}
}

func mapToSnapshotListResponse(snapshots []PayrollSnapshot) []SnapshotResponse {
	res := make([]SnapshotResponse, len(snapshots))
	for i, s := range snapshots {
		res[i] = mapToSnapshotResponse(s)
	}
	return res
}
