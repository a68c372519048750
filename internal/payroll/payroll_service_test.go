package payroll_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-payroll/internal/absence"
	"go-payroll/internal/absencethreshold"
	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/salary"
	"go-payroll/internal/servicebracket"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- fakes ---

type fakeSnapshotRepo struct {
	snapshots map[string]payroll.PayrollSnapshot
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{snapshots: map[string]payroll.PayrollSnapshot{}}
}

func snapKey(employeeID string, year, month int) string {
	return employeeID + payrollPeriod(year, month)
}

func payrollPeriod(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (f *fakeSnapshotRepo) WithTx(tx *sql.Tx) payroll.Repository { return f }

func (f *fakeSnapshotRepo) Upsert(ctx context.Context, s *payroll.PayrollSnapshot) error {
	f.snapshots[snapKey(s.EmployeeID.String(), s.Year, s.Month)] = *s
	return nil
}

func (f *fakeSnapshotRepo) CreateBatch(ctx context.Context, snapshots []payroll.PayrollSnapshot) error {
	for _, s := range snapshots {
		f.snapshots[snapKey(s.EmployeeID.String(), s.Year, s.Month)] = s
	}
	return nil
}

func (f *fakeSnapshotRepo) Exists(ctx context.Context, employeeID string, year, month int) (bool, error) {
	_, ok := f.snapshots[snapKey(employeeID, year, month)]
	return ok, nil
}

func (f *fakeSnapshotRepo) DeleteByPeriod(ctx context.Context, year, month int) error {
	for k, s := range f.snapshots {
		if s.Year == year && s.Month == month {
			delete(f.snapshots, k)
		}
	}
	return nil
}

func (f *fakeSnapshotRepo) FindByPeriod(ctx context.Context, year, month int) ([]payroll.PayrollSnapshot, error) {
	var out []payroll.PayrollSnapshot
	for _, s := range f.snapshots {
		if s.Year == year && s.Month == month {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSnapshotRepo) FindByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollSnapshot, error) {
	var out []payroll.PayrollSnapshot
	for _, s := range f.snapshots {
		if s.EmployeeID.String() == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSnapshotRepo) FindByDepartment(ctx context.Context, departmentID string, year, month int) ([]payroll.PayrollSnapshot, error) {
	var out []payroll.PayrollSnapshot
	for _, s := range f.snapshots {
		if s.DepartmentID.String() == departmentID && s.Year == year && s.Month == month {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSnapshotRepo) SummarizeByDepartment(ctx context.Context, year, month int) ([]payroll.DepartmentSummaryRow, error) {
	return nil, nil
}

type fakeProviders struct {
	employees  []employee.Employee
	salaries   map[string]salary.SalaryRecord
	incentives map[string]decimal.NullDecimal
	brackets   []servicebracket.ServiceBracket
	thresholds []absencethreshold.AbsenceThreshold
	absences   map[string]absence.AbsenceRecord
}

func (f *fakeProviders) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID.String() == id {
			return &f.employees[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProviders) FindAllActive(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeProviders) FindCurrentOnOrBefore(ctx context.Context, employeeID string, asOf time.Time) (*salary.SalaryRecord, error) {
	record, ok := f.salaries[employeeID]
	if !ok || record.EffectiveDate.After(asOf) {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (f *fakeProviders) CurrentIncentive(ctx context.Context, departmentID string) (decimal.NullDecimal, error) {
	return f.incentives[departmentID], nil
}

func (f *fakeProviders) FindActiveBrackets(ctx context.Context) ([]servicebracket.ServiceBracket, error) {
	return f.brackets, nil
}

func (f *fakeProviders) FindActiveThresholds(ctx context.Context) ([]absencethreshold.AbsenceThreshold, error) {
	return f.thresholds, nil
}

func (f *fakeProviders) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*absence.AbsenceRecord, error) {
	record, ok := f.absences[employeeID+payrollPeriod(year, month)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

type bracketProviderFunc func(ctx context.Context) ([]servicebracket.ServiceBracket, error)

func (fn bracketProviderFunc) FindActive(ctx context.Context) ([]servicebracket.ServiceBracket, error) {
	return fn(ctx)
}

type thresholdProviderFunc func(ctx context.Context) ([]absencethreshold.AbsenceThreshold, error)

func (fn thresholdProviderFunc) FindActive(ctx context.Context) ([]absencethreshold.AbsenceThreshold, error) {
	return fn(ctx)
}

func (f *fakeProviders) bundle() payroll.Providers {
	return payroll.Providers{
		Employees:  f,
		Salaries:   f,
		Incentives: f,
		Brackets:   bracketProviderFunc(f.FindActiveBrackets),
		Thresholds: thresholdProviderFunc(f.FindActiveThresholds),
		Absences:   f,
	}
}

// --- tests ---

func newGenerationFixture(t *testing.T) (*fakeProviders, *fakeSnapshotRepo, employee.Employee, employee.Employee) {
	t.Helper()

	deptID := uuid.New()
	withSalary := employee.Employee{
		ID:               uuid.New(),
		EmployeeNumber:   "EMP-000001",
		FullName:         "First Employee",
		DepartmentID:     deptID,
		JobGradeID:       uuid.New(),
		HireDate:         time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
		EmploymentStatus: employee.StatusActive,
	}
	withoutSalary := employee.Employee{
		ID:               uuid.New(),
		EmployeeNumber:   "EMP-000002",
		FullName:         "Second Employee",
		DepartmentID:     deptID,
		JobGradeID:       uuid.New(),
		HireDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EmploymentStatus: employee.StatusActive,
	}

	providers := &fakeProviders{
		employees: []employee.Employee{withSalary, withoutSalary},
		salaries: map[string]salary.SalaryRecord{
			withSalary.ID.String(): {
				ID:            uuid.New(),
				EmployeeID:    withSalary.ID,
				BaseSalary:    dec("10000"),
				EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		incentives: map[string]decimal.NullDecimal{
			deptID.String(): decimal.NewNullDecimal(dec("5")),
		},
		brackets: []servicebracket.ServiceBracket{
			bracket("3-6 years", 3, intPtr(6), "10"),
		},
		thresholds: []absencethreshold.AbsenceThreshold{
			threshold("0-2 days", 0, intPtr(2), "2"),
		},
		absences: map[string]absence.AbsenceRecord{
			withSalary.ID.String() + payrollPeriod(2025, 6): {
				EmployeeID:  withSalary.ID,
				Year:        2025,
				Month:       6,
				AbsenceDays: 1,
			},
		},
	}

	return providers, newFakeSnapshotRepo(), withSalary, withoutSalary
}

func TestService_GenerateMonthlySnapshots(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rdb, redisMock := redismock.NewClientMock()

	providers, repo, withSalary, withoutSalary := newGenerationFixture(t)
	service := payroll.NewService(db, repo, providers.bundle(), rdb, nil)

	lockKey := "payroll:generate:lock:2025-06"
	summaryKey := "payroll:report:2025-06"

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	redisMock.ExpectSetNX(lockKey, "locked", 10*time.Minute).SetVal(true)
	redisMock.ExpectDel(summaryKey).SetVal(1)
	redisMock.ExpectDel(lockKey).SetVal(1)

	result, err := service.GenerateMonthlySnapshots(ctx, 2025, 6)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SnapshotCount)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, withoutSalary.ID.String(), result.Skipped[0].EmployeeID)

	stored, ok := repo.snapshots[snapKey(withSalary.ID.String(), 2025, 6)]
	require.True(t, ok)
	assert.True(t, stored.GrossSalary.Equal(dec("11700")), "got %s", stored.GrossSalary)
	assert.Equal(t, 5, stored.YearsOfService)
	require.NotNil(t, stored.AbsenceDays)
	assert.Equal(t, 1, *stored.AbsenceDays)

	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GenerateMonthlySnapshots_Idempotent(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rdb, redisMock := redismock.NewClientMock()

	providers, repo, _, _ := newGenerationFixture(t)
	service := payroll.NewService(db, repo, providers.bundle(), rdb, nil)

	lockKey := "payroll:generate:lock:2025-06"
	summaryKey := "payroll:report:2025-06"

	for i := 0; i < 2; i++ {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		redisMock.ExpectSetNX(lockKey, "locked", 10*time.Minute).SetVal(true)
		redisMock.ExpectDel(summaryKey).SetVal(1)
		redisMock.ExpectDel(lockKey).SetVal(1)
	}

	first, err := service.GenerateMonthlySnapshots(ctx, 2025, 6)
	require.NoError(t, err)
	second, err := service.GenerateMonthlySnapshots(ctx, 2025, 6)
	require.NoError(t, err)

	assert.Equal(t, first.SnapshotCount, second.SnapshotCount)
	assert.Len(t, repo.snapshots, 1)
}

func TestService_GenerateMonthlySnapshots_LockHeld(t *testing.T) {
	ctx := context.Background()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rdb, redisMock := redismock.NewClientMock()

	providers, repo, _, _ := newGenerationFixture(t)
	service := payroll.NewService(db, repo, providers.bundle(), rdb, nil)

	redisMock.ExpectSetNX("payroll:generate:lock:2025-06", "locked", 10*time.Minute).SetVal(false)

	_, err = service.GenerateMonthlySnapshots(ctx, 2025, 6)

	assert.ErrorIs(t, err, payrollerrors.ErrGenerationInProgress)
	assert.Empty(t, repo.snapshots)
}

func TestService_CalculateGrossPay(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rdb, redisMock := redismock.NewClientMock()

	providers, repo, withSalary, withoutSalary := newGenerationFixture(t)
	service := payroll.NewService(db, repo, providers.bundle(), rdb, nil)

	t.Run("Success", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		redisMock.ExpectDel("payroll:report:2025-06").SetVal(1)

		resp, err := service.CalculateGrossPay(ctx, payroll.CalculateGrossPayRequest{
			EmployeeID: withSalary.ID.String(),
			Year:       2025,
			Month:      6,
		})

		require.NoError(t, err)
		assert.Equal(t, "11700", resp.GrossSalary)
		assert.Equal(t, "500", resp.DepartmentIncentiveAmount)
		assert.Equal(t, "1000", resp.ServiceYearsIncentiveAmount)
		assert.Equal(t, "200", resp.AttendanceAdjustmentAmount)
	})

	t.Run("Existing Snapshot Conflicts Without Regenerate", func(t *testing.T) {
		_, err := service.CalculateGrossPay(ctx, payroll.CalculateGrossPayRequest{
			EmployeeID: withSalary.ID.String(),
			Year:       2025,
			Month:      6,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrSnapshotAlreadyExists)
	})

	t.Run("Regenerate Replaces Snapshot", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		redisMock.ExpectDel("payroll:report:2025-06").SetVal(1)

		_, err := service.CalculateGrossPay(ctx, payroll.CalculateGrossPayRequest{
			EmployeeID: withSalary.ID.String(),
			Year:       2025,
			Month:      6,
			Regenerate: true,
		})

		assert.NoError(t, err)
		assert.Len(t, repo.snapshots, 1)
	})

	t.Run("No Salary Record", func(t *testing.T) {
		_, err := service.CalculateGrossPay(ctx, payroll.CalculateGrossPayRequest{
			EmployeeID: withoutSalary.ID.String(),
			Year:       2025,
			Month:      6,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrNoSalaryForPeriod)
	})

	t.Run("Unknown Employee", func(t *testing.T) {
		_, err := service.CalculateGrossPay(ctx, payroll.CalculateGrossPayRequest{
			EmployeeID: uuid.NewString(),
			Year:       2025,
			Month:      6,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})

	// Each successful write invalidated the cached summary; the failed
	// calls touched Redis not at all.
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
