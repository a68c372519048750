package salary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/salary"
	salaryerrors "go-payroll/internal/salary/errors"
	salaryMock "go-payroll/internal/salary/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockRepo := salaryMock.NewMockRepository(ctrl)
	service := salary.NewService(db, mockRepo)
	ctx := context.Background()

	employeeID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, record *salary.SalaryRecord) error {
				assert.Equal(t, employeeID, record.EmployeeID)
				assert.True(t, record.BaseSalary.Equal(decimal.RequireFromString("10000")))
				assert.Equal(t, "2025-06-01", record.EffectiveDate.Format("2006-01-02"))
				return nil
			})

		resp, err := service.Create(ctx, salary.CreateSalaryRecordRequest{
			EmployeeID:    employeeID.String(),
			BaseSalary:    "10000",
			EffectiveDate: "2025-06-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "10000", resp.BaseSalary)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Negative Base Salary", func(t *testing.T) {
		_, err := service.Create(ctx, salary.CreateSalaryRecordRequest{
			EmployeeID:    employeeID.String(),
			BaseSalary:    "-1",
			EffectiveDate: "2025-06-01",
		})

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidBaseSalary)
	})

	t.Run("Malformed Base Salary", func(t *testing.T) {
		_, err := service.Create(ctx, salary.CreateSalaryRecordRequest{
			EmployeeID:    employeeID.String(),
			BaseSalary:    "ten thousand",
			EffectiveDate: "2025-06-01",
		})

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidBaseSalary)
	})

	t.Run("Invalid Effective Date", func(t *testing.T) {
		_, err := service.Create(ctx, salary.CreateSalaryRecordRequest{
			EmployeeID:    employeeID.String(),
			BaseSalary:    "10000",
			EffectiveDate: "06/01/2025",
		})

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidEffectiveDate)
	})

	t.Run("Duplicate Effective Date Rolls Back", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(errors.New(`duplicate key value violates unique constraint "uq_salary_effective"`))

		_, err := service.Create(ctx, salary.CreateSalaryRecordRequest{
			EmployeeID:    employeeID.String(),
			BaseSalary:    "10000",
			EffectiveDate: "2025-06-01",
		})

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryEffectiveDateAlreadyExists)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestService_GetCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockRepo := salaryMock.NewMockRepository(ctrl)
	service := salary.NewService(db, mockRepo)
	ctx := context.Background()

	employeeID := uuid.New()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("Returns Record In Effect", func(t *testing.T) {
		record := &salary.SalaryRecord{
			ID:            uuid.New(),
			EmployeeID:    employeeID,
			BaseSalary:    decimal.RequireFromString("10000"),
			EffectiveDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		}

		mockRepo.EXPECT().
			FindCurrentOnOrBefore(ctx, employeeID.String(), asOf).
			Return(record, nil)

		resp, err := service.GetCurrent(ctx, employeeID.String(), asOf)

		assert.NoError(t, err)
		assert.Equal(t, "10000", resp.BaseSalary)
		assert.Equal(t, "2025-05-01", resp.EffectiveDate)
	})

	t.Run("No Record On Or Before Date", func(t *testing.T) {
		mockRepo.EXPECT().
			FindCurrentOnOrBefore(ctx, employeeID.String(), asOf).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetCurrent(ctx, employeeID.String(), asOf)

		assert.ErrorIs(t, err, salaryerrors.ErrNoSalaryOnOrBeforeDate)
	})
}

func TestService_GetAllForEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mockRepo := salaryMock.NewMockRepository(ctrl)
	service := salary.NewService(db, mockRepo)
	ctx := context.Background()

	employeeID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		records := []salary.SalaryRecord{
			{
				ID:            uuid.New(),
				EmployeeID:    employeeID,
				BaseSalary:    decimal.RequireFromString("12000"),
				EffectiveDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:            uuid.New(),
				EmployeeID:    employeeID,
				BaseSalary:    decimal.RequireFromString("10000"),
				EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		}

		mockRepo.EXPECT().FindAllByEmployee(ctx, employeeID.String()).Return(records, nil)

		resp, err := service.GetAllForEmployee(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "12000", resp[0].BaseSalary)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo.EXPECT().
			FindAllByEmployee(ctx, employeeID.String()).
			Return(nil, errors.New("connection refused"))

		_, err := service.GetAllForEmployee(ctx, employeeID.String())
		assert.Error(t, err)
	})
}
