package absence_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-payroll/internal/absence"
	absenceerrors "go-payroll/internal/absence/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	records   map[string]absence.AbsenceRecord
	created   *absence.AbsenceRecord
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[string]absence.AbsenceRecord{}}
}

func (f *fakeRepo) WithTx(tx *sql.Tx) absence.Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, record *absence.AbsenceRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = record
	f.records[record.ID.String()] = *record
	return nil
}

func (f *fakeRepo) FindAllByPeriod(ctx context.Context, year, month int) ([]absence.AbsenceRecord, error) {
	var out []absence.AbsenceRecord
	for _, r := range f.records {
		if r.Year == year && r.Month == month {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]absence.AbsenceRecord, error) {
	var out []absence.AbsenceRecord
	for _, r := range f.records {
		if r.EmployeeID.String() == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*absence.AbsenceRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (f *fakeRepo) FindByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*absence.AbsenceRecord, error) {
	for _, r := range f.records {
		if r.EmployeeID.String() == employeeID && r.Year == year && r.Month == month {
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Update(ctx context.Context, record *absence.AbsenceRecord) error {
	f.records[record.ID.String()] = *record
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func newTestService(t *testing.T, repo *fakeRepo) (absence.Service, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return absence.NewService(db, repo), sqlMock
}

func strPtr(v string) *string { return &v }

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("Success Without Override", func(t *testing.T) {
		repo := newFakeRepo()
		service, sqlMock := newTestService(t, repo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		resp, err := service.Create(ctx, absence.CreateAbsenceRecordRequest{
			EmployeeID:  employeeID.String(),
			Year:        2025,
			Month:       6,
			AbsenceDays: 1,
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.AbsenceDays)
		assert.Nil(t, resp.AdjustmentPercentage)
		require.NotNil(t, repo.created)
		assert.False(t, repo.created.AdjustmentPercentage.Valid)
	})

	t.Run("Success With Override", func(t *testing.T) {
		repo := newFakeRepo()
		service, sqlMock := newTestService(t, repo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		resp, err := service.Create(ctx, absence.CreateAbsenceRecordRequest{
			EmployeeID:           employeeID.String(),
			Year:                 2025,
			Month:                6,
			AbsenceDays:          8,
			AdjustmentPercentage: strPtr("-3.5"),
		})

		assert.NoError(t, err)
		require.NotNil(t, resp.AdjustmentPercentage)
		assert.Equal(t, "-3.5", *resp.AdjustmentPercentage)
	})

	t.Run("Override Out Of Range", func(t *testing.T) {
		repo := newFakeRepo()
		service, _ := newTestService(t, repo)

		_, err := service.Create(ctx, absence.CreateAbsenceRecordRequest{
			EmployeeID:           employeeID.String(),
			Year:                 2025,
			Month:                6,
			AbsenceDays:          8,
			AdjustmentPercentage: strPtr("-150"),
		})

		assert.ErrorIs(t, err, absenceerrors.ErrInvalidAdjustmentPercentage)
	})

	t.Run("Duplicate Period", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = errors.New(`duplicate key value violates unique constraint "uq_absence_period"`)
		service, sqlMock := newTestService(t, repo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		_, err := service.Create(ctx, absence.CreateAbsenceRecordRequest{
			EmployeeID:  employeeID.String(),
			Year:        2025,
			Month:       6,
			AbsenceDays: 1,
		})

		assert.ErrorIs(t, err, absenceerrors.ErrAbsencePeriodAlreadyExists)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	service, sqlMock := newTestService(t, repo)

	record := absence.AbsenceRecord{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		Year:        2025,
		Month:       6,
		AbsenceDays: 2,
	}
	repo.records[record.ID.String()] = record

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	resp, err := service.Update(ctx, record.ID.String(), absence.UpdateAbsenceRecordRequest{
		AbsenceDays: 4,
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, resp.AbsenceDays)

	t.Run("Not Found", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		_, err := service.Update(ctx, uuid.NewString(), absence.UpdateAbsenceRecordRequest{
			AbsenceDays: 1,
		})

		assert.ErrorIs(t, err, absenceerrors.ErrAbsenceRecordNotFound)
	})
}
