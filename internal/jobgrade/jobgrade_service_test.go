package jobgrade_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/jobgrade"
	jobgradeerrors "go-payroll/internal/jobgrade/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	grades    map[string]jobgrade.JobGrade
	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{grades: map[string]jobgrade.JobGrade{}}
}

func (f *fakeRepo) WithTx(tx *sql.Tx) jobgrade.Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, grade *jobgrade.JobGrade) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.grades[grade.ID.String()] = *grade
	return nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]jobgrade.JobGrade, error) {
	var out []jobgrade.JobGrade
	for _, g := range f.grades {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*jobgrade.JobGrade, error) {
	g, ok := f.grades[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &g, nil
}

func (f *fakeRepo) Update(ctx context.Context, grade *jobgrade.JobGrade) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.grades[grade.ID.String()] = *grade
	return nil
}

func (f *fakeRepo) SoftDelete(ctx context.Context, id string) error {
	if _, ok := f.grades[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.grades, id)
	return nil
}

func newTestService(t *testing.T, repo *fakeRepo) (jobgrade.Service, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return jobgrade.NewService(db, repo), sqlMock
}

func seedGrade(repo *fakeRepo, name string) jobgrade.JobGrade {
	grade := jobgrade.JobGrade{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	repo.grades[grade.ID.String()] = grade
	return grade
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := newFakeRepo()
		service, sqlMock := newTestService(t, repo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		desc := "Mid-level individual contributor"
		resp, err := service.Create(ctx, jobgrade.CreateJobGradeRequest{
			Name:        "G3",
			Description: &desc,
		})

		require.NoError(t, err)
		assert.Equal(t, "G3", resp.Name)
		require.NotNil(t, resp.Description)
		assert.Equal(t, desc, *resp.Description)
		assert.Len(t, repo.grades, 1)
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = errors.New(`duplicate key value violates unique constraint "uq_job_grade_name"`)
		service, sqlMock := newTestService(t, repo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		_, err := service.Create(ctx, jobgrade.CreateJobGradeRequest{Name: "G3"})

		assert.ErrorIs(t, err, jobgradeerrors.ErrJobGradeNameAlreadyExists)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := newFakeRepo()
		service, sqlMock := newTestService(t, repo)
		grade := seedGrade(repo, "G3")

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		resp, err := service.Update(ctx, grade.ID.String(), jobgrade.UpdateJobGradeRequest{Name: "G4"})

		require.NoError(t, err)
		assert.Equal(t, "G4", resp.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := newFakeRepo()
		service, sqlMock := newTestService(t, repo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		_, err := service.Update(ctx, uuid.NewString(), jobgrade.UpdateJobGradeRequest{Name: "G4"})

		assert.ErrorIs(t, err, jobgradeerrors.ErrJobGradeNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	service, sqlMock := newTestService(t, repo)
	grade := seedGrade(repo, "G3")

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	err := service.Delete(ctx, grade.ID.String())

	require.NoError(t, err)
	assert.Empty(t, repo.grades)
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	service, _ := newTestService(t, repo)

	_, err := service.GetByID(ctx, uuid.NewString())

	assert.ErrorIs(t, err, jobgradeerrors.ErrJobGradeNotFound)
}
