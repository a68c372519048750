package servicebracket_test

import (
	"context"
	"database/sql"
	"testing"

	"go-payroll/internal/servicebracket"
	servicebracketerrors "go-payroll/internal/servicebracket/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepo keeps brackets in memory so overlap validation can be exercised
// without a database.
type fakeRepo struct {
	brackets []servicebracket.ServiceBracket
	created  *servicebracket.ServiceBracket
	updated  *servicebracket.ServiceBracket
}

func (f *fakeRepo) WithTx(tx *sql.Tx) servicebracket.Repository { return f }

func (f *fakeRepo) Create(ctx context.Context, bracket *servicebracket.ServiceBracket) error {
	f.created = bracket
	return nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]servicebracket.ServiceBracket, error) {
	return f.brackets, nil
}

func (f *fakeRepo) FindActive(ctx context.Context) ([]servicebracket.ServiceBracket, error) {
	var active []servicebracket.ServiceBracket
	for _, b := range f.brackets {
		if b.IsActive {
			active = append(active, b)
		}
	}
	return active, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*servicebracket.ServiceBracket, error) {
	for i := range f.brackets {
		if f.brackets[i].ID.String() == id {
			b := f.brackets[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Update(ctx context.Context, bracket *servicebracket.ServiceBracket) error {
	f.updated = bracket
	return nil
}

func (f *fakeRepo) SoftDelete(ctx context.Context, id string) error {
	return nil
}

func newTestService(t *testing.T, repo *fakeRepo) (servicebracket.Service, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return servicebracket.NewService(db, repo), sqlMock
}

func TestService_Create_OverlapValidation(t *testing.T) {
	ctx := context.Background()

	existing := servicebracket.ServiceBracket{
		ID:                  uuid.New(),
		Name:                "3-6 years",
		MinYears:            3,
		MaxYears:            intPtr(6),
		IncentivePercentage: decimal.RequireFromString("10"),
		IsActive:            true,
	}

	t.Run("Rejects Overlapping Active Range", func(t *testing.T) {
		repo := &fakeRepo{brackets: []servicebracket.ServiceBracket{existing}}
		service, sqlMock := newTestService(t, repo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		_, err := service.Create(ctx, servicebracket.CreateServiceBracketRequest{
			Name:                "5-9 years",
			MinYears:            5,
			MaxYears:            intPtr(9),
			IncentivePercentage: "12",
		})

		assert.ErrorIs(t, err, servicebracketerrors.ErrServiceBracketOverlap)
		assert.Nil(t, repo.created)
	})

	t.Run("Rejects Bounded Range Against Open Ended", func(t *testing.T) {
		openEnded := existing
		openEnded.Name = "3+ years"
		openEnded.MaxYears = nil

		repo := &fakeRepo{brackets: []servicebracket.ServiceBracket{openEnded}}
		service, sqlMock := newTestService(t, repo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		_, err := service.Create(ctx, servicebracket.CreateServiceBracketRequest{
			Name:                "10-20 years",
			MinYears:            10,
			MaxYears:            intPtr(20),
			IncentivePercentage: "15",
		})

		assert.ErrorIs(t, err, servicebracketerrors.ErrServiceBracketOverlap)
	})

	t.Run("Allows Adjacent Range", func(t *testing.T) {
		repo := &fakeRepo{brackets: []servicebracket.ServiceBracket{existing}}
		service, sqlMock := newTestService(t, repo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		resp, err := service.Create(ctx, servicebracket.CreateServiceBracketRequest{
			Name:                "7-10 years",
			MinYears:            7,
			MaxYears:            intPtr(10),
			IncentivePercentage: "15",
		})

		assert.NoError(t, err)
		assert.Equal(t, "7-10 years", resp.Name)
		require.NotNil(t, repo.created)
		assert.True(t, repo.created.IsActive)
	})

	t.Run("Inactive Bracket Skips Overlap Check", func(t *testing.T) {
		repo := &fakeRepo{brackets: []servicebracket.ServiceBracket{existing}}
		service, sqlMock := newTestService(t, repo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		inactive := false
		_, err := service.Create(ctx, servicebracket.CreateServiceBracketRequest{
			Name:                "draft 4-8 years",
			MinYears:            4,
			MaxYears:            intPtr(8),
			IncentivePercentage: "11",
			IsActive:            &inactive,
		})

		assert.NoError(t, err)
	})

	t.Run("Rejects Inverted Range", func(t *testing.T) {
		repo := &fakeRepo{}
		service, _ := newTestService(t, repo)

		_, err := service.Create(ctx, servicebracket.CreateServiceBracketRequest{
			Name:                "broken",
			MinYears:            10,
			MaxYears:            intPtr(5),
			IncentivePercentage: "10",
		})

		assert.ErrorIs(t, err, servicebracketerrors.ErrInvalidYearsRange)
	})

	t.Run("Rejects Percentage Above 100", func(t *testing.T) {
		repo := &fakeRepo{}
		service, _ := newTestService(t, repo)

		_, err := service.Create(ctx, servicebracket.CreateServiceBracketRequest{
			Name:                "too generous",
			MinYears:            0,
			IncentivePercentage: "120",
		})

		assert.ErrorIs(t, err, servicebracketerrors.ErrInvalidIncentivePercentage)
	})
}

func TestService_Update_OverlapExcludesSelf(t *testing.T) {
	ctx := context.Background()

	self := servicebracket.ServiceBracket{
		ID:                  uuid.New(),
		Name:                "3-6 years",
		MinYears:            3,
		MaxYears:            intPtr(6),
		IncentivePercentage: decimal.RequireFromString("10"),
		IsActive:            true,
	}

	repo := &fakeRepo{brackets: []servicebracket.ServiceBracket{self}}
	service, sqlMock := newTestService(t, repo)

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	// Widening a bracket's own range must not collide with itself.
	resp, err := service.Update(ctx, self.ID.String(), servicebracket.UpdateServiceBracketRequest{
		Name:                "3-7 years",
		MinYears:            3,
		MaxYears:            intPtr(7),
		IncentivePercentage: "10",
	})

	assert.NoError(t, err)
	assert.Equal(t, "3-7 years", resp.Name)
	require.NotNil(t, repo.updated)
	assert.Equal(t, 7, *repo.updated.MaxYears)
}
