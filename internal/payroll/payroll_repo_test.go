package payroll_test

import (
	"context"
	"testing"

	"go-payroll/internal/payroll"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestRepository_WithTxRoutesReplaceThroughTransaction(t *testing.T) {
	ctx := context.Background()

	gormDB, poolMock := openGormDB(t)

	txDB, txMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { txDB.Close() })

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	require.NoError(t, err)

	qtx := payroll.NewRepository(gormDB).WithTx(tx)

	txMock.ExpectExec(`DELETE FROM "payroll_snapshots"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	txMock.ExpectExec(`INSERT INTO "payroll_snapshots"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, qtx.DeleteByPeriod(ctx, 2025, 6))
	require.NoError(t, qtx.CreateBatch(ctx, []payroll.PayrollSnapshot{{
		ID:           uuid.New(),
		EmployeeID:   uuid.New(),
		DepartmentID: uuid.New(),
		Year:         2025,
		Month:        6,
	}}))

	txMock.ExpectRollback()
	require.NoError(t, tx.Rollback())

	// The delete and the insert both ran inside the transaction, so rolling
	// back leaves the previous snapshot set untouched.
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
