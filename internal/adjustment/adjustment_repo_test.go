package adjustment_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-payroll/internal/adjustment"
)

// The pool connection backs gorm, the tx connection backs the caller's
// *sql.Tx. Statements landing on the wrong connection fail the
// respective mock's expectations.
type repoTxDeps struct {
	repo     adjustment.Repository
	poolMock sqlmock.Sqlmock
	txDB     *sql.DB
	txMock   sqlmock.Sqlmock
}

func setupAdjustmentRepoTxTest(t *testing.T) *repoTxDeps {
	t.Helper()

	poolDB, poolMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { poolDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{})
	require.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { txDB.Close() })

	return &repoTxDeps{
		repo:     adjustment.NewRepository(gormDB),
		poolMock: poolMock,
		txDB:     txDB,
		txMock:   txMock,
	}
}

func earningTxRow() *adjustment.EarningAdjustment {
	return &adjustment.EarningAdjustment{
		ID:              uuid.New(),
		OrganizationID:  uuid.New(),
		RecordPayrollID: uuid.New(),
		TargetPayrollID: uuid.New(),
		Component:       "commission",
		Amount:          decimal.NewFromInt(500),
	}
}

func TestRepositoryWithTx_CreateEarningUsesTransaction(t *testing.T) {
	deps := setupAdjustmentRepoTxTest(t)

	deps.txMock.ExpectBegin()
	deps.txMock.ExpectExec(`INSERT INTO "earning_adjustments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.txMock.ExpectCommit()

	tx, err := deps.txDB.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	qtx := deps.repo.WithTx(tx)
	require.NoError(t, qtx.CreateEarning(context.Background(), earningTxRow()))
	require.NoError(t, tx.Commit())

	assert.NoError(t, deps.txMock.ExpectationsWereMet())
	assert.NoError(t, deps.poolMock.ExpectationsWereMet())
}

func TestRepositoryWithTx_SaveEarningsRollBackTogether(t *testing.T) {
	deps := setupAdjustmentRepoTxTest(t)

	deps.txMock.ExpectBegin()
	deps.txMock.ExpectExec(`UPDATE "earning_adjustments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.txMock.ExpectExec(`UPDATE "earning_adjustments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	deps.txMock.ExpectRollback()

	tx, err := deps.txDB.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	qtx := deps.repo.WithTx(tx)
	rows := []*adjustment.EarningAdjustment{earningTxRow(), earningTxRow()}
	require.NoError(t, qtx.SaveEarnings(context.Background(), rows))
	require.NoError(t, tx.Rollback())

	assert.NoError(t, deps.txMock.ExpectationsWereMet())
	assert.NoError(t, deps.poolMock.ExpectationsWereMet())
}
