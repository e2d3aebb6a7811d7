package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/request-ocr/internal/common"
	"github.com/joseph-ayodele/request-ocr/internal/entity"
)

func openTestSQLite(t *testing.T) Store {
	t.Helper()
	store, err := Open(context.Background(), Config{Driver: common.DriverSQLite, AutoMigrate: true}, nil)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	for _, name := range []string{"req-002", "req-001", "req-003"} {
		require.NoError(t, store.AddDocument(ctx, name))
	}
	require.NoError(t, store.AddDocument(ctx, "req-001"), "re-adding is ignored")

	names, err := store.ListUnprocessed(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"req-001", "req-002", "req-003"}, names)

	res, err := store.SaveBatch(ctx, []entity.UsageRecord{sampleRecord("req-001"), sampleRecord("req-003")})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)

	names, err = store.ListUnprocessed(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"req-002"}, names)

	rows, err := store.ListUsage(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "EDCTEST", rows[0].ClientAccountID)
	assert.Equal(t, "EDC", rows[0].Name)
	assert.Equal(t, 123, rows[0].ReportID)
	assert.Equal(t, "OCR", rows[0].TransactionSource)
	assert.Equal(t, "France", entity.StrOrEmpty(rows[0].Country))
	assert.Nil(t, rows[0].CompanyRegNum)
	assert.False(t, rows[0].CreatedAt.IsZero())

	future, err := store.ListUsage(ctx, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestSQLite_MigrateIsIdempotent(t *testing.T) {
	store := openTestSQLite(t)
	s := store.(*sqlStore)
	require.NoError(t, Migrate(context.Background(), s.db, common.DriverSQLite, s.logger))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "mssql"}, nil)
	require.Error(t, err)
	assert.Equal(t, common.CodeConfigInvalid, common.CodeOf(err))
}

func TestOpen_PostgresBadDSN(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: common.DriverPostgres, DSN: "::not a dsn::"}, nil)
	require.Error(t, err)
	assert.Equal(t, common.CodeConnectionFailure, common.CodeOf(err))
}
