package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bptrack/internal/adapter/postgres"
)

// Runs only against a disposable database named by TEST_DATABASE_URL.
func openTestDB(t *testing.T) *postgres.DB {
	t.Helper()
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := postgres.Open(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestReadingRepo(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	id, err := db.AddReading(ctx, 128, 82, "2026-02-01", time.Now().Add(time.Hour))
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = db.DeleteReading(ctx, id) })

	items, err := db.ListRecentReadings(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, 128, items[0].Systolic)
	assert.Equal(t, "2026-02-01", items[0].TakenAt)

	ok, err := db.DeleteReading(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = db.DeleteReading(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}
