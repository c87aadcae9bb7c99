package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storewatch/internal/db"
	"storewatch/internal/model"
)

// openTestDB returns a migrated in-memory SQLite database that lives for
// the duration of the test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func januaryRange() model.DateRange {
	return model.DateRange{From: day(1), To: time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)}
}
