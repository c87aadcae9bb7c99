package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storewatch/internal/config"
)

func TestOpen_SQLiteMigrateAndReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storewatch.db")
	conn, err := Open(&config.Config{DBDriver: "sqlite", SQLitePath: path})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, Migrate(conn))
	for _, table := range []string{"User", "centers", "stores", "customer_footfall", "employee_footfall", "employee_time_log", "critical_violations", "settings"} {
		assert.True(t, conn.Migrator().HasTable(table), table)
	}

	require.NoError(t, Reset(conn))
	assert.False(t, conn.Migrator().HasTable("critical_violations"))

	require.NoError(t, Migrate(conn), "migrate is repeatable after a reset")
}
