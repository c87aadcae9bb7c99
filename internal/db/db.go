package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storewatch/internal/config"
)

// Open returns a connected GORM DB for the configured driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return NewPostgres(cfg.DatabaseURL)
	case "sqlite":
		return NewSQLite(cfg.SQLitePath)
	default:
		return NewMySQL(cfg.MySQLDSN)
	}
}

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// NewPostgres opens a lib/pq pool, verifies it with a ping and hands the
// connection to GORM.
func NewPostgres(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig())
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// NewSQLite opens an embedded database file, creating its directory. The
// special path ":memory:" is passed through untouched.
func NewSQLite(path string) (*gorm.DB, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
		dsn = "file:" + path + "?_foreign_keys=1&_busy_timeout=5000"
	}
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	// single connection keeps in-memory databases alive and avoids SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}
}
