package db

import (
	"fmt"

	"gorm.io/gorm"

	"storewatch/internal/model"
)

// Models lists every table the service owns, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Center{},
		&model.Store{},
		&model.Employee{},
		&model.CustomerFootfall{},
		&model.EmployeeFootfall{},
		&model.EmployeeTimeLog{},
		&model.CriticalViolation{},
		&model.StoreSettings{},
	}
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Reset drops every table. Used when RESET_DB=true.
func Reset(db *gorm.DB) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
