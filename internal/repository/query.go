package repository

import (
	"gorm.io/gorm"

	"storewatch/internal/model"
)

// Order is the sort direction of a time-ordered query.
type Order int

const (
	// Ascending sorts oldest first.
	Ascending Order = iota
	// Descending sorts newest first.
	Descending
)

func (o Order) clause(column string) string {
	if o == Descending {
		return column + " DESC"
	}
	return column + " ASC"
}

// inScope filters by store_id unless the scope spans every store.
func inScope(db *gorm.DB, column string, scope model.StoreScope) *gorm.DB {
	if scope.All {
		return db
	}
	return db.Where(column+" = ?", scope.StoreID)
}

func inRange(db *gorm.DB, column string, r model.DateRange) *gorm.DB {
	return db.Where(column+" >= ? AND "+column+" <= ?", r.From.UTC(), r.To.UTC())
}
