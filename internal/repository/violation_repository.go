package repository

import (
	"context"

	"gorm.io/gorm"

	"storewatch/internal/model"
)

// ViolationRepository reads critical violations.
type ViolationRepository interface {
	List(ctx context.Context, scope model.StoreScope, r model.DateRange, order Order) ([]model.CriticalViolation, error)
	CreateBatch(ctx context.Context, rows []model.CriticalViolation) error
}

type violationRepository struct {
	db *gorm.DB
}

// NewViolationRepository creates a new violation repository.
func NewViolationRepository(db *gorm.DB) ViolationRepository {
	return &violationRepository{db: db}
}

// List returns violations of the scope whose event_time falls within r.
func (r *violationRepository) List(ctx context.Context, scope model.StoreScope, dr model.DateRange, order Order) ([]model.CriticalViolation, error) {
	q := r.db.WithContext(ctx).Model(&model.CriticalViolation{})
	q = inRange(inScope(q, "store_id", scope), "event_time", dr)
	var rows []model.CriticalViolation
	if err := q.Order(order.clause("event_time")).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateBatch inserts violations in batches of 100.
func (r *violationRepository) CreateBatch(ctx context.Context, rows []model.CriticalViolation) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, 100).Error
}
