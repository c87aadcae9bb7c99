package repository

import (
	"context"

	"gorm.io/gorm"

	"storewatch/internal/model"
)

// FootfallRepository reads customer and employee footfall.
type FootfallRepository interface {
	CustomerFootfall(ctx context.Context, scope model.StoreScope, r model.DateRange, order Order) ([]model.CustomerFootfall, error)
	EmployeeFootfall(ctx context.Context, scope model.StoreScope, r model.DateRange, order Order) ([]model.EmployeeFootfall, error)
	EmployeeTimeLog(ctx context.Context) ([]model.EmployeeTimeLog, error)
	CreateCustomerBatch(ctx context.Context, rows []model.CustomerFootfall) error
	CreateEmployeeBatch(ctx context.Context, rows []model.EmployeeFootfall) error
	FindOrCreateEmployee(ctx context.Context, storeID uint, name string) (*model.Employee, error)
}

type footfallRepository struct {
	db *gorm.DB
}

// NewFootfallRepository creates a new footfall repository.
func NewFootfallRepository(db *gorm.DB) FootfallRepository {
	return &footfallRepository{db: db}
}

// CustomerFootfall returns rows of the scope within r, ordered by date.
func (r *footfallRepository) CustomerFootfall(ctx context.Context, scope model.StoreScope, dr model.DateRange, order Order) ([]model.CustomerFootfall, error) {
	q := r.db.WithContext(ctx).Model(&model.CustomerFootfall{})
	q = inRange(inScope(q, "store_id", scope), "date", dr)
	var rows []model.CustomerFootfall
	if err := q.Order(order.clause("date")).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// EmployeeFootfall returns rows of the scope within r with their employee
// joined, ordered by date.
func (r *footfallRepository) EmployeeFootfall(ctx context.Context, scope model.StoreScope, dr model.DateRange, order Order) ([]model.EmployeeFootfall, error) {
	q := r.db.WithContext(ctx).Model(&model.EmployeeFootfall{}).Preload("Employee")
	q = inRange(inScope(q, "store_id", scope), "date", dr)
	var rows []model.EmployeeFootfall
	if err := q.Order(order.clause("date")).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// EmployeeTimeLog returns the daily login/logout averages ordered by date.
func (r *footfallRepository) EmployeeTimeLog(ctx context.Context) ([]model.EmployeeTimeLog, error) {
	var rows []model.EmployeeTimeLog
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateCustomerBatch inserts customer rows in batches of 100.
func (r *footfallRepository) CreateCustomerBatch(ctx context.Context, rows []model.CustomerFootfall) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, 100).Error
}

// CreateEmployeeBatch inserts employee rows in batches of 100.
func (r *footfallRepository) CreateEmployeeBatch(ctx context.Context, rows []model.EmployeeFootfall) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Employee").CreateInBatches(rows, 100).Error
}

// FindOrCreateEmployee looks an employee up by store and name, creating it
// when missing.
func (r *footfallRepository) FindOrCreateEmployee(ctx context.Context, storeID uint, name string) (*model.Employee, error) {
	employee := model.Employee{StoreID: storeID, Name: name}
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND name = ?", storeID, name).
		FirstOrCreate(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}
