package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storewatch/internal/model"
)

// StoreRepository defines store, center and settings persistence.
type StoreRepository interface {
	ListViews(ctx context.Context) ([]model.StoreView, error)
	FindView(ctx context.Context, storeID uint) (*model.StoreView, error)
	ListCenters(ctx context.Context) ([]model.Center, error)
	CreateCenter(ctx context.Context, center *model.Center) error
	Create(ctx context.Context, store *model.Store) error
	FindSettings(ctx context.Context, storeID uint) (*model.StoreSettings, error)
	UpsertSettings(ctx context.Context, settings *model.StoreSettings) error
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository.
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("stores").
		Select("stores.id AS store_id, stores.name AS store_name, centers.id AS center_id, centers.name AS center_name, centers.location AS center_location").
		Joins("JOIN centers ON centers.id = stores.center_id")
}

// ListViews returns every store joined with its center, ordered by store id.
func (r *storeRepository) ListViews(ctx context.Context) ([]model.StoreView, error) {
	var views []model.StoreView
	if err := r.views(ctx).Order("stores.id ASC").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// FindView returns one store view or gorm.ErrRecordNotFound.
func (r *storeRepository) FindView(ctx context.Context, storeID uint) (*model.StoreView, error) {
	var views []model.StoreView
	if err := r.views(ctx).Where("stores.id = ?", storeID).Limit(1).Scan(&views).Error; err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &views[0], nil
}

func (r *storeRepository) ListCenters(ctx context.Context) ([]model.Center, error) {
	var centers []model.Center
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *storeRepository) CreateCenter(ctx context.Context, center *model.Center) error {
	return r.db.WithContext(ctx).Create(center).Error
}

func (r *storeRepository) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Omit("Center").Create(store).Error
}

// FindSettings returns the settings of a store or gorm.ErrRecordNotFound.
func (r *storeRepository) FindSettings(ctx context.Context, storeID uint) (*model.StoreSettings, error) {
	var settings model.StoreSettings
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpsertSettings inserts or replaces the settings document of a store.
func (r *storeRepository) UpsertSettings(ctx context.Context, settings *model.StoreSettings) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"settings_data", "updated_at"}),
	}).Create(settings).Error
}
