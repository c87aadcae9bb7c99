package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
	"storewatch/internal/repository"
)

// SettingsService reads and writes per-store detector settings.
type SettingsService interface {
	Get(ctx context.Context, storeID uint) (*model.StoreSettings, error)
	Update(ctx context.Context, storeID uint, data model.SettingsData) (*model.StoreSettings, error)
}

type settingsService struct {
	repo repository.StoreRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo repository.StoreRepository) SettingsService {
	return &settingsService{repo: repo}
}

// Get returns the stored settings, or an empty document for a store that
// has never been configured.
func (s *settingsService) Get(ctx context.Context, storeID uint) (*model.StoreSettings, error) {
	settings, err := s.repo.FindSettings(ctx, storeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.StoreSettings{StoreID: storeID}, nil
	}
	if err != nil {
		return nil, apperrors.NewQueryError("settings", err)
	}
	return settings, nil
}

// Update replaces the settings document. Callers validate data first.
func (s *settingsService) Update(ctx context.Context, storeID uint, data model.SettingsData) (*model.StoreSettings, error) {
	settings := &model.StoreSettings{StoreID: storeID, SettingsData: data}
	if err := s.repo.UpsertSettings(ctx, settings); err != nil {
		return nil, apperrors.NewQueryError("settings", err)
	}
	return settings, nil
}
