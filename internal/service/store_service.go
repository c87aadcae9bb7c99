package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"storewatch/internal/cache"
	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
	"storewatch/internal/repository"
)

const (
	storeListCacheKey = "stores:views"
	storeListCacheTTL = 5 * time.Minute
	// AllStoresParam selects every store in a :storeID path parameter.
	AllStoresParam = "all"
)

// StoreService exposes stores and centers.
type StoreService interface {
	List(ctx context.Context) ([]model.StoreView, error)
	Centers(ctx context.Context) ([]model.Center, error)
	CreateCenter(ctx context.Context, center *model.Center) error
	Create(ctx context.Context, store *model.Store) (*model.StoreView, error)
	Scope(ctx context.Context, param string) (model.StoreScope, error)
}

type storeService struct {
	repo  repository.StoreRepository
	cache *cache.Client
}

// NewStoreService builds a StoreService with repository and cache.
func NewStoreService(repo repository.StoreRepository, cache *cache.Client) StoreService {
	return &storeService{repo: repo, cache: cache}
}

func (s *storeService) List(ctx context.Context) ([]model.StoreView, error) {
	var cached []model.StoreView
	if s.cache.GetJSON(ctx, storeListCacheKey, &cached) {
		return cached, nil
	}

	views, err := s.repo.ListViews(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError("store_center_view", err)
	}
	s.cache.SetJSON(ctx, storeListCacheKey, views, storeListCacheTTL)
	return views, nil
}

func (s *storeService) Centers(ctx context.Context) ([]model.Center, error) {
	centers, err := s.repo.ListCenters(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError("centers", err)
	}
	return centers, nil
}

func (s *storeService) CreateCenter(ctx context.Context, center *model.Center) error {
	if err := s.repo.CreateCenter(ctx, center); err != nil {
		return apperrors.NewQueryError("centers", err)
	}
	return nil
}

// Create inserts a store and returns its joined view.
func (s *storeService) Create(ctx context.Context, store *model.Store) (*model.StoreView, error) {
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, apperrors.NewQueryError("stores", err)
	}
	_ = s.cache.Delete(ctx, storeListCacheKey)

	view, err := s.repo.FindView(ctx, store.ID)
	if err != nil {
		return nil, apperrors.NewQueryError("store_center_view", err)
	}
	return view, nil
}

// Scope resolves a :storeID path parameter. "all" spans every store; any
// other value must name an existing store.
func (s *storeService) Scope(ctx context.Context, param string) (model.StoreScope, error) {
	if param == AllStoresParam {
		return model.AllStores(), nil
	}
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil || id == 0 {
		return model.StoreScope{}, apperrors.ErrInvalidStore
	}
	if _, err := s.repo.FindView(ctx, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.StoreScope{}, apperrors.ErrStoreNotFound
		}
		return model.StoreScope{}, apperrors.NewQueryError("stores", err)
	}
	return model.ForStore(uint(id)), nil
}
