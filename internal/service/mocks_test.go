package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"storewatch/internal/model"
	"storewatch/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockRevocationStore is a mock implementation of RevocationStoreInterface.
type MockRevocationStore struct {
	mock.Mock
}

func (m *MockRevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	args := m.Called(ctx, token, ttl)
	return args.Error(0)
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

// MockFootfallRepository is a mock implementation of FootfallRepository.
type MockFootfallRepository struct {
	mock.Mock
}

func (m *MockFootfallRepository) CustomerFootfall(ctx context.Context, scope model.StoreScope, r model.DateRange, order repository.Order) ([]model.CustomerFootfall, error) {
	args := m.Called(ctx, scope, r, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CustomerFootfall), args.Error(1)
}

func (m *MockFootfallRepository) EmployeeFootfall(ctx context.Context, scope model.StoreScope, r model.DateRange, order repository.Order) ([]model.EmployeeFootfall, error) {
	args := m.Called(ctx, scope, r, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EmployeeFootfall), args.Error(1)
}

func (m *MockFootfallRepository) EmployeeTimeLog(ctx context.Context) ([]model.EmployeeTimeLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EmployeeTimeLog), args.Error(1)
}

func (m *MockFootfallRepository) CreateCustomerBatch(ctx context.Context, rows []model.CustomerFootfall) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *MockFootfallRepository) CreateEmployeeBatch(ctx context.Context, rows []model.EmployeeFootfall) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *MockFootfallRepository) FindOrCreateEmployee(ctx context.Context, storeID uint, name string) (*model.Employee, error) {
	args := m.Called(ctx, storeID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

// MockViolationRepository is a mock implementation of ViolationRepository.
type MockViolationRepository struct {
	mock.Mock
}

func (m *MockViolationRepository) List(ctx context.Context, scope model.StoreScope, r model.DateRange, order repository.Order) ([]model.CriticalViolation, error) {
	args := m.Called(ctx, scope, r, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CriticalViolation), args.Error(1)
}

func (m *MockViolationRepository) CreateBatch(ctx context.Context, rows []model.CriticalViolation) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

// MockStoreRepository is a mock implementation of StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) ListViews(ctx context.Context) ([]model.StoreView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoreView), args.Error(1)
}

func (m *MockStoreRepository) FindView(ctx context.Context, storeID uint) (*model.StoreView, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreView), args.Error(1)
}

func (m *MockStoreRepository) ListCenters(ctx context.Context) ([]model.Center, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Center), args.Error(1)
}

func (m *MockStoreRepository) CreateCenter(ctx context.Context, center *model.Center) error {
	args := m.Called(ctx, center)
	return args.Error(0)
}

func (m *MockStoreRepository) Create(ctx context.Context, store *model.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) FindSettings(ctx context.Context, storeID uint) (*model.StoreSettings, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreSettings), args.Error(1)
}

func (m *MockStoreRepository) UpsertSettings(ctx context.Context, settings *model.StoreSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// stubTransactor hands the mocks to fn without a real transaction.
type stubTransactor struct {
	footfall   repository.FootfallRepository
	violations repository.ViolationRepository
}

func (s *stubTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context, w repository.Writers) error) error {
	return fn(ctx, repository.Writers{Footfall: s.footfall, Violations: s.violations})
}
