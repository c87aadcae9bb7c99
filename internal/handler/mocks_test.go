package handler

import (
	"context"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"storewatch/internal/importer"
	"storewatch/internal/model"
	"storewatch/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Verify(ctx context.Context, email, password string) (*model.Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Identity), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, email, password, username, role string) (*model.User, error) {
	args := m.Called(ctx, email, password, username, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) IsRevoked(ctx context.Context, token string) bool {
	args := m.Called(ctx, token)
	return args.Bool(0)
}

// MockStoreService is a mock implementation of service.StoreService.
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) List(ctx context.Context) ([]model.StoreView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoreView), args.Error(1)
}

func (m *MockStoreService) Centers(ctx context.Context) ([]model.Center, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Center), args.Error(1)
}

func (m *MockStoreService) CreateCenter(ctx context.Context, center *model.Center) error {
	args := m.Called(ctx, center)
	return args.Error(0)
}

func (m *MockStoreService) Create(ctx context.Context, store *model.Store) (*model.StoreView, error) {
	args := m.Called(ctx, store)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreView), args.Error(1)
}

func (m *MockStoreService) Scope(ctx context.Context, param string) (model.StoreScope, error) {
	args := m.Called(ctx, param)
	return args.Get(0).(model.StoreScope), args.Error(1)
}

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Load(ctx context.Context, scope model.StoreScope, selected time.Time) (*service.Dashboard, error) {
	args := m.Called(ctx, scope, selected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Customer(ctx context.Context, scope model.StoreScope, r model.DateRange) (*service.CustomerReport, error) {
	args := m.Called(ctx, scope, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CustomerReport), args.Error(1)
}

func (m *MockReportService) Employee(ctx context.Context, scope model.StoreScope, r model.DateRange) (*service.EmployeeReport, error) {
	args := m.Called(ctx, scope, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EmployeeReport), args.Error(1)
}

func (m *MockReportService) TimeLog(ctx context.Context) ([]model.EmployeeTimeLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EmployeeTimeLog), args.Error(1)
}

func (m *MockReportService) Export(ctx context.Context, scope model.StoreScope, r model.DateRange, w io.Writer) error {
	args := m.Called(ctx, scope, r, w)
	return args.Error(0)
}

// MockSettingsService is a mock implementation of service.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context, storeID uint) (*model.StoreSettings, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreSettings), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, storeID uint, data model.SettingsData) (*model.StoreSettings, error) {
	args := m.Called(ctx, storeID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreSettings), args.Error(1)
}

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Import(ctx context.Context, batch *importer.Batch) (*service.ImportResult, error) {
	args := m.Called(ctx, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}
