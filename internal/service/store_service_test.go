package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
)

func TestStoreService_Scope(t *testing.T) {
	tests := []struct {
		name          string
		param         string
		setupMock     func(*MockStoreRepository)
		expected      model.StoreScope
		expectedError error
	}{
		{
			name:     "all stores",
			param:    "all",
			expected: model.AllStores(),
		},
		{
			name:  "existing store",
			param: "7",
			setupMock: func(m *MockStoreRepository) {
				m.On("FindView", mock.Anything, uint(7)).Return(&model.StoreView{StoreID: 7}, nil)
			},
			expected: model.ForStore(7),
		},
		{
			name:          "not a number",
			param:         "seven",
			expectedError: apperrors.ErrInvalidStore,
		},
		{
			name:          "zero",
			param:         "0",
			expectedError: apperrors.ErrInvalidStore,
		},
		{
			name:  "unknown store",
			param: "8",
			setupMock: func(m *MockStoreRepository) {
				m.On("FindView", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrStoreNotFound,
		},
		{
			name:  "lookup failure",
			param: "9",
			setupMock: func(m *MockStoreRepository) {
				m.On("FindView", mock.Anything, uint(9)).Return(nil, errors.New("down"))
			},
			expectedError: apperrors.ErrQueryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockStoreRepository)
			if tt.setupMock != nil {
				tt.setupMock(mockRepo)
			}

			scope, err := NewStoreService(mockRepo, nil).Scope(context.Background(), tt.param)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, scope)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStoreService_Create(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Store")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Store).ID = 3 }).
		Return(nil)
	mockRepo.On("FindView", mock.Anything, uint(3)).Return(&model.StoreView{StoreID: 3, StoreName: "North", CenterName: "Mall"}, nil)

	view, err := NewStoreService(mockRepo, nil).Create(context.Background(), &model.Store{Name: "North", CenterID: 1})

	require.NoError(t, err)
	assert.Equal(t, "Mall", view.CenterName)
	mockRepo.AssertExpectations(t)
}

func TestStoreService_ListFailure(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	mockRepo.On("ListViews", mock.Anything).Return(nil, errors.New("no such table"))

	views, err := NewStoreService(mockRepo, nil).List(context.Background())

	assert.Nil(t, views)
	var qe *apperrors.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "store_center_view", qe.Table)
}

func TestSettingsService(t *testing.T) {
	t.Run("unconfigured store gets empty settings", func(t *testing.T) {
		mockRepo := new(MockStoreRepository)
		mockRepo.On("FindSettings", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

		settings, err := NewSettingsService(mockRepo).Get(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, &model.StoreSettings{StoreID: 4}, settings)
	})

	t.Run("update upserts", func(t *testing.T) {
		mockRepo := new(MockStoreRepository)
		data := model.SettingsData{CashDrawerURL: "http://cam/1", CashDrawerEnabled: true}
		mockRepo.On("UpsertSettings", mock.Anything, &model.StoreSettings{StoreID: 4, SettingsData: data}).Return(nil)

		settings, err := NewSettingsService(mockRepo).Update(context.Background(), 4, data)

		require.NoError(t, err)
		assert.Equal(t, data, settings.SettingsData)
		mockRepo.AssertExpectations(t)
	})

	t.Run("lookup failure", func(t *testing.T) {
		mockRepo := new(MockStoreRepository)
		mockRepo.On("FindSettings", mock.Anything, uint(4)).Return(nil, errors.New("down"))

		_, err := NewSettingsService(mockRepo).Get(context.Background(), 4)

		assert.ErrorIs(t, err, apperrors.ErrQueryFailed)
	})
}
