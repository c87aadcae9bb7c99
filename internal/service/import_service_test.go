package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storewatch/internal/db"
	apperrors "storewatch/internal/errors"
	"storewatch/internal/importer"
	"storewatch/internal/model"
	"storewatch/internal/repository"
)

func TestImportService_Import(t *testing.T) {
	footfall := new(MockFootfallRepository)
	violations := new(MockViolationRepository)

	batch := &importer.Batch{
		Customers: []model.CustomerFootfall{{StoreID: 1, Entries: 3}},
		Employees: []importer.EmployeeEvent{
			{Name: "Alex", Footfall: model.EmployeeFootfall{StoreID: 1, EventType: model.EventLogin}},
			{Name: "Alex", Footfall: model.EmployeeFootfall{StoreID: 1, EventType: model.EventLogout}},
			{Footfall: model.EmployeeFootfall{StoreID: 1, EventType: model.EventLogin}},
		},
	}

	footfall.On("CreateCustomerBatch", mock.Anything, batch.Customers).Return(nil)
	footfall.On("FindOrCreateEmployee", mock.Anything, uint(1), "Alex").Return(&model.Employee{ID: 42, Name: "Alex"}, nil).Once()
	footfall.On("CreateEmployeeBatch", mock.Anything, mock.MatchedBy(func(rows []model.EmployeeFootfall) bool {
		return len(rows) == 3 &&
			rows[0].EmployeeID != nil && *rows[0].EmployeeID == 42 &&
			rows[1].EmployeeID != nil && *rows[1].EmployeeID == 42 &&
			rows[2].EmployeeID == nil
	})).Return(nil)
	violations.On("CreateBatch", mock.Anything, []model.CriticalViolation(nil)).Return(nil)

	res, err := NewImportService(&stubTransactor{footfall: footfall, violations: violations}, nil).Import(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Customers: 1, Employees: 3}, res)
	footfall.AssertExpectations(t)
	violations.AssertExpectations(t)
}

func TestImportService_ImportFailure(t *testing.T) {
	footfall := new(MockFootfallRepository)
	footfall.On("CreateCustomerBatch", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	res, err := NewImportService(&stubTransactor{footfall: footfall, violations: new(MockViolationRepository)}, nil).Import(context.Background(), &importer.Batch{})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrQueryFailed)
}

func TestImportService_FailedViolationsLeaveNothingWritten(t *testing.T) {
	conn, err := db.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, conn.Migrator().DropTable(&model.CriticalViolation{}))

	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	batch := &importer.Batch{
		Customers: []model.CustomerFootfall{{StoreID: 1, Date: day, Gender: model.GenderMale, Entries: 3}},
		Employees: []importer.EmployeeEvent{
			{Name: "Alex", Footfall: model.EmployeeFootfall{StoreID: 1, Date: day, EventType: model.EventLogin, Entries: 1}},
		},
		Violations: []model.CriticalViolation{{EventName: model.EventDoorState, StoreID: 1, EventTime: day}},
	}

	res, err := NewImportService(repository.NewTransactor(conn), nil).Import(context.Background(), batch)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrQueryFailed)
	assert.Contains(t, err.Error(), "critical_violations")
	for _, m := range []interface{}{&model.CustomerFootfall{}, &model.EmployeeFootfall{}, &model.Employee{}} {
		var n int64
		require.NoError(t, conn.Model(m).Count(&n).Error)
		assert.Zero(t, n, "%T rows survived a failed import", m)
	}
}
