package service

import (
	"context"

	"go.uber.org/zap"

	apperrors "storewatch/internal/errors"
	"storewatch/internal/importer"
	"storewatch/internal/model"
	"storewatch/internal/repository"
)

// ImportResult counts the rows written per table.
type ImportResult struct {
	Customers  int `json:"customer_footfall"`
	Employees  int `json:"employee_footfall"`
	Violations int `json:"critical_violations"`
}

// ImportService loads workbook batches into the row store.
type ImportService interface {
	Import(ctx context.Context, batch *importer.Batch) (*ImportResult, error)
}

type importService struct {
	tx  repository.Transactor
	log *zap.Logger
}

// NewImportService creates a new import service.
func NewImportService(tx repository.Transactor, log *zap.Logger) ImportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &importService{tx: tx, log: log}
}

// Import resolves employee names to ids, creating employees as needed, and
// inserts every row in one transaction: a failing table leaves nothing
// written.
func (s *importService) Import(ctx context.Context, batch *importer.Batch) (*ImportResult, error) {
	var employees []model.EmployeeFootfall
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, w repository.Writers) error {
		if err := w.Footfall.CreateCustomerBatch(ctx, batch.Customers); err != nil {
			return apperrors.NewQueryError("customer_footfall", err)
		}

		rows, err := resolveEmployees(ctx, w.Footfall, batch.Employees)
		if err != nil {
			return err
		}
		if err := w.Footfall.CreateEmployeeBatch(ctx, rows); err != nil {
			return apperrors.NewQueryError("employee_footfall", err)
		}

		if err := w.Violations.CreateBatch(ctx, batch.Violations); err != nil {
			return apperrors.NewQueryError("critical_violations", err)
		}
		employees = rows
		return nil
	})
	if err != nil {
		s.log.Warn("workbook import rolled back", zap.Error(err))
		return nil, err
	}

	res := &ImportResult{
		Customers:  len(batch.Customers),
		Employees:  len(employees),
		Violations: len(batch.Violations),
	}
	s.log.Info("workbook imported",
		zap.Int("customer_footfall", res.Customers),
		zap.Int("employee_footfall", res.Employees),
		zap.Int("critical_violations", res.Violations),
	)
	return res, nil
}

func resolveEmployees(ctx context.Context, footfall repository.FootfallRepository, events []importer.EmployeeEvent) ([]model.EmployeeFootfall, error) {
	type employeeKey struct {
		store uint
		name  string
	}
	ids := make(map[employeeKey]uint)
	rows := make([]model.EmployeeFootfall, 0, len(events))
	for _, ev := range events {
		row := ev.Footfall
		if ev.Name != "" {
			key := employeeKey{store: row.StoreID, name: ev.Name}
			id, ok := ids[key]
			if !ok {
				emp, err := footfall.FindOrCreateEmployee(ctx, row.StoreID, ev.Name)
				if err != nil {
					return nil, apperrors.NewQueryError("employees", err)
				}
				id = emp.ID
				ids[key] = id
			}
			row.EmployeeID = &id
		}
		rows = append(rows, row)
	}
	return rows, nil
}
