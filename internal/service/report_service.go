package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"storewatch/internal/aggregate"
	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
	"storewatch/internal/repository"
)

const (
	customerSheet = "Customers"
	employeeSheet = "Employees"
)

// CustomerReport is the customer footfall report of a range.
type CustomerReport struct {
	Range        model.DateRange        `json:"range"`
	Summary      aggregate.Summary      `json:"summary"`
	Series       []aggregate.Row[int]   `json:"series"`
	Genders      []string               `json:"genders"`
	GenderTotals []aggregate.NamedValue `json:"gender_totals"`
}

// EmployeeReport is the employee footfall report of a range.
type EmployeeReport struct {
	Range       model.DateRange        `json:"range"`
	Summary     aggregate.Summary      `json:"summary"`
	Series      []aggregate.Row[int]   `json:"series"`
	Employees   []string               `json:"employees"`
	EventTotals []aggregate.NamedValue `json:"event_totals"`
}

// ReportService builds footfall reports.
type ReportService interface {
	Customer(ctx context.Context, scope model.StoreScope, r model.DateRange) (*CustomerReport, error)
	Employee(ctx context.Context, scope model.StoreScope, r model.DateRange) (*EmployeeReport, error)
	TimeLog(ctx context.Context) ([]model.EmployeeTimeLog, error)
	Export(ctx context.Context, scope model.StoreScope, r model.DateRange, w io.Writer) error
}

type reportService struct {
	footfall repository.FootfallRepository
}

// NewReportService creates a new report service.
func NewReportService(footfall repository.FootfallRepository) ReportService {
	return &reportService{footfall: footfall}
}

func (s *reportService) customerRows(ctx context.Context, scope model.StoreScope, r model.DateRange) ([]model.CustomerFootfall, error) {
	if !r.Valid() {
		return nil, apperrors.ErrInvalidRange
	}
	rows, err := s.footfall.CustomerFootfall(ctx, scope, r, repository.Ascending)
	if err != nil {
		return nil, apperrors.NewQueryError("customer_footfall", err)
	}
	return rows, nil
}

func (s *reportService) employeeRows(ctx context.Context, scope model.StoreScope, r model.DateRange) ([]model.EmployeeFootfall, error) {
	if !r.Valid() {
		return nil, apperrors.ErrInvalidRange
	}
	rows, err := s.footfall.EmployeeFootfall(ctx, scope, r, repository.Ascending)
	if err != nil {
		return nil, apperrors.NewQueryError("employee_footfall", err)
	}
	return rows, nil
}

func (s *reportService) Customer(ctx context.Context, scope model.StoreScope, r model.DateRange) (*CustomerReport, error) {
	rows, err := s.customerRows(ctx, scope, r)
	if err != nil {
		return nil, err
	}
	series := aggregate.CustomerByGender(rows)
	return &CustomerReport{
		Range: r,
		Summary: aggregate.Summarize(rows,
			func(c model.CustomerFootfall) string { return aggregate.FormatDate(c.Date) },
			func(c model.CustomerFootfall) int { return c.Entries },
		),
		Series:       series,
		Genders:      aggregate.Columns(series),
		GenderTotals: aggregate.GenderTotals(rows),
	}, nil
}

func (s *reportService) Employee(ctx context.Context, scope model.StoreScope, r model.DateRange) (*EmployeeReport, error) {
	rows, err := s.employeeRows(ctx, scope, r)
	if err != nil {
		return nil, err
	}
	return &EmployeeReport{
		Range: r,
		Summary: aggregate.Summarize(rows,
			func(e model.EmployeeFootfall) string { return aggregate.FormatDate(e.Date) },
			func(e model.EmployeeFootfall) int { return e.Entries },
		),
		Series:      aggregate.EmployeeEntries(rows),
		Employees:   aggregate.EmployeeNames(rows),
		EventTotals: aggregate.EventTotals(rows),
	}, nil
}

func (s *reportService) TimeLog(ctx context.Context) ([]model.EmployeeTimeLog, error) {
	rows, err := s.footfall.EmployeeTimeLog(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError("employee_time_log", err)
	}
	return rows, nil
}

// Export writes a workbook with one pivot sheet per footfall kind. Each
// sheet starts with a Date column followed by one column per sub-entity.
func (s *reportService) Export(ctx context.Context, scope model.StoreScope, r model.DateRange, w io.Writer) error {
	customers, err := s.customerRows(ctx, scope, r)
	if err != nil {
		return err
	}
	employees, err := s.employeeRows(ctx, scope, r)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", customerSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(employeeSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := writePivotSheet(f, customerSheet, aggregate.CustomerByGender(customers)); err != nil {
		return err
	}
	if err := writePivotSheet(f, employeeSheet, aggregate.EmployeeEntries(employees)); err != nil {
		return err
	}
	return f.Write(w)
}

// writePivotSheet lays rows out as a table. Missing cells stay blank.
func writePivotSheet(f *excelize.File, sheet string, rows []aggregate.Row[int]) error {
	columns := aggregate.Columns(rows)

	header := make([]interface{}, 0, len(columns)+1)
	header = append(header, "Date")
	for _, c := range columns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}

	for i, row := range rows {
		values := make([]interface{}, 0, len(columns)+1)
		values = append(values, row.Date)
		for _, c := range columns {
			if v, ok := row.Get(c); ok {
				values = append(values, v)
			} else {
				values = append(values, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row: %w", sheet, err)
		}
	}
	return nil
}
