// Package importer reads footfall and violation rows from an xlsx workbook.
//
// Each kind lives on its own sheet whose first row names the columns:
//
//	customer_footfall    store_id, date, gender, entries
//	employee_footfall    store_id, employee, date, event_type, entries, time
//	critical_violations  store_id, event_name, resource_name, event_time, score
//
// Missing sheets are skipped. Column order is free; unknown columns are ignored.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"storewatch/internal/model"
)

// Sheet names.
const (
	CustomerSheet  = "customer_footfall"
	EmployeeSheet  = "employee_footfall"
	ViolationSheet = "critical_violations"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01-02-06",
	"1/2/06",
	"1/2/2006",
}

// EmployeeEvent is an employee footfall row still keyed by employee name.
type EmployeeEvent struct {
	Name     string
	Footfall model.EmployeeFootfall
}

// Batch is everything read from one workbook.
type Batch struct {
	Customers  []model.CustomerFootfall
	Employees  []EmployeeEvent
	Violations []model.CriticalViolation
}

// Len is the total row count.
func (b *Batch) Len() int {
	return len(b.Customers) + len(b.Employees) + len(b.Violations)
}

// RowError points at the offending cell row.
type RowError struct {
	Sheet string
	Row   int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ReadFile opens path and reads it.
func ReadFile(path string) (*Batch, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return read(f)
}

// Read parses a workbook from r.
func Read(r io.Reader) (*Batch, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return read(f)
}

func read(f *excelize.File) (*Batch, error) {
	b := &Batch{}

	if err := eachRecord(f, CustomerSheet, func(rec record) error {
		row := model.CustomerFootfall{Gender: rec.str("gender")}
		var err error
		if row.StoreID, err = rec.storeID(); err != nil {
			return err
		}
		if row.Date, err = rec.date("date"); err != nil {
			return err
		}
		if row.Entries, err = rec.integer("entries"); err != nil {
			return err
		}
		b.Customers = append(b.Customers, row)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := eachRecord(f, EmployeeSheet, func(rec record) error {
		ev := EmployeeEvent{Name: rec.str("employee")}
		ev.Footfall.EventType = rec.str("event_type")
		var err error
		if ev.Footfall.StoreID, err = rec.storeID(); err != nil {
			return err
		}
		if ev.Footfall.Date, err = rec.date("date"); err != nil {
			return err
		}
		if ev.Footfall.Entries, err = rec.integer("entries"); err != nil {
			return err
		}
		if clock := rec.str("time"); clock != "" {
			t, err := time.Parse("15:04:05", clock)
			if err != nil {
				return fmt.Errorf("time %q: %w", clock, err)
			}
			ev.Footfall.CreatedAt = ev.Footfall.Date.Add(time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second)
		}
		b.Employees = append(b.Employees, ev)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := eachRecord(f, ViolationSheet, func(rec record) error {
		v := model.CriticalViolation{
			EventName:    rec.str("event_name"),
			ResourceName: rec.str("resource_name"),
		}
		var err error
		if v.StoreID, err = rec.storeID(); err != nil {
			return err
		}
		if v.EventTime, err = rec.date("event_time"); err != nil {
			return err
		}
		if s := rec.str("score"); s != "" {
			d, err := decimal.NewFromString(s)
			if err != nil {
				return fmt.Errorf("score %q: %w", s, err)
			}
			v.Score = decimal.NewNullDecimal(d)
		}
		b.Violations = append(b.Violations, v)
		return nil
	}); err != nil {
		return nil, err
	}

	return b, nil
}

type record map[string]string

func (r record) str(col string) string {
	return strings.TrimSpace(r[col])
}

func (r record) storeID() (uint, error) {
	s := r.str("store_id")
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("store_id %q is not a positive integer", s)
	}
	return uint(id), nil
}

func (r record) integer(col string) (int, error) {
	s := r.str(col)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", col, s, err)
	}
	return n, nil
}

func (r record) date(col string) (time.Time, error) {
	s := r.str(col)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%s %q is not a date", col, s)
}

// eachRecord calls fn for every non-blank data row of sheet, keyed by the
// lower-cased header names.
func eachRecord(f *excelize.File, sheet string, fn func(record) error) error {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for i, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		rec := make(record, len(header))
		for j, v := range cells {
			if j < len(header) && header[j] != "" {
				rec[header[j]] = v
			}
		}
		if err := fn(rec); err != nil {
			return &RowError{Sheet: sheet, Row: i + 2, Err: err}
		}
	}
	return nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
