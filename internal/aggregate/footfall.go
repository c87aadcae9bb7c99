package aggregate

import (
	"storewatch/internal/model"
)

// TimeLayout renders attendance clock times.
const TimeLayout = "15:04:05"

// CustomerByGender pivots customer footfall into one column per gender.
func CustomerByGender(rows []model.CustomerFootfall) []Row[int] {
	return Pivot(rows,
		func(r model.CustomerFootfall) string { return FormatDate(r.Date) },
		func(r model.CustomerFootfall) string { return r.Gender },
		func(r model.CustomerFootfall) int { return r.Entries },
		Sum[int],
	)
}

// GenderTotals sums customer entries per gender over the whole range.
func GenderTotals(rows []model.CustomerFootfall) []NamedValue {
	return TotalsBy(rows,
		func(r model.CustomerFootfall) string { return r.Gender },
		func(r model.CustomerFootfall) int { return r.Entries },
	)
}

// EmployeeEntries pivots employee footfall into one entries column per employee.
func EmployeeEntries(rows []model.EmployeeFootfall) []Row[int] {
	return Pivot(rows,
		func(r model.EmployeeFootfall) string { return FormatDate(r.Date) },
		func(r model.EmployeeFootfall) string { return r.EmployeeName() },
		func(r model.EmployeeFootfall) int { return r.Entries },
		Sum[int],
	)
}

// EmployeeAttendance pivots login/logout events into "<name>_login" and
// "<name>_logout" clock-time columns; the latest event of a day wins. Other
// event types open the date without adding a column.
func EmployeeAttendance(rows []model.EmployeeFootfall) []Row[string] {
	return Pivot(rows,
		func(r model.EmployeeFootfall) string { return FormatDate(r.Date) },
		func(r model.EmployeeFootfall) string {
			switch r.EventType {
			case model.EventLogin, model.EventLogout:
				return r.EmployeeName() + "_" + r.EventType
			default:
				return ""
			}
		},
		func(r model.EmployeeFootfall) string { return r.CreatedAt.UTC().Format(TimeLayout) },
		Last[string],
	)
}

// EmployeeNames lists employee names in first-seen order.
func EmployeeNames(rows []model.EmployeeFootfall) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, r := range rows {
		name := r.EmployeeName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// EventTotals sums employee entries per event type.
func EventTotals(rows []model.EmployeeFootfall) []NamedValue {
	return TotalsBy(rows,
		func(r model.EmployeeFootfall) string { return r.EventType },
		func(r model.EmployeeFootfall) int { return r.Entries },
	)
}

// Violations tallies violation rows.
func Violations(rows []model.CriticalViolation) ViolationSummary {
	return TallyViolations(rows, func(v model.CriticalViolation) string { return v.EventName })
}
