package aggregate

import (
	"math"

	"storewatch/internal/model"
)

// ViolationSummary counts violations per known event name.
type ViolationSummary struct {
	CashboxOffence int `json:"cashbox_offence"`
	DoorState      int `json:"door_state"`
	NoEmployee     int `json:"no_employee"`
	TotalCount     int `json:"total_count"`
}

// TallyViolations counts rows per event name. Unknown names only add to the
// total.
func TallyViolations[R any](rows []R, nameOf func(R) string) ViolationSummary {
	var s ViolationSummary
	for _, row := range rows {
		switch nameOf(row) {
		case model.EventCashboxOffence:
			s.CashboxOffence++
		case model.EventDoorState:
			s.DoorState++
		case model.EventNoEmployee:
			s.NoEmployee++
		}
		s.TotalCount++
	}
	return s
}

// NamedValue is one slice of a pie chart.
type NamedValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TotalsBy sums valueOf per key, in first-seen key order.
func TotalsBy[R any](rows []R, keyOf func(R) string, valueOf func(R) int) []NamedValue {
	out := make([]NamedValue, 0)
	index := make(map[string]int)
	for _, row := range rows {
		k := keyOf(row)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, NamedValue{Name: k})
		}
		out[i].Value += valueOf(row)
	}
	return out
}

// Summary is the headline card row of a report.
type Summary struct {
	TotalEntries    int    `json:"total_entries"`
	AvgDailyEntries int    `json:"avg_daily_entries"`
	PeakDate        string `json:"peak_date"`
	PeakEntries     int    `json:"peak_entries"`
}

// Summarize totals entries per date, then reports the overall total, the
// rounded mean per date and the busiest date (earliest wins a tie).
func Summarize[R any](rows []R, dateOf func(R) string, entriesOf func(R) int) Summary {
	daily := TotalsBy(rows, dateOf, entriesOf)
	var s Summary
	for _, d := range daily {
		s.TotalEntries += d.Value
		if s.PeakDate == "" || d.Value > s.PeakEntries {
			s.PeakDate = d.Name
			s.PeakEntries = d.Value
		}
	}
	if len(daily) > 0 {
		s.AvgDailyEntries = int(math.Round(float64(s.TotalEntries) / float64(len(daily))))
	}
	return s
}
