package aggregate

import (
	"time"

	"storewatch/internal/model"
)

// DateLayout is how pivot rows render dates.
const DateLayout = "2006-01-02"

// FormatDate renders t as a pivot date key in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// RangeFor picks the dashboard window for a selected day: the day itself when
// it is today, the last 7 days when it falls within them, else the last 30
// days. Days are UTC days, the same days FormatDate keys rows by, whatever
// zone now carries.
func RangeFor(selected, now time.Time) model.DateRange {
	selected, now = selected.UTC(), now.UTC()
	today := startOfDay(now)
	end := today.Add(24*time.Hour - time.Millisecond)

	if startOfDay(selected).Equal(today) {
		return model.DateRange{From: today, To: end}
	}
	if selected.After(now.Add(-7 * 24 * time.Hour)) {
		return model.DateRange{From: startOfDay(now.Add(-7 * 24 * time.Hour)), To: end}
	}
	return model.DateRange{From: startOfDay(now.Add(-30 * 24 * time.Hour)), To: end}
}

// LastDays is the [now-days 00:00, now] window the report page opens with,
// in UTC.
func LastDays(now time.Time, days int) model.DateRange {
	now = now.UTC()
	return model.DateRange{From: startOfDay(now.AddDate(0, 0, -days)), To: now}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
