package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"storewatch/internal/aggregate"
	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
)

// fail renders a domain error as an echo HTTP error.
func fail(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// parseDay reads a YYYY-MM-DD query value as a UTC day. An empty value
// yields def.
func parseDay(value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	t, err := time.ParseInLocation(aggregate.DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidRange
	}
	return t, nil
}

// parseRange reads the from/to query values. Both days are inclusive; a
// missing bound falls back to the last 30 days ending now.
func parseRange(c echo.Context, now time.Time) (model.DateRange, error) {
	def := aggregate.LastDays(now.UTC(), 30)

	from, err := parseDay(c.QueryParam("from"), def.From)
	if err != nil {
		return model.DateRange{}, err
	}
	r := model.DateRange{From: from, To: def.To}
	if to := c.QueryParam("to"); to != "" {
		day, err := parseDay(to, time.Time{})
		if err != nil {
			return model.DateRange{}, err
		}
		r.To = day.Add(24*time.Hour - time.Millisecond)
	}
	if !r.Valid() {
		return model.DateRange{}, apperrors.ErrInvalidRange
	}
	return r, nil
}
