package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storewatch/internal/aggregate"
	"storewatch/internal/cache"
	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
	"storewatch/internal/repository"
)

// Dashboard is everything the store dashboard renders for one date range.
type Dashboard struct {
	Range            model.DateRange            `json:"range"`
	Customers        []aggregate.Row[int]       `json:"customers"`
	Genders          []string                   `json:"genders"`
	Attendance       []aggregate.Row[string]    `json:"attendance"`
	Employees        []string                   `json:"employees"`
	Violations       []model.CriticalViolation  `json:"violations"`
	ViolationSummary aggregate.ViolationSummary `json:"violation_summary"`
}

// DashboardService loads the dashboard of a store scope.
type DashboardService interface {
	Load(ctx context.Context, scope model.StoreScope, selected time.Time) (*Dashboard, error)
}

type dashboardService struct {
	footfall   repository.FootfallRepository
	violations repository.ViolationRepository
	cache      *cache.Client
	ttl        time.Duration
	now        func() time.Time
	log        *zap.Logger
}

// NewDashboardService creates a dashboard service. A zero ttl disables caching.
func NewDashboardService(
	footfall repository.FootfallRepository,
	violations repository.ViolationRepository,
	cache *cache.Client,
	ttl time.Duration,
	log *zap.Logger,
) DashboardService {
	if log == nil {
		log = zap.NewNop()
	}
	return &dashboardService{
		footfall:   footfall,
		violations: violations,
		cache:      cache,
		ttl:        ttl,
		now:        func() time.Time { return time.Now().UTC() },
		log:        log,
	}
}

func dashboardCacheKey(scope model.StoreScope, r model.DateRange) string {
	return "dashboard:" + scope.Key() + ":" + aggregate.FormatDate(r.From) + ":" + aggregate.FormatDate(r.To)
}

// Load runs the customer, employee and violation queries concurrently. Any
// failure fails the whole load; partial dashboards are never returned.
func (s *dashboardService) Load(ctx context.Context, scope model.StoreScope, selected time.Time) (*Dashboard, error) {
	r := aggregate.RangeFor(selected, s.now())
	key := dashboardCacheKey(scope, r)

	if s.ttl > 0 {
		var cached Dashboard
		if s.cache.GetJSON(ctx, key, &cached) {
			return &cached, nil
		}
	}

	var (
		customers  []model.CustomerFootfall
		employees  []model.EmployeeFootfall
		violations []model.CriticalViolation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.footfall.CustomerFootfall(gctx, scope, r, repository.Ascending)
		if err != nil {
			return apperrors.NewQueryError("customer_footfall", err)
		}
		customers = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.footfall.EmployeeFootfall(gctx, scope, r, repository.Ascending)
		if err != nil {
			return apperrors.NewQueryError("employee_footfall", err)
		}
		employees = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.violations.List(gctx, scope, r, repository.Descending)
		if err != nil {
			return apperrors.NewQueryError("critical_violations", err)
		}
		violations = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Error("dashboard query failed", zap.String("scope", scope.Key()), zap.Error(err))
		return nil, err
	}

	if violations == nil {
		violations = []model.CriticalViolation{}
	}
	customerRows := aggregate.CustomerByGender(customers)
	d := &Dashboard{
		Range:            r,
		Customers:        customerRows,
		Genders:          aggregate.Columns(customerRows),
		Attendance:       aggregate.EmployeeAttendance(employees),
		Employees:        aggregate.EmployeeNames(employees),
		Violations:       violations,
		ViolationSummary: aggregate.Violations(violations),
	}
	if s.ttl > 0 {
		s.cache.SetJSON(ctx, key, d, s.ttl)
	}
	return d, nil
}
