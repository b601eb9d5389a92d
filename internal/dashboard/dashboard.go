// Package dashboard builds the admin dashboard payloads: KPIs with
// period-over-period change, the revenue series, order breakdowns,
// leaderboards and the live feeds.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/entity"
	"github.com/tastyhub/dashboard-manager/internal/period"
	"golang.org/x/sync/errgroup"
)

// Config holds dashboard settings.
type Config struct {
	// Timezone is the IANA zone calendar windows are computed in.
	Timezone string `mapstructure:"timezone"`
}

// Service is stateless per request; all state lives in the backing store.
type Service struct {
	agg      *aggregator
	activity dependency.Activity
	cache    dependency.Cache
	loc      *time.Location
	now      func() time.Time
}

// New creates a dashboard service. cache may be nil.
func New(c *Config, metrics dependency.Metrics, activity dependency.Activity, cache dependency.Cache) (*Service, error) {
	loc := time.UTC
	if c != nil && c.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("can't load timezone %q: %w", c.Timezone, err)
		}
	}
	return &Service{
		agg:      &aggregator{m: metrics, loc: loc},
		activity: activity,
		cache:    cache,
		loc:      loc,
		now:      time.Now,
	}, nil
}

func (s *Service) windows(tok period.Token) (current, previous entity.TimeWindow) {
	return period.Windows(tok, s.now().In(s.loc))
}

func cacheKey(endpoint string, tok period.Token) string {
	return fmt.Sprintf("dashboard:%s:%s", endpoint, tok)
}

// KPIs returns revenue, orders, customers and active drivers for tok with the
// change against the previous window. Active drivers carry no change.
func (s *Service) KPIs(ctx context.Context, tok period.Token) (*entity.DashboardKPIs, error) {
	return memo(ctx, s.cache, cacheKey("kpis", tok), func(ctx context.Context) (*entity.DashboardKPIs, error) {
		return s.buildKPIs(ctx, tok)
	})
}

func (s *Service) buildKPIs(ctx context.Context, tok period.Token) (*entity.DashboardKPIs, error) {
	cur, prev := s.windows(tok)

	var (
		curSnap, prevSnap entity.PeriodSnapshot
		drivers           int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		curSnap, err = s.agg.snapshot(ctx, cur)
		return err
	})
	g.Go(func() error {
		var err error
		prevSnap, err = s.agg.snapshot(ctx, prev)
		return err
	})
	g.Go(func() error {
		var err error
		drivers, err = s.agg.onlineDrivers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.DashboardKPIs{
		Revenue:       metricValue(curSnap.Revenue, prevSnap.Revenue),
		Orders:        metricValueInt(curSnap.Orders, prevSnap.Orders),
		Customers:     metricValueInt(curSnap.Customers, prevSnap.Customers),
		ActiveDrivers: entity.MetricValue{Value: decimal.NewFromInt(int64(drivers))},
	}, nil
}

// RevenueSeries returns one point per day with qualifying revenue, ascending.
// Days without revenue are absent.
func (s *Service) RevenueSeries(ctx context.Context, tok period.Token) ([]entity.RevenuePoint, error) {
	return memo(ctx, s.cache, cacheKey("revenue-chart", tok), func(ctx context.Context) ([]entity.RevenuePoint, error) {
		cur, _ := s.windows(tok)
		return s.agg.revenueSeries(ctx, cur)
	})
}

// OrderAnalytics returns the payment method and order status breakdowns.
func (s *Service) OrderAnalytics(ctx context.Context, tok period.Token) (*entity.OrderAnalytics, error) {
	return memo(ctx, s.cache, cacheKey("orders-analytics", tok), func(ctx context.Context) (*entity.OrderAnalytics, error) {
		return s.buildOrderAnalytics(ctx, tok)
	})
}

func (s *Service) buildOrderAnalytics(ctx context.Context, tok period.Token) (*entity.OrderAnalytics, error) {
	cur, _ := s.windows(tok)
	oa := &entity.OrderAnalytics{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		oa.PaymentMethods, err = s.agg.paymentMethods(ctx, cur)
		return err
	})
	g.Go(func() error {
		var err error
		oa.OrderStatuses, err = s.agg.orderStatuses(ctx, cur)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return oa, nil
}

// Leaderboard ranks entities of kind within the tok window.
func (s *Service) Leaderboard(ctx context.Context, kind entity.LeaderboardKind, tok period.Token, limit int) ([]entity.LeaderboardEntry, error) {
	cur, _ := s.windows(tok)
	return s.agg.leaderboard(ctx, cur, kind, limit)
}

// ActiveOrders returns open orders, newest first.
func (s *Service) ActiveOrders(ctx context.Context, limit int) ([]entity.ActiveOrder, error) {
	return s.agg.activeOrders(ctx, limit)
}

// RecentActivities returns the newest activity log entries.
func (s *Service) RecentActivities(ctx context.Context, limit int) ([]entity.Activity, error) {
	rows, err := s.activity.RecentActivities(ctx, limit)
	if err != nil {
		return nil, aggregationErr("recent activities", err)
	}
	if rows == nil {
		rows = []entity.Activity{}
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// Refresh recomputes the cached payloads for tok and stores them.
func (s *Service) Refresh(ctx context.Context, tok period.Token) error {
	if s.cache == nil {
		return nil
	}
	kpis, err := s.buildKPIs(ctx, tok)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, cacheKey("kpis", tok), kpis); err != nil {
		return fmt.Errorf("can't cache kpis: %w", err)
	}
	cur, _ := s.windows(tok)
	series, err := s.agg.revenueSeries(ctx, cur)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, cacheKey("revenue-chart", tok), series); err != nil {
		return fmt.Errorf("can't cache revenue series: %w", err)
	}
	oa, err := s.buildOrderAnalytics(ctx, tok)
	if err != nil {
		return err
	}
	if err := s.cache.Set(ctx, cacheKey("orders-analytics", tok), oa); err != nil {
		return fmt.Errorf("can't cache order analytics: %w", err)
	}
	return nil
}

// memo serves key from c when present and stores fresh results otherwise.
// Cache failures are logged and never fail the request.
func memo[T any](ctx context.Context, c dependency.Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if c != nil {
		var v T
		ok, err := c.Get(ctx, key, &v)
		if err != nil {
			slog.Default().WarnContext(ctx, "can't read dashboard cache",
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
		}
		if ok {
			return v, nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if c != nil {
		if err := c.Set(ctx, key, v); err != nil {
			slog.Default().WarnContext(ctx, "can't write dashboard cache",
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
		}
	}
	return v, nil
}
