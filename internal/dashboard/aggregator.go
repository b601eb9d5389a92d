package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/entity"
	gerr "github.com/tastyhub/dashboard-manager/internal/errors"
	"golang.org/x/sync/errgroup"
)

// aggregator normalizes whatever the metrics store returns: nil becomes
// empty, groups are merged by lower-cased name, lists are sorted and truncated.
type aggregator struct {
	m   dependency.Metrics
	loc *time.Location
}

func aggregationErr(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", gerr.ErrAggregation, what, err)
}

func (a *aggregator) snapshot(ctx context.Context, w entity.TimeWindow) (entity.PeriodSnapshot, error) {
	var s entity.PeriodSnapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rev, err := a.m.SumOrderRevenue(ctx, w, entity.RevenueExcludedStatuses)
		if err != nil {
			return aggregationErr("sum order revenue", err)
		}
		s.Revenue = rev
		return nil
	})
	g.Go(func() error {
		n, err := a.m.CountOrders(ctx, w, entity.RevenueExcludedStatuses)
		if err != nil {
			return aggregationErr("count orders", err)
		}
		s.Orders = n
		return nil
	})
	g.Go(func() error {
		n, err := a.m.CountDistinctCustomers(ctx, w)
		if err != nil {
			return aggregationErr("count distinct customers", err)
		}
		s.Customers = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return entity.PeriodSnapshot{}, err
	}
	return s, nil
}

func (a *aggregator) onlineDrivers(ctx context.Context) (int, error) {
	n, err := a.m.CountOnlineDrivers(ctx)
	if err != nil {
		return 0, aggregationErr("count online drivers", err)
	}
	return n, nil
}

func (a *aggregator) paymentMethods(ctx context.Context, w entity.TimeWindow) ([]entity.NamedValue, error) {
	rows, err := a.m.GroupPaymentsByMethod(ctx, w)
	if err != nil {
		return nil, aggregationErr("group payments by method", err)
	}
	return mergeNamed(rows), nil
}

func (a *aggregator) orderStatuses(ctx context.Context, w entity.TimeWindow) ([]entity.NamedValue, error) {
	rows, err := a.m.GroupOrdersByStatus(ctx, w)
	if err != nil {
		return nil, aggregationErr("group orders by status", err)
	}
	return mergeNamed(rows), nil
}

func (a *aggregator) revenueSeries(ctx context.Context, w entity.TimeWindow) ([]entity.RevenuePoint, error) {
	rows, err := a.m.RevenueBuckets(ctx, w, entity.RevenueExcludedStatuses)
	if err != nil {
		return nil, aggregationErr("revenue buckets", err)
	}

	loc := a.loc
	if loc == nil {
		loc = time.UTC
	}
	byDay := make(map[string]*entity.RevenuePoint, len(rows))
	for _, r := range rows {
		t := r.Date.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		k := day.Format(time.DateOnly)
		if p, ok := byDay[k]; ok {
			p.Revenue = p.Revenue.Add(r.Revenue)
			continue
		}
		byDay[k] = &entity.RevenuePoint{Date: day, Revenue: r.Revenue}
	}

	out := make([]entity.RevenuePoint, 0, len(byDay))
	for _, p := range byDay {
		if !p.Revenue.IsPositive() {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (a *aggregator) leaderboard(ctx context.Context, w entity.TimeWindow, kind entity.LeaderboardKind, limit int) ([]entity.LeaderboardEntry, error) {
	rows, err := a.m.RankEntities(ctx, w, kind, limit)
	if err != nil {
		return nil, aggregationErr(fmt.Sprintf("rank %s", kind), err)
	}
	return rankEntries(rows, kind, limit), nil
}

func (a *aggregator) activeOrders(ctx context.Context, limit int) ([]entity.ActiveOrder, error) {
	rows, err := a.m.ActiveOrders(ctx, entity.OpenOrderStatuses, limit)
	if err != nil {
		return nil, aggregationErr("active orders", err)
	}
	if rows == nil {
		rows = []entity.ActiveOrder{}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// mergeNamed folds groups that differ only by case or surrounding spaces and
// orders the result by value desc, then name.
func mergeNamed(rows []entity.NamedValue) []entity.NamedValue {
	idx := make(map[string]int, len(rows))
	out := make([]entity.NamedValue, 0, len(rows))
	for _, r := range rows {
		name := strings.ToLower(strings.TrimSpace(r.Name))
		if i, ok := idx[name]; ok {
			out[i].Value = out[i].Value.Add(r.Value)
			continue
		}
		idx[name] = len(out)
		out = append(out, entity.NamedValue{Name: name, Value: r.Value})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Value.Cmp(out[j].Value); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// rankKey is the figure a leaderboard kind is ordered by.
func rankKey(e entity.LeaderboardEntry, kind entity.LeaderboardKind) decimal.Decimal {
	switch kind {
	case entity.LeaderboardRestaurant:
		return e.TotalRevenue
	case entity.LeaderboardProduct:
		return decimal.NewFromInt(int64(e.TotalQuantity))
	default:
		return decimal.NewFromInt(int64(e.TotalOrders))
	}
}

func rankEntries(rows []entity.LeaderboardEntry, kind entity.LeaderboardKind, limit int) []entity.LeaderboardEntry {
	out := make([]entity.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		if r.TotalOrders <= 0 {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := rankKey(out[i], kind).Cmp(rankKey(out[j], kind)); c != 0 {
			return c > 0
		}
		return out[i].Id < out[j].Id
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
