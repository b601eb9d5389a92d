// Package memory is an in-process Repository used for demos and tests. It
// applies the same filters as the MySQL queries over plain slices.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/entity"
	"golang.org/x/exp/slices"
)

type order struct {
	entity.OrderInsert
	id int
}

// Store keeps every table in memory behind a single RWMutex.
type Store struct {
	mu sync.RWMutex

	restaurants map[int]entity.Restaurant
	products    map[int]entity.Product
	drivers     map[int]entity.Driver
	agents      map[int]entity.ShippingAgent
	customers   map[int]entity.Customer
	orders      []order
	numbers     map[string]struct{}
	activities  []entity.Activity
	perms       []entity.RolePermission

	seq int
	now func() time.Time
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		restaurants: map[int]entity.Restaurant{},
		products:    map[int]entity.Product{},
		drivers:     map[int]entity.Driver{},
		agents:      map[int]entity.ShippingAgent{},
		customers:   map[int]entity.Customer{},
		numbers:     map[string]struct{}{},
		now:         time.Now,
	}
}

func (s *Store) nextId() int {
	s.seq++
	return s.seq
}

// Tx runs f against the store itself. Writes are not rolled back.
func (s *Store) Tx(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
	return f(ctx, s)
}

func (s *Store) Metrics() dependency.Metrics         { return (*metrics)(s) }
func (s *Store) Activity() dependency.Activity       { return (*activity)(s) }
func (s *Store) Permissions() dependency.Permissions { return (*permissions)(s) }
func (s *Store) Seed() dependency.Seed               { return (*seed)(s) }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() {}

type metrics Store

func excluded(status entity.OrderStatus, exclude []entity.OrderStatus) bool {
	return slices.Contains(exclude, status)
}

// each calls f for every order in w whose status is not excluded.
func (m *metrics) each(w entity.TimeWindow, exclude []entity.OrderStatus, f func(o *order)) {
	for i := range m.orders {
		o := &m.orders[i]
		if !w.Contains(o.CreatedAt) || excluded(o.Status, exclude) {
			continue
		}
		f(o)
	}
}

func (m *metrics) SumOrderRevenue(ctx context.Context, w entity.TimeWindow, exclude []entity.OrderStatus) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	m.each(w, exclude, func(o *order) { sum = sum.Add(o.TotalPrice) })
	return sum, nil
}

func (m *metrics) CountOrders(ctx context.Context, w entity.TimeWindow, exclude []entity.OrderStatus) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	m.each(w, exclude, func(*order) { n++ })
	return n, nil
}

func (m *metrics) CountDistinctCustomers(ctx context.Context, w entity.TimeWindow) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[int]struct{}{}
	m.each(w, nil, func(o *order) { seen[o.UserId] = struct{}{} })
	return len(seen), nil
}

func (m *metrics) CountOnlineDrivers(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, d := range m.drivers {
		if d.IsOnline {
			n++
		}
	}
	return n, nil
}

func sortedNamed(acc map[string]decimal.Decimal) []entity.NamedValue {
	out := make([]entity.NamedValue, 0, len(acc))
	for name, v := range acc {
		out = append(out, entity.NamedValue{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Value.Cmp(out[j].Value); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (m *metrics) GroupPaymentsByMethod(ctx context.Context, w entity.TimeWindow) ([]entity.NamedValue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc := map[string]decimal.Decimal{}
	m.each(w, nil, func(o *order) {
		p := o.Payment
		if p == nil || p.Status != entity.PaymentCompleted || p.OrderType != entity.OrderTypeFood {
			return
		}
		method := strings.ToLower(p.Method)
		acc[method] = acc[method].Add(p.Amount)
	})
	return sortedNamed(acc), nil
}

func (m *metrics) GroupOrdersByStatus(ctx context.Context, w entity.TimeWindow) ([]entity.NamedValue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc := map[string]decimal.Decimal{}
	m.each(w, nil, func(o *order) {
		acc[o.Status.String()] = acc[o.Status.String()].Add(decimal.NewFromInt(1))
	})
	return sortedNamed(acc), nil
}

func (m *metrics) RevenueBuckets(ctx context.Context, w entity.TimeWindow, exclude []entity.OrderStatus) ([]entity.RevenuePoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc := map[time.Time]decimal.Decimal{}
	m.each(w, exclude, func(o *order) {
		b := o.CreatedAt.UTC().Truncate(entity.RevenueBucketSize)
		acc[b] = acc[b].Add(o.TotalPrice)
	})
	out := make([]entity.RevenuePoint, 0, len(acc))
	for d, v := range acc {
		if v.IsPositive() {
			out = append(out, entity.RevenuePoint{Date: d, Revenue: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *metrics) RankEntities(ctx context.Context, w entity.TimeWindow, kind entity.LeaderboardKind, limit int) ([]entity.LeaderboardEntry, error) {
	if !slices.Contains(entity.ValidLeaderboardKinds, kind) {
		return nil, fmt.Errorf("unknown leaderboard kind %q", kind)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	acc := map[int]*entity.LeaderboardEntry{}
	get := func(id int, init func() entity.LeaderboardEntry) *entity.LeaderboardEntry {
		e, ok := acc[id]
		if !ok {
			v := init()
			e = &v
			acc[id] = e
		}
		return e
	}

	m.each(w, entity.RevenueExcludedStatuses, func(o *order) {
		switch kind {
		case entity.LeaderboardRestaurant:
			r := m.restaurants[o.RestaurantId]
			e := get(o.RestaurantId, func() entity.LeaderboardEntry {
				return entity.LeaderboardEntry{Id: r.Id, Name: r.Name, Logo: r.Logo, Rating: r.Rating}
			})
			e.TotalOrders++
			e.TotalRevenue = e.TotalRevenue.Add(o.TotalPrice)
		case entity.LeaderboardProduct:
			counted := map[int]bool{}
			for _, it := range o.Items {
				p := m.products[it.ProductId]
				e := get(it.ProductId, func() entity.LeaderboardEntry {
					return entity.LeaderboardEntry{
						Id:             p.Id,
						Name:           p.Name,
						Image:          p.Image,
						RestaurantName: m.restaurants[p.RestaurantId].Name,
					}
				})
				if !counted[it.ProductId] {
					e.TotalOrders++
					counted[it.ProductId] = true
				}
				e.TotalQuantity += it.Quantity
				e.TotalRevenue = e.TotalRevenue.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
			}
		case entity.LeaderboardDriver:
			if o.DriverId == nil {
				return
			}
			d := m.drivers[*o.DriverId]
			e := get(d.Id, func() entity.LeaderboardEntry {
				return entity.LeaderboardEntry{Id: d.Id, Name: d.Name, Phone: d.Phone, Rating: d.Rating, IsOnline: d.IsOnline}
			})
			e.TotalOrders++
			e.TotalRevenue = e.TotalRevenue.Add(o.TotalPrice)
		case entity.LeaderboardShippingAgent:
			if o.ShippingAgentId == nil {
				return
			}
			a := m.agents[*o.ShippingAgentId]
			e := get(a.Id, func() entity.LeaderboardEntry {
				return entity.LeaderboardEntry{Id: a.Id, Name: a.Name, Phone: a.Phone, Rating: a.Rating}
			})
			e.TotalOrders++
			e.TotalRevenue = e.TotalRevenue.Add(o.TotalPrice)
		}
	})

	out := make([]entity.LeaderboardEntry, 0, len(acc))
	for _, e := range acc {
		out = append(out, *e)
	}
	sortForKind(out, kind)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortForKind(es []entity.LeaderboardEntry, kind entity.LeaderboardKind) {
	key := func(e entity.LeaderboardEntry) decimal.Decimal {
		switch kind {
		case entity.LeaderboardRestaurant:
			return e.TotalRevenue
		case entity.LeaderboardProduct:
			return decimal.NewFromInt(int64(e.TotalQuantity))
		default:
			return decimal.NewFromInt(int64(e.TotalOrders))
		}
	}
	sort.Slice(es, func(i, j int) bool {
		if c := key(es[i]).Cmp(key(es[j])); c != 0 {
			return c > 0
		}
		return es[i].Id < es[j].Id
	})
}

func (m *metrics) ActiveOrders(ctx context.Context, statuses []entity.OrderStatus, limit int) ([]entity.ActiveOrder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []entity.ActiveOrder{}
	for _, o := range m.orders {
		if !slices.Contains(statuses, o.Status) {
			continue
		}
		ao := entity.ActiveOrder{
			Id:             o.id,
			OrderNumber:    o.OrderNumber,
			Status:         o.Status,
			TotalPrice:     o.TotalPrice,
			CustomerName:   m.customers[o.UserId].Name,
			RestaurantName: m.restaurants[o.RestaurantId].Name,
			CreatedAt:      o.CreatedAt,
		}
		if o.DriverId != nil {
			ao.DriverName = m.drivers[*o.DriverId].Name
		}
		out = append(out, ao)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Id > out[j].Id
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type activity Store

func (a *activity) RecentActivities(ctx context.Context, limit int) ([]entity.Activity, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := slices.Clone(a.activities)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Id > out[j].Id
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []entity.Activity{}
	}
	return out, nil
}

func (a *activity) AddActivity(ctx context.Context, act *entity.Activity) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	row := *act
	row.Id = (*Store)(a).nextId()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = a.now()
	}
	a.activities = append(a.activities, row)
	return row.Id, nil
}

type permissions Store

func (p *permissions) PermissionsByRoles(ctx context.Context, roles []string) ([]entity.RolePermission, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := []entity.RolePermission{}
	for _, rp := range p.perms {
		if slices.Contains(roles, rp.Role) {
			out = append(out, rp)
		}
	}
	return out, nil
}

func (p *permissions) AddRolePermission(ctx context.Context, rp entity.RolePermission) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !slices.Contains(p.perms, rp) {
		p.perms = append(p.perms, rp)
	}
	return nil
}

type seed Store

func (s *seed) AddRestaurant(ctx context.Context, r *entity.Restaurant) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := *r
	row.Id = (*Store)(s).nextId()
	s.restaurants[row.Id] = row
	return row.Id, nil
}

func (s *seed) AddProduct(ctx context.Context, p *entity.Product) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.restaurants[p.RestaurantId]; !ok {
		return 0, fmt.Errorf("can't add product: restaurant %d not found", p.RestaurantId)
	}
	row := *p
	row.Id = (*Store)(s).nextId()
	s.products[row.Id] = row
	return row.Id, nil
}

func (s *seed) AddDriver(ctx context.Context, d *entity.Driver) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := *d
	row.Id = (*Store)(s).nextId()
	s.drivers[row.Id] = row
	return row.Id, nil
}

func (s *seed) AddShippingAgent(ctx context.Context, a *entity.ShippingAgent) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := *a
	row.Id = (*Store)(s).nextId()
	s.agents[row.Id] = row
	return row.Id, nil
}

func (s *seed) AddCustomer(ctx context.Context, c *entity.Customer) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := *c
	row.Id = (*Store)(s).nextId()
	s.customers[row.Id] = row
	return row.Id, nil
}

func (s *seed) AddOrder(ctx context.Context, o *entity.OrderInsert) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.numbers[o.OrderNumber]; ok {
		return 0, fmt.Errorf("can't insert order: duplicate order number %q", o.OrderNumber)
	}
	for _, it := range o.Items {
		if _, ok := s.products[it.ProductId]; !ok {
			return 0, fmt.Errorf("can't insert order items: product %d not found", it.ProductId)
		}
	}
	row := order{OrderInsert: *o, id: (*Store)(s).nextId()}
	row.Items = slices.Clone(o.Items)
	if o.Payment != nil {
		p := *o.Payment
		row.Payment = &p
	}
	s.orders = append(s.orders, row)
	s.numbers[o.OrderNumber] = struct{}{}
	return row.id, nil
}
