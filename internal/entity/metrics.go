package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeWindow is an inclusive [Start, End] interval used to scope aggregate queries.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, both ends inclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// MetricValue is a current-period aggregate with its signed percent change
// against the previous period.
type MetricValue struct {
	Value  decimal.Decimal
	Change float64
}

// DashboardKPIs is the four-card summary shown at the top of the dashboard.
type DashboardKPIs struct {
	Revenue       MetricValue
	Orders        MetricValue
	Customers     MetricValue
	ActiveDrivers MetricValue
}

// PeriodSnapshot holds the windowed scalars used to build KPIs for one window.
type PeriodSnapshot struct {
	Revenue   decimal.Decimal
	Orders    int
	Customers int
}

// RevenueBucketSize is the span stores sum revenue over before it is folded
// into calendar days. Every UTC offset in use is a multiple of it.
const RevenueBucketSize = 15 * time.Minute

// RevenuePoint is qualifying revenue for one bucket starting at Date. The
// dashboard series holds one point per calendar day.
type RevenuePoint struct {
	Date    time.Time
	Revenue decimal.Decimal
}

// NamedValue is a grouped aggregate, e.g. a payment method with its summed amount
// or an order status with its count.
type NamedValue struct {
	Name  string          `db:"name"`
	Value decimal.Decimal `db:"value"`
}

// OrderAnalytics groups the breakdowns shown on the orders analytics card.
type OrderAnalytics struct {
	PaymentMethods []NamedValue
	OrderStatuses  []NamedValue
}

// LeaderboardKind selects the entity a leaderboard ranks.
type LeaderboardKind string

const (
	LeaderboardRestaurant    LeaderboardKind = "restaurant"
	LeaderboardProduct       LeaderboardKind = "product"
	LeaderboardDriver        LeaderboardKind = "driver"
	LeaderboardShippingAgent LeaderboardKind = "shipping_agent"
)

// ValidLeaderboardKinds lists every supported LeaderboardKind.
var ValidLeaderboardKinds = []LeaderboardKind{
	LeaderboardRestaurant,
	LeaderboardProduct,
	LeaderboardDriver,
	LeaderboardShippingAgent,
}

// LeaderboardEntry is one ranked entity. Fields that do not apply to a kind
// stay at their zero value: Image and RestaurantName are product only,
// Logo is restaurant only, Phone and IsOnline are driver and agent only.
type LeaderboardEntry struct {
	Id             int             `db:"id"`
	Name           string          `db:"name"`
	Logo           string          `db:"logo"`
	Image          string          `db:"image"`
	RestaurantName string          `db:"restaurant_name"`
	Phone          string          `db:"phone"`
	Rating         decimal.Decimal `db:"rating"`
	IsOnline       bool            `db:"is_online"`
	TotalOrders    int             `db:"total_orders"`
	TotalQuantity  int             `db:"total_quantity"`
	TotalRevenue   decimal.Decimal `db:"total_revenue"`
}
