package dependency

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/tastyhub/dashboard-manager/internal/entity"
	"github.com/tastyhub/dashboard-manager/internal/period"
)

//go:generate mockery --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	// Metrics is the read side used by the dashboard aggregator. Windows are
	// inclusive on both ends.
	Metrics interface {
		// SumOrderRevenue sums total_price of orders in w whose status is not in exclude.
		SumOrderRevenue(ctx context.Context, w entity.TimeWindow, exclude []entity.OrderStatus) (decimal.Decimal, error)
		// CountOrders counts orders in w whose status is not in exclude.
		CountOrders(ctx context.Context, w entity.TimeWindow, exclude []entity.OrderStatus) (int, error)
		// CountDistinctCustomers counts unique user ids over every order in w.
		CountDistinctCustomers(ctx context.Context, w entity.TimeWindow) (int, error)
		// CountOnlineDrivers counts drivers online right now.
		CountOnlineDrivers(ctx context.Context) (int, error)
		// GroupPaymentsByMethod sums completed food order payments per lower-cased method.
		GroupPaymentsByMethod(ctx context.Context, w entity.TimeWindow) ([]entity.NamedValue, error)
		// GroupOrdersByStatus counts every order in w per status.
		GroupOrdersByStatus(ctx context.Context, w entity.TimeWindow) ([]entity.NamedValue, error)
		// RevenueBuckets sums qualifying revenue per entity.RevenueBucketSize span
		// aligned to UTC, ascending.
		RevenueBuckets(ctx context.Context, w entity.TimeWindow, exclude []entity.OrderStatus) ([]entity.RevenuePoint, error)
		// RankEntities returns at most limit entities of kind with at least one qualifying order in w.
		RankEntities(ctx context.Context, w entity.TimeWindow, kind entity.LeaderboardKind, limit int) ([]entity.LeaderboardEntry, error)
		// ActiveOrders returns orders in one of statuses, newest first.
		ActiveOrders(ctx context.Context, statuses []entity.OrderStatus, limit int) ([]entity.ActiveOrder, error)
	}

	Activity interface {
		// RecentActivities returns the newest activity log rows first.
		RecentActivities(ctx context.Context, limit int) ([]entity.Activity, error)
		AddActivity(ctx context.Context, a *entity.Activity) (int, error)
	}

	Permissions interface {
		// PermissionsByRoles returns the permission rows granted to any of roles.
		PermissionsByRoles(ctx context.Context, roles []string) ([]entity.RolePermission, error)
		AddRolePermission(ctx context.Context, rp entity.RolePermission) error
	}

	// Seed writes the catalogue and order rows the dashboard reads.
	Seed interface {
		AddRestaurant(ctx context.Context, r *entity.Restaurant) (int, error)
		AddProduct(ctx context.Context, p *entity.Product) (int, error)
		AddDriver(ctx context.Context, d *entity.Driver) (int, error)
		AddShippingAgent(ctx context.Context, a *entity.ShippingAgent) (int, error)
		AddCustomer(ctx context.Context, c *entity.Customer) (int, error)
		AddOrder(ctx context.Context, o *entity.OrderInsert) (int, error)
	}

	Repository interface {
		ContextStore
		Metrics() Metrics
		Activity() Activity
		Permissions() Permissions
		Seed() Seed
		Ping(ctx context.Context) error
		Close()
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Cache memoizes dashboard payloads. A miss is (false, nil).
	Cache interface {
		Get(ctx context.Context, key string, dst any) (bool, error)
		Set(ctx context.Context, key string, v any) error
		Invalidate(ctx context.Context) error
	}

	EventPublisher interface {
		Publish(ctx context.Context, ev entity.ChangeEvent) error
	}

	// Dashboard composes the payloads served under /api/dashboard.
	Dashboard interface {
		KPIs(ctx context.Context, tok period.Token) (*entity.DashboardKPIs, error)
		RevenueSeries(ctx context.Context, tok period.Token) ([]entity.RevenuePoint, error)
		OrderAnalytics(ctx context.Context, tok period.Token) (*entity.OrderAnalytics, error)
		Leaderboard(ctx context.Context, kind entity.LeaderboardKind, tok period.Token, limit int) ([]entity.LeaderboardEntry, error)
		ActiveOrders(ctx context.Context, limit int) ([]entity.ActiveOrder, error)
		RecentActivities(ctx context.Context, limit int) ([]entity.Activity, error)
	}
)
