package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tastyhub/dashboard-manager/internal/dependency"
	"github.com/tastyhub/dashboard-manager/internal/entity"
)

type metricsStore struct {
	*MYSQLStore
}

// Metrics returns an object implementing metrics interface
func (ms *MYSQLStore) Metrics() dependency.Metrics {
	return &metricsStore{
		MYSQLStore: ms,
	}
}

// windowParams binds the inclusive window and the excluded statuses. The
// status filter is only rendered when there is something to exclude since
// sqlx.In rejects empty slices.
func windowParams(w entity.TimeWindow, exclude []entity.OrderStatus) (string, map[string]any) {
	params := map[string]any{
		"from": w.Start,
		"to":   w.End,
	}
	if len(exclude) == 0 {
		return "", params
	}
	params["excluded"] = entity.StatusStrings(exclude)
	return "AND co.status NOT IN (:excluded)", params
}

func (ms *metricsStore) SumOrderRevenue(ctx context.Context, w entity.TimeWindow, exclude []entity.OrderStatus) (decimal.Decimal, error) {
	filter, params := windowParams(w, exclude)
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(co.total_price), 0) AS revenue
		FROM customer_order co
		WHERE co.created_at BETWEEN :from AND :to
		%s
	`, filter)
	revenue, err := QueryScalarNamed[decimal.Decimal](ctx, ms.DB(), query, params)
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't sum order revenue: %w", err)
	}
	return revenue, nil
}

func (ms *metricsStore) CountOrders(ctx context.Context, w entity.TimeWindow, exclude []entity.OrderStatus) (int, error) {
	filter, params := windowParams(w, exclude)
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM customer_order co
		WHERE co.created_at BETWEEN :from AND :to
		%s
	`, filter)
	n, err := QueryScalarNamed[int](ctx, ms.DB(), query, params)
	if err != nil {
		return 0, fmt.Errorf("can't count orders: %w", err)
	}
	return n, nil
}

func (ms *metricsStore) CountDistinctCustomers(ctx context.Context, w entity.TimeWindow) (int, error) {
	query := `
		SELECT COUNT(DISTINCT co.user_id)
		FROM customer_order co
		WHERE co.created_at BETWEEN :from AND :to
	`
	n, err := QueryScalarNamed[int](ctx, ms.DB(), query, map[string]any{"from": w.Start, "to": w.End})
	if err != nil {
		return 0, fmt.Errorf("can't count distinct customers: %w", err)
	}
	return n, nil
}

func (ms *metricsStore) CountOnlineDrivers(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM delivery_driver WHERE is_online = TRUE`
	n, err := QueryScalarNamed[int](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return 0, fmt.Errorf("can't count online drivers: %w", err)
	}
	return n, nil
}

func (ms *metricsStore) GroupPaymentsByMethod(ctx context.Context, w entity.TimeWindow) ([]entity.NamedValue, error) {
	query := `
		SELECT LOWER(p.method) AS name, SUM(p.amount) AS value
		FROM payment p
		WHERE p.status = :status
		AND p.order_type = :orderType
		AND p.created_at BETWEEN :from AND :to
		GROUP BY LOWER(p.method)
		ORDER BY value DESC, name
	`
	rows, err := QueryListNamed[entity.NamedValue](ctx, ms.DB(), query, map[string]any{
		"status":    entity.PaymentCompleted,
		"orderType": entity.OrderTypeFood,
		"from":      w.Start,
		"to":        w.End,
	})
	if err != nil {
		return nil, fmt.Errorf("can't group payments by method: %w", err)
	}
	return rows, nil
}

func (ms *metricsStore) GroupOrdersByStatus(ctx context.Context, w entity.TimeWindow) ([]entity.NamedValue, error) {
	query := `
		SELECT co.status AS name, COUNT(*) AS value
		FROM customer_order co
		WHERE co.created_at BETWEEN :from AND :to
		GROUP BY co.status
		ORDER BY value DESC, name
	`
	rows, err := QueryListNamed[entity.NamedValue](ctx, ms.DB(), query, map[string]any{"from": w.Start, "to": w.End})
	if err != nil {
		return nil, fmt.Errorf("can't group orders by status: %w", err)
	}
	return rows, nil
}

// RevenueBuckets groups by quarter hour so the caller can fold buckets into
// days of any timezone.
func (ms *metricsStore) RevenueBuckets(ctx context.Context, w entity.TimeWindow, exclude []entity.OrderStatus) ([]entity.RevenuePoint, error) {
	filter, params := windowParams(w, exclude)
	query := fmt.Sprintf(`
		SELECT TIMESTAMPADD(MINUTE, FLOOR(MINUTE(co.created_at) / 15) * 15,
				TIMESTAMPADD(HOUR, HOUR(co.created_at), DATE(co.created_at))) AS d,
			SUM(co.total_price) AS revenue
		FROM customer_order co
		WHERE co.created_at BETWEEN :from AND :to
		%s
		GROUP BY d
		ORDER BY d
	`, filter)
	rows, err := QueryListNamed[struct {
		D       time.Time       `db:"d"`
		Revenue decimal.Decimal `db:"revenue"`
	}](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get revenue buckets: %w", err)
	}
	result := make([]entity.RevenuePoint, len(rows))
	for i, r := range rows {
		result[i] = entity.RevenuePoint{Date: r.D, Revenue: r.Revenue}
	}
	return result, nil
}

// rankQueries holds one leaderboard query per kind. Each groups qualifying
// orders (or order items for products) by the owning entity, so entities
// without orders never appear.
var rankQueries = map[entity.LeaderboardKind]string{
	entity.LeaderboardRestaurant: `
		SELECT r.id, r.name, r.logo, r.rating,
			COUNT(co.id) AS total_orders,
			COALESCE(SUM(co.total_price), 0) AS total_revenue
		FROM customer_order co
		JOIN restaurant r ON r.id = co.restaurant_id
		WHERE co.created_at BETWEEN :from AND :to
		%s
		GROUP BY r.id, r.name, r.logo, r.rating
		ORDER BY total_revenue DESC, r.id
		LIMIT :limit
	`,
	entity.LeaderboardProduct: `
		SELECT p.id, p.name, p.image, r.name AS restaurant_name,
			COUNT(DISTINCT co.id) AS total_orders,
			SUM(oi.quantity) AS total_quantity,
			COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total_revenue
		FROM order_item oi
		JOIN customer_order co ON co.id = oi.order_id
		JOIN product p ON p.id = oi.product_id
		JOIN restaurant r ON r.id = p.restaurant_id
		WHERE co.created_at BETWEEN :from AND :to
		%s
		GROUP BY p.id, p.name, p.image, r.name
		ORDER BY total_quantity DESC, p.id
		LIMIT :limit
	`,
	entity.LeaderboardDriver: `
		SELECT d.id, d.name, d.phone, d.rating, d.is_online,
			COUNT(co.id) AS total_orders,
			COALESCE(SUM(co.total_price), 0) AS total_revenue
		FROM customer_order co
		JOIN delivery_driver d ON d.id = co.driver_id
		WHERE co.created_at BETWEEN :from AND :to
		%s
		GROUP BY d.id, d.name, d.phone, d.rating, d.is_online
		ORDER BY total_orders DESC, d.id
		LIMIT :limit
	`,
	entity.LeaderboardShippingAgent: `
		SELECT sa.id, sa.name, sa.phone, sa.rating,
			COUNT(co.id) AS total_orders,
			COALESCE(SUM(co.total_price), 0) AS total_revenue
		FROM customer_order co
		JOIN shipping_agent sa ON sa.id = co.shipping_agent_id
		WHERE co.created_at BETWEEN :from AND :to
		%s
		GROUP BY sa.id, sa.name, sa.phone, sa.rating
		ORDER BY total_orders DESC, sa.id
		LIMIT :limit
	`,
}

func (ms *metricsStore) RankEntities(ctx context.Context, w entity.TimeWindow, kind entity.LeaderboardKind, limit int) ([]entity.LeaderboardEntry, error) {
	q, ok := rankQueries[kind]
	if !ok {
		return nil, fmt.Errorf("unknown leaderboard kind %q", kind)
	}
	filter, params := windowParams(w, entity.RevenueExcludedStatuses)
	params["limit"] = limit
	rows, err := QueryListNamed[entity.LeaderboardEntry](ctx, ms.DB(), fmt.Sprintf(q, filter), params)
	if err != nil {
		return nil, fmt.Errorf("can't rank %s: %w", kind, err)
	}
	return rows, nil
}

func (ms *metricsStore) ActiveOrders(ctx context.Context, statuses []entity.OrderStatus, limit int) ([]entity.ActiveOrder, error) {
	if len(statuses) == 0 {
		return []entity.ActiveOrder{}, nil
	}
	query := `
		SELECT co.id, co.order_number, co.status, co.total_price,
			COALESCE(u.name, '') AS customer_name,
			COALESCE(r.name, '') AS restaurant_name,
			COALESCE(d.name, '') AS driver_name,
			co.created_at
		FROM customer_order co
		LEFT JOIN app_user u ON u.id = co.user_id
		LEFT JOIN restaurant r ON r.id = co.restaurant_id
		LEFT JOIN delivery_driver d ON d.id = co.driver_id
		WHERE co.status IN (:statuses)
		ORDER BY co.created_at DESC, co.id DESC
		LIMIT :limit
	`
	rows, err := QueryListNamed[entity.ActiveOrder](ctx, ms.DB(), query, map[string]any{
		"statuses": entity.StatusStrings(statuses),
		"limit":    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get active orders: %w", err)
	}
	return rows, nil
}
