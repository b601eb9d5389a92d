package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastyhub/dashboard-manager/internal/entity"
)

// newTestDB connects to the database named by MYSQL_TEST_DSN and wipes the
// dashboard tables. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *MYSQLStore {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN is not set")
	}
	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	_, err = db.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0")
	require.NoError(t, err)
	for _, table := range []string{
		"payment",
		"order_item",
		"customer_order",
		"product",
		"restaurant",
		"delivery_driver",
		"shipping_agent",
		"app_user",
		"activity_log",
	} {
		_, err = db.db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}
	_, err = db.db.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")
	require.NoError(t, err)

	return db
}

type fixture struct {
	restaurants []int
	products    []int
	drivers     []int
	customers   []int
}

func seedFixture(t *testing.T, db *MYSQLStore) fixture {
	ctx := context.Background()
	seed := db.Seed()
	var f fixture

	for _, name := range []string{"Pizza Place", "Sushi Bar"} {
		id, err := seed.AddRestaurant(ctx, &entity.Restaurant{Name: name, Rating: decimal.RequireFromString("4.5")})
		require.NoError(t, err)
		f.restaurants = append(f.restaurants, id)
	}
	pid, err := seed.AddProduct(ctx, &entity.Product{RestaurantId: f.restaurants[0], Name: "Margherita", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
	f.products = append(f.products, pid)

	for i, online := range []bool{true, false} {
		id, err := seed.AddDriver(ctx, &entity.Driver{Name: []string{"Ann", "Bob"}[i], IsOnline: online})
		require.NoError(t, err)
		f.drivers = append(f.drivers, id)
	}
	for _, name := range []string{"Carl", "Dana"} {
		id, err := seed.AddCustomer(ctx, &entity.Customer{Name: name})
		require.NoError(t, err)
		f.customers = append(f.customers, id)
	}
	return f
}

func addOrder(t *testing.T, db *MYSQLStore, number string, customer, restaurant int, driver *int, status entity.OrderStatus, price int64, at time.Time, items []entity.OrderItemInsert) {
	_, err := db.Seed().AddOrder(context.Background(), &entity.OrderInsert{
		OrderNumber:  number,
		UserId:       customer,
		RestaurantId: restaurant,
		DriverId:     driver,
		Status:       status,
		TotalPrice:   decimal.NewFromInt(price),
		CreatedAt:    at,
		Items:        items,
		Payment: &entity.PaymentInsert{
			Method:    "Card",
			Amount:    decimal.NewFromInt(price),
			Status:    entity.PaymentCompleted,
			OrderType: entity.OrderTypeFood,
		},
	})
	require.NoError(t, err)
}

func TestMetricsWindow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	f := seedFixture(t, db)

	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	w := entity.TimeWindow{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 23, 59, 59, 999e6, time.UTC),
	}
	drv := f.drivers[0]
	items := []entity.OrderItemInsert{{ProductId: f.products[0], Quantity: 3, UnitPrice: decimal.NewFromInt(10)}}

	addOrder(t, db, "A-1", f.customers[0], f.restaurants[0], &drv, entity.OrderDelivered, 50, day, items)
	addOrder(t, db, "A-2", f.customers[1], f.restaurants[1], &drv, entity.OrderPending, 30, day, nil)
	addOrder(t, db, "A-3", f.customers[1], f.restaurants[0], nil, entity.OrderCancelled, 100, day, nil)
	addOrder(t, db, "A-4", f.customers[0], f.restaurants[0], nil, entity.OrderDelivered, 70, day.AddDate(0, -1, 0), nil)

	m := db.Metrics()

	revenue, err := m.SumOrderRevenue(ctx, w, entity.RevenueExcludedStatuses)
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromInt(80)), revenue.String())

	count, err := m.CountOrders(ctx, w, entity.RevenueExcludedStatuses)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	customers, err := m.CountDistinctCustomers(ctx, w)
	require.NoError(t, err)
	assert.Equal(t, 2, customers)

	online, err := m.CountOnlineDrivers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, online)

	series, err := m.RevenueBuckets(ctx, w, entity.RevenueExcludedStatuses)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.True(t, series[0].Revenue.Equal(decimal.NewFromInt(80)))
	assert.True(t, series[0].Date.Equal(day), series[0].Date.String())

	statuses, err := m.GroupOrdersByStatus(ctx, w)
	require.NoError(t, err)
	assert.Len(t, statuses, 3)

	payments, err := m.GroupPaymentsByMethod(ctx, w)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "card", payments[0].Name)
	assert.True(t, payments[0].Value.Equal(decimal.NewFromInt(180)))

	restaurants, err := m.RankEntities(ctx, w, entity.LeaderboardRestaurant, 10)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, f.restaurants[0], restaurants[0].Id)
	assert.Equal(t, 1, restaurants[0].TotalOrders)

	products, err := m.RankEntities(ctx, w, entity.LeaderboardProduct, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 3, products[0].TotalQuantity)
	assert.Equal(t, "Pizza Place", products[0].RestaurantName)

	drivers, err := m.RankEntities(ctx, w, entity.LeaderboardDriver, 10)
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, 2, drivers[0].TotalOrders)

	active, err := m.ActiveOrders(ctx, entity.OpenOrderStatuses, 10)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "A-2", active[0].OrderNumber)
	assert.Equal(t, "Dana", active[0].CustomerName)
}

func TestActivityLog(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := db.Activity().AddActivity(ctx, &entity.Activity{
			Actor:       "admin@tastyhub.io",
			Action:      "update",
			EntityType:  "restaurant",
			Description: "updated opening hours",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	rows, err := db.Activity().RecentActivities(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].CreatedAt.After(rows[1].CreatedAt))
}

func TestRolePermissions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	rp := entity.RolePermission{Role: "SUPPORT", Subject: entity.SubjectAdmin, Module: entity.ModuleDashboard, Action: entity.ActionRead}
	require.NoError(t, db.Permissions().AddRolePermission(ctx, rp))
	require.NoError(t, db.Permissions().AddRolePermission(ctx, rp))

	perms, err := db.Permissions().PermissionsByRoles(ctx, []string{"SUPPORT"})
	require.NoError(t, err)
	assert.Equal(t, []entity.RolePermission{rp}, perms)

	perms, err = db.Permissions().PermissionsByRoles(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, perms)
}
