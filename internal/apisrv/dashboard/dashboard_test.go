package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tastyhub/dashboard-manager/internal/apisrv/auth"
	"github.com/tastyhub/dashboard-manager/internal/dependency/mocks"
	"github.com/tastyhub/dashboard-manager/internal/entity"
	gerr "github.com/tastyhub/dashboard-manager/internal/errors"
	"github.com/tastyhub/dashboard-manager/internal/period"
	"github.com/tastyhub/dashboard-manager/internal/permission"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func get(t *testing.T, d *mocks.Dashboard, target string) (int, envelope) {
	t.Helper()
	rr := httptest.NewRecorder()
	New(d).Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return rr.Code, env
}

func TestKPIs(t *testing.T) {
	d := mocks.NewDashboard(t)
	d.On("KPIs", mock.Anything, period.Week).Return(&entity.DashboardKPIs{
		Revenue:       entity.MetricValue{Value: decimal.NewFromInt(80), Change: 100},
		Orders:        entity.MetricValue{Value: decimal.NewFromInt(2), Change: -50},
		Customers:     entity.MetricValue{Value: decimal.NewFromInt(3)},
		ActiveDrivers: entity.MetricValue{Value: decimal.NewFromInt(4)},
	}, nil).Once()

	code, env := get(t, d, "/kpis?period=Week")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{
		"revenue": {"value": 80, "change": 100},
		"orders": {"value": 2, "change": -50},
		"customers": {"value": 3, "change": 0},
		"active_drivers": {"value": 4, "change": 0}
	}`, string(env.Data))
}

func TestKPIsUnknownPeriod(t *testing.T) {
	d := mocks.NewDashboard(t)
	d.On("KPIs", mock.Anything, period.Month).Return(&entity.DashboardKPIs{}, nil).Once()

	code, _ := get(t, d, "/kpis?period=decade")
	assert.Equal(t, http.StatusOK, code)
}

func TestFixedErrorMessages(t *testing.T) {
	boom := fmt.Errorf("%w: sum order revenue: %w", gerr.ErrAggregation, errors.New("connection refused"))

	tests := []struct {
		target  string
		setup   func(d *mocks.Dashboard)
		message string
	}{
		{"/kpis", func(d *mocks.Dashboard) {
			d.On("KPIs", mock.Anything, mock.Anything).Return(nil, boom)
		}, "Error fetching dashboard KPIs"},
		{"/revenue-chart", func(d *mocks.Dashboard) {
			d.On("RevenueSeries", mock.Anything, mock.Anything).Return(nil, boom)
		}, "Error fetching revenue chart"},
		{"/orders-analytics", func(d *mocks.Dashboard) {
			d.On("OrderAnalytics", mock.Anything, mock.Anything).Return(nil, boom)
		}, "Error fetching orders analytics"},
		{"/best-restaurants", func(d *mocks.Dashboard) {
			d.On("Leaderboard", mock.Anything, entity.LeaderboardRestaurant, mock.Anything, 10).Return(nil, boom)
		}, "Error fetching best restaurants"},
		{"/best-products", func(d *mocks.Dashboard) {
			d.On("Leaderboard", mock.Anything, entity.LeaderboardProduct, mock.Anything, 10).Return(nil, boom)
		}, "Error fetching best products"},
		{"/driver-performance", func(d *mocks.Dashboard) {
			d.On("Leaderboard", mock.Anything, entity.LeaderboardDriver, mock.Anything, 10).Return(nil, boom)
		}, "Error fetching driver performance"},
		{"/shipping-agents-performance", func(d *mocks.Dashboard) {
			d.On("Leaderboard", mock.Anything, entity.LeaderboardShippingAgent, mock.Anything, 10).Return(nil, boom)
		}, "Error fetching shipping agents performance"},
		{"/active-orders", func(d *mocks.Dashboard) {
			d.On("ActiveOrders", mock.Anything, 10).Return(nil, boom)
		}, "Error fetching active orders"},
		{"/recent-activities", func(d *mocks.Dashboard) {
			d.On("RecentActivities", mock.Anything, 10).Return(nil, boom)
		}, "Error fetching recent activities"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			d := mocks.NewDashboard(t)
			tt.setup(d)

			code, env := get(t, d, tt.target)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.message, env.Message)
			assert.Contains(t, env.Error, "connection refused")
		})
	}
}

func TestFailureLogCarriesCaller(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	d := mocks.NewDashboard(t)
	d.On("KPIs", mock.Anything, period.Day).Return(nil, errors.New("connection refused")).Once()

	ctx := auth.WithSubject(context.Background(), "ops@tastyhub.io")
	ctx = permission.NewContext(ctx, permission.NewSet([]string{entity.RoleAdmin}, nil))
	rr := httptest.NewRecorder()
	New(d).Routes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/kpis?period=Day", nil).WithContext(ctx))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	assert.Equal(t, "Error fetching dashboard KPIs", rec["msg"])
	assert.Equal(t, "ops@tastyhub.io", rec["subject"])
	assert.Equal(t, []any{entity.RoleAdmin}, rec["roles"])
	assert.Equal(t, "day", rec["period"])
	assert.Equal(t, "connection refused", rec["err"])
}

func TestInvalidLimit(t *testing.T) {
	for _, target := range []string{
		"/best-restaurants?limit=0",
		"/best-products?limit=abc",
		"/driver-performance?limit=500",
		"/active-orders?limit=-1",
		"/recent-activities?limit=1.5",
	} {
		t.Run(target, func(t *testing.T) {
			code, env := get(t, mocks.NewDashboard(t), target)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, env.Success)
			assert.Equal(t, "Invalid request", env.Message)
		})
	}
}

func TestLeaderboardLimit(t *testing.T) {
	d := mocks.NewDashboard(t)
	d.On("Leaderboard", mock.Anything, entity.LeaderboardProduct, period.Day, 3).Return([]entity.LeaderboardEntry{
		{Id: 7, Name: "Fries", RestaurantName: "Grill", TotalQuantity: 12, TotalOrders: 4, TotalRevenue: decimal.NewFromInt(36)},
	}, nil).Once()

	code, env := get(t, d, "/best-products?period=day&limit=3")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[{
		"id": 7, "name": "Fries", "image": "", "restaurant_name": "Grill",
		"total_quantity": 12, "total_orders": 4, "total_revenue": 36
	}]`, string(env.Data))
}

func TestEmptyFeeds(t *testing.T) {
	d := mocks.NewDashboard(t)
	d.On("RevenueSeries", mock.Anything, period.Month).Return([]entity.RevenuePoint{}, nil).Once()
	d.On("ActiveOrders", mock.Anything, 10).Return([]entity.ActiveOrder{}, nil).Once()
	d.On("RecentActivities", mock.Anything, 10).Return(nil, nil).Once()

	for _, target := range []string{"/revenue-chart", "/active-orders", "/recent-activities"} {
		code, env := get(t, d, target)
		assert.Equal(t, http.StatusOK, code, target)
		assert.Equal(t, "[]", string(env.Data), target)
	}
}

func TestActiveOrdersShape(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	d := mocks.NewDashboard(t)
	d.On("ActiveOrders", mock.Anything, 5).Return([]entity.ActiveOrder{{
		Id:             1,
		OrderNumber:    "ORD-1",
		Status:         entity.OrderOnTheWay,
		TotalPrice:     decimal.RequireFromString("19.90"),
		CustomerName:   "Ann",
		RestaurantName: "Grill",
		DriverName:     "Bob",
		CreatedAt:      at,
	}}, nil).Once()

	_, env := get(t, d, "/active-orders?limit=5")
	assert.JSONEq(t, `[{
		"id": 1, "order_number": "ORD-1", "status": "on_the_way", "total_price": 19.9,
		"customer_name": "Ann", "restaurant_name": "Grill", "driver_name": "Bob",
		"created_at": "2024-03-15T12:00:00Z"
	}]`, string(env.Data))
}

func TestOrdersAnalytics(t *testing.T) {
	d := mocks.NewDashboard(t)
	d.On("OrderAnalytics", mock.Anything, period.Year).Return(&entity.OrderAnalytics{
		PaymentMethods: []entity.NamedValue{{Name: "card", Value: decimal.NewFromInt(50)}},
	}, nil).Once()

	_, env := get(t, d, "/orders-analytics?period=year")
	assert.JSONEq(t, `{"payment_methods":[{"name":"card","value":50}],"order_statuses":[]}`, string(env.Data))
}
